package main

import (
	"fmt"
	"os"

	"github.com/lumelang/lume/internal/errors"
	"github.com/lumelang/lume/internal/lsp"
	"github.com/lumelang/lume/internal/parser"
)

// printParseError 格式化输出一条解析错误
func printParseError(source string, err error) {
	parseErr, ok := err.(*parser.ParseError)
	if !ok {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	d := &errors.Diagnostic{
		Level:   errors.LevelError,
		Message: parseErr.Message,
		File:    parseErr.Pos.Filename,
		Line:    parseErr.Pos.Line,
		Column:  parseErr.Pos.Column,
	}
	fmt.Fprint(os.Stderr, errors.Format(d, lsp.SplitLines(source)))
}

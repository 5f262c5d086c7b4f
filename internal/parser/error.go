package parser

import (
	"fmt"
	"strings"

	"github.com/lumelang/lume/internal/i18n"
	"github.com/lumelang/lume/internal/token"
)

// ============================================================================
// 解析错误
// ============================================================================

// ParseError 单个解析错误
//
// 解析器快速失败：遇到第一个错误立即向上返回，不做恢复。
// Pos 指向触发错误的 token 位置。
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Message)
}

// newError 按消息 ID 构造解析错误
func newError(pos token.Position, msgID string, args ...interface{}) *ParseError {
	return &ParseError{Pos: pos, Message: i18n.T(msgID, args...)}
}

// unexpectedToken 构造"非预期 token"错误
//
// expected 按书写顺序列出合法的 token 描述。
func unexpectedToken(tok token.Token, expected ...string) *ParseError {
	found := tok.Literal
	if tok.Type == token.EOF {
		found = "end of file"
	}
	return newError(tok.Pos, i18n.ErrUnexpectedToken, found, strings.Join(expected, ", "))
}

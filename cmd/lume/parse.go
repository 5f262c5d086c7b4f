package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumelang/lume/internal/i18n"
	"github.com/lumelang/lume/internal/parser"
)

func newParseCmd() *cobra.Command {
	var showDecls bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and report the first error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			source := string(data)

			file, err := parser.Parse(source, path)
			if err != nil {
				printParseError(source, err)
				os.Exit(1)
			}

			fmt.Println(i18n.T(i18n.MsgParseOK, path))
			if showDecls {
				for _, decl := range file.Declarations {
					fmt.Printf("  %s\n", decl.String())
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDecls, "decls", false, "list top-level declarations")
	return cmd
}

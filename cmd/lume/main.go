package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lumelang/lume/internal/i18n"
)

const Version = "0.1.0"

func main() {
	i18n.DetectLanguage()

	rootCmd := &cobra.Command{
		Use:   "lume",
		Short: "The Lume language toolchain",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

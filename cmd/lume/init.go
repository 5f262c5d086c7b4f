package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lumelang/lume/internal/i18n"
	"github.com/lumelang/lume/internal/pkg"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a lume.toml in the given directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return err
			}

			configPath := filepath.Join(absDir, pkg.ConfigFileName)
			if _, err := os.Stat(configPath); err == nil {
				fmt.Println(i18n.T(i18n.MsgInitExists, configPath))
				os.Exit(1)
			}

			config := pkg.GenerateDefault(absDir)
			if err := config.Save(configPath); err != nil {
				return err
			}

			fmt.Println(i18n.T(i18n.MsgInitCreated, configPath))
			return nil
		},
	}
	return cmd
}

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumelang/lume/internal/errors"
	"github.com/lumelang/lume/internal/i18n"
	"github.com/lumelang/lume/internal/parser"
	"github.com/lumelang/lume/internal/pkg"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check source files for syntax errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			applyProjectConfig(args[0])

			var files []string
			for _, arg := range args {
				found, err := collectSourceFiles(arg)
				if err != nil {
					return err
				}
				files = append(files, found...)
			}

			failed := 0
			for _, path := range files {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				source := string(data)

				if _, err := parser.Parse(source, path); err != nil {
					printParseError(source, err)
					failed++
				}
			}

			fmt.Println(i18n.T(i18n.MsgCheckedFiles, len(files), failed))
			if failed > 0 {
				os.Exit(1)
			}
			fmt.Println(i18n.T(i18n.MsgCheckOK))
			return nil
		},
	}
	return cmd
}

// applyProjectConfig 查找并应用 lume.toml 中的诊断配置
func applyProjectConfig(startPath string) {
	configPath := pkg.FindConfigFile(startPath)
	if configPath == "" {
		return
	}

	config, err := pkg.LoadConfig(configPath)
	if err != nil {
		return
	}

	if config.Diagnostics.Language != "" {
		i18n.SetLanguageFromString(config.Diagnostics.Language)
	}
	if !config.Diagnostics.Color {
		errors.DisableColors()
	}
}

// collectSourceFiles 收集路径下的全部 .lume 源文件
func collectSourceFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// 跳过隐藏目录
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(p, ".lume") {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

// Package pkg 实现 Lume 项目配置相关功能
package pkg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// 常量定义
const (
	ConfigFileName = "lume.toml" // 配置文件名
)

// PackageConfig 项目配置
type PackageConfig struct {
	Package     PackageInfo       `toml:"package"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

// PackageInfo 项目信息
type PackageInfo struct {
	// Name 项目名
	Name string `toml:"name"`

	// Version 版本号（遵循语义化版本，如 1.0.0）
	Version string `toml:"version"`

	// Namespace 根命名空间（用于 use 语句，如 App）
	Namespace string `toml:"namespace"`
}

// DiagnosticsConfig 诊断输出配置
type DiagnosticsConfig struct {
	// Language 诊断语言，"en" 或 "zh"，留空时跟随环境变量
	Language string `toml:"language"`

	// Color 是否使用彩色输出
	Color bool `toml:"color"`
}

// LoadConfig 从文件加载配置
func LoadConfig(path string) (*PackageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config PackageConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Save 保存配置到文件
func (c *PackageConfig) Save(path string) error {
	content := generateConfigWithComments(c)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// generateConfigWithComments 生成带注释的配置文件内容
func generateConfigWithComments(c *PackageConfig) string {
	var sb strings.Builder

	sb.WriteString("[package]\n")
	sb.WriteString("# 项目名\n")
	sb.WriteString(fmt.Sprintf("name = %q\n\n", c.Package.Name))
	sb.WriteString("# 版本号（遵循语义化版本）\n")
	sb.WriteString(fmt.Sprintf("version = %q\n\n", c.Package.Version))
	sb.WriteString("# 根命名空间（用于 use 语句导入）\n")
	sb.WriteString(fmt.Sprintf("namespace = %q\n\n", c.Package.Namespace))

	sb.WriteString("[diagnostics]\n")
	sb.WriteString("# 诊断语言：en 或 zh，留空时跟随 LUME_LANG / LANG\n")
	sb.WriteString(fmt.Sprintf("language = %q\n\n", c.Diagnostics.Language))
	sb.WriteString("# 是否使用彩色输出\n")
	sb.WriteString(fmt.Sprintf("color = %v\n", c.Diagnostics.Color))

	return sb.String()
}

// GenerateDefault 生成默认配置
// dir 是项目目录路径，用于生成默认的项目名
func GenerateDefault(dir string) *PackageConfig {
	baseName := filepath.Base(dir)
	if baseName == "" || baseName == "." || baseName == "/" {
		baseName = "my-app"
	}

	return &PackageConfig{
		Package: PackageInfo{
			Name:      sanitizeName(baseName),
			Version:   "0.1.0",
			Namespace: "App",
		},
		Diagnostics: DiagnosticsConfig{
			Color: true,
		},
	}
}

// sanitizeName 清理项目名
func sanitizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "_", "-")

	var result strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '.' {
			result.WriteRune(r)
		}
	}

	s := result.String()
	if s == "" {
		return "my-app"
	}
	return s
}

// FindConfigFile 从指定路径向上查找配置文件
// 返回配置文件的完整路径，如果找不到则返回空字符串
func FindConfigFile(startPath string) string {
	info, err := os.Stat(startPath)
	if err != nil {
		return ""
	}

	var dir string
	if info.IsDir() {
		dir = startPath
	} else {
		dir = filepath.Dir(startPath)
	}

	dir, err = filepath.Abs(dir)
	if err != nil {
		return ""
	}

	// 向上查找
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// GetProjectRoot 获取项目根目录（配置文件所在目录）
func GetProjectRoot(startPath string) string {
	configPath := FindConfigFile(startPath)
	if configPath == "" {
		return ""
	}
	return filepath.Dir(configPath)
}

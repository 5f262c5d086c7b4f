package pkg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateDefault(t *testing.T) {
	config := GenerateDefault("/home/dev/My Cool_App")

	if config.Package.Name != "my-cool-app" {
		t.Errorf("expected name my-cool-app, got %s", config.Package.Name)
	}
	if config.Package.Version != "0.1.0" {
		t.Errorf("expected version 0.1.0, got %s", config.Package.Version)
	}
	if config.Package.Namespace != "App" {
		t.Errorf("expected namespace App, got %s", config.Package.Namespace)
	}
	if !config.Diagnostics.Color {
		t.Errorf("expected color enabled by default")
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MyApp", "myapp"},
		{"my_app", "my-app"},
		{"My App 2", "my-app-2"},
		{"项目", "my-app"},
		{"app.v2", "app.v2"},
	}

	for _, tt := range tests {
		if got := sanitizeName(tt.input); got != tt.expected {
			t.Errorf("sanitizeName(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	original := GenerateDefault(dir)
	original.Diagnostics.Language = "zh"

	if err := original.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Package.Name != original.Package.Name {
		t.Errorf("expected name %s, got %s", original.Package.Name, loaded.Package.Name)
	}
	if loaded.Package.Namespace != "App" {
		t.Errorf("expected namespace App, got %s", loaded.Package.Namespace)
	}
	if loaded.Diagnostics.Language != "zh" {
		t.Errorf("expected language zh, got %s", loaded.Diagnostics.Language)
	}
	if !loaded.Diagnostics.Color {
		t.Errorf("expected color true")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), ConfigFileName)); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "models")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(root, ConfigFileName)
	if err := GenerateDefault(root).Save(configPath); err != nil {
		t.Fatal(err)
	}

	if got := FindConfigFile(nested); got != configPath {
		t.Errorf("expected %s, got %s", configPath, got)
	}
	if got := GetProjectRoot(nested); got != root {
		t.Errorf("expected project root %s, got %s", root, got)
	}

	// 没有配置文件的目录树
	if got := FindConfigFile(t.TempDir()); got != "" {
		t.Errorf("expected empty result, got %s", got)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	content := `
source_root = "./src"
extension = ".cs"

[exclude]
dirs = [".git", "Library"]
files = ["*.generated.cs"]

[analysis]
mode = "class"
nesting_lookback = 30

[output]
dot = "deps.dot"
terminal = true
`
	path := filepath.Join(t.TempDir(), "csdep.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SourceRoot != "./src" {
		t.Errorf("Expected SourceRoot ./src, got %s", cfg.SourceRoot)
	}
	if cfg.Analysis.Mode != ModeClass {
		t.Errorf("Expected mode class, got %s", cfg.Analysis.Mode)
	}
	if cfg.Analysis.NestingLookback != 30 {
		t.Errorf("Expected lookback 30, got %d", cfg.Analysis.NestingLookback)
	}
	if cfg.Output.DOT != "deps.dot" {
		t.Errorf("Expected DOT deps.dot, got %s", cfg.Output.DOT)
	}
	if len(cfg.Exclude.Dirs) != 2 {
		t.Errorf("Unexpected exclude dirs: %v", cfg.Exclude.Dirs)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csdep.toml")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Analysis.Mode != ModeNamespace {
		t.Errorf("Expected default mode namespace, got %s", cfg.Analysis.Mode)
	}
	if cfg.Analysis.DefaultNamespace != "Global" {
		t.Errorf("Expected default namespace Global, got %s", cfg.Analysis.DefaultNamespace)
	}
	if cfg.Analysis.NestingLookback != 50 {
		t.Errorf("Expected default lookback 50, got %d", cfg.Analysis.NestingLookback)
	}
	if len(cfg.Analysis.FrameworkPrefixes) != 3 {
		t.Errorf("Unexpected framework prefixes: %v", cfg.Analysis.FrameworkPrefixes)
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csdep.toml")
	if err := os.WriteFile(path, []byte("[analysis]\nmode = \"package\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for unknown mode")
	}
}

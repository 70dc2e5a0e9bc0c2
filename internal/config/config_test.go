package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_NotFound(t *testing.T) {
	cfg, err := loadFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.StateDir != "" || cfg.DefaultList != "" || cfg.Editor != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadFile_Full(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
state-dir = "/tmp/daybook-state"
default-list = "inbox"
editor = "nvim"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StateDir != "/tmp/daybook-state" {
		t.Errorf("StateDir = %q, expected %q", cfg.StateDir, "/tmp/daybook-state")
	}
	if cfg.DefaultList != "inbox" {
		t.Errorf("DefaultList = %q, expected %q", cfg.DefaultList, "inbox")
	}
	if cfg.Editor != "nvim" {
		t.Errorf("Editor = %q, expected %q", cfg.Editor, "nvim")
	}
}

func TestLoadFile_TrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `default-list = "  inbox  "` + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DefaultList != "inbox" {
		t.Errorf("DefaultList = %q, expected trimmed %q", cfg.DefaultList, "inbox")
	}
}

func TestLoadFile_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("this is not valid toml ["), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := loadFile(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

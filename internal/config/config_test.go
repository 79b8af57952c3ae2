package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/tt/internal/config"
	"github.com/amonks/tt/internal/testsupport"
)

func writeGlobalConfig(t *testing.T, homeDir, content string) {
	t.Helper()

	globalDir := filepath.Join(homeDir, ".config", "tt")
	if err := os.MkdirAll(globalDir, 0755); err != nil {
		t.Fatalf("failed to create global config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(globalDir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}
}

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, "tt.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Store.Path != "" {
		t.Errorf("expected empty store path, got %q", cfg.Store.Path)
	}
	if !cfg.Store.AutoCleanup {
		t.Error("expected auto-cleanup to default to true")
	}
	if cfg.Log.Level != config.DefaultLogLevel {
		t.Errorf("Log.Level = %q, expected %q", cfg.Log.Level, config.DefaultLogLevel)
	}
	if cfg.Log.Format != config.DefaultLogFormat {
		t.Errorf("Log.Format = %q, expected %q", cfg.Log.Format, config.DefaultLogFormat)
	}
	if cfg.Display.TimeFormat != config.DefaultTimeFormat {
		t.Errorf("Display.TimeFormat = %q, expected %q", cfg.Display.TimeFormat, config.DefaultTimeFormat)
	}
}

func TestLoad_Full(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeProjectConfig(t, tmpDir, `
[store]
path = "~/notes/tasks.json"
auto-cleanup = false

[log]
level = "debug"
format = "json"

[display]
time-format = "02 Jan 15:04"
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.Path != "~/notes/tasks.json" {
		t.Errorf("Store.Path = %q", cfg.Store.Path)
	}
	if cfg.Store.AutoCleanup {
		t.Error("expected auto-cleanup to be disabled")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, expected %q", cfg.Log.Format, "json")
	}
	if cfg.Display.TimeFormat != "02 Jan 15:04" {
		t.Errorf("Display.TimeFormat = %q", cfg.Display.TimeFormat)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeProjectConfig(t, tmpDir, `[store
path = broken`)

	if _, err := config.Load(tmpDir); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestLoad_UsesGlobalWhenProjectMissing(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeGlobalConfig(t, homeDir, `
[log]
level = "info"

[store]
auto-cleanup = false
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, expected %q", cfg.Log.Level, "info")
	}
	if cfg.Store.AutoCleanup {
		t.Error("expected global auto-cleanup = false to apply")
	}
	if cfg.Log.Format != config.DefaultLogFormat {
		t.Errorf("Log.Format = %q, expected default", cfg.Log.Format)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeGlobalConfig(t, homeDir, `
[store]
path = "/global/tasks.json"
auto-cleanup = false

[log]
level = "info"
`)
	writeProjectConfig(t, tmpDir, `
[store]
path = "/project/tasks.json"
auto-cleanup = true
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.Path != "/project/tasks.json" {
		t.Errorf("Store.Path = %q, expected project value", cfg.Store.Path)
	}
	if !cfg.Store.AutoCleanup {
		t.Error("expected project auto-cleanup = true to win")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, expected global value", cfg.Log.Level)
	}
}

func TestLoad_ProjectEmptyOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeGlobalConfig(t, homeDir, `
[store]
path = "/global/tasks.json"
`)
	writeProjectConfig(t, tmpDir, `
[store]
path = ""
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.Path != "" {
		t.Errorf("Store.Path = %q, expected empty project override", cfg.Store.Path)
	}
}

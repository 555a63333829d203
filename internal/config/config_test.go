package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tasknest/tasknest/internal/config"
	"github.com/tasknest/tasknest/internal/testsupport"
)

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	if cfg.Store.Path != "" {
		t.Error("expected empty store path")
	}

	if cfg.Server.Addr != "" {
		t.Error("expected empty server addr")
	}
}

func TestLoad_Full(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	configContent := `
[store]
path = "/tmp/tasks.db"

[server]
addr = ":9090"

[list]
view = "ALL"
`

	if err := os.WriteFile(filepath.Join(tmpDir, "tasknest.toml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.Path != "/tmp/tasks.db" {
		t.Errorf("Path = %q, expected %q", cfg.Store.Path, "/tmp/tasks.db")
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, expected %q", cfg.Server.Addr, ":9090")
	}

	if cfg.List.View != "ALL" {
		t.Errorf("View = %q, expected %q", cfg.List.View, "ALL")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	configContent := `this is not valid toml [`

	if err := os.WriteFile(filepath.Join(tmpDir, "tasknest.toml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := config.Load(tmpDir)
	if err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestLoad_UsesGlobalWhenProjectMissing(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	configDir := filepath.Join(homeDir, ".config", "tasknest")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configContent := `
[store]
path = "/global/tasks.db"

[list]
view = "NON_CLEAR"
`

	globalPath := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(globalPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}

	projectDir := t.TempDir()
	cfg, err := config.Load(projectDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.Path != "/global/tasks.db" {
		t.Errorf("Path = %q, expected %q", cfg.Store.Path, "/global/tasks.db")
	}
	if cfg.List.View != "NON_CLEAR" {
		t.Errorf("View = %q, expected %q", cfg.List.View, "NON_CLEAR")
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	configDir := filepath.Join(homeDir, ".config", "tasknest")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	globalContent := `
[store]
path = "/global/tasks.db"

[server]
addr = ":8080"
`
	globalPath := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(globalPath, []byte(globalContent), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}

	projectContent := `
[store]
path = "/project/tasks.db"

[list]
view = "ACTIVE"
`

	projectDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(projectDir, "tasknest.toml"), []byte(projectContent), 0o644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}

	cfg, err := config.Load(projectDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.Path != "/project/tasks.db" {
		t.Errorf("Path = %q, expected %q", cfg.Store.Path, "/project/tasks.db")
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, expected %q", cfg.Server.Addr, ":8080")
	}
	if cfg.List.View != "ACTIVE" {
		t.Errorf("View = %q, expected %q", cfg.List.View, "ACTIVE")
	}
}

func TestLoad_ProjectEmptyOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	configDir := filepath.Join(homeDir, ".config", "tasknest")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	globalContent := `
[store]
path = "/global/tasks.db"
`
	globalPath := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(globalPath, []byte(globalContent), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}

	projectContent := `
[store]
path = ""
`

	projectDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(projectDir, "tasknest.toml"), []byte(projectContent), 0o644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}

	cfg, err := config.Load(projectDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.Path != "" {
		t.Errorf("Path = %q, expected empty string", cfg.Store.Path)
	}
}

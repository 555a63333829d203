package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tasknest/tasknest/internal/testsupport"
)

// chdir changes the working directory for the duration of the test,
// standing in for t.Chdir which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %q: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd %q: %v", prev, err)
		}
	})
}

func setDBPathFlag(t *testing.T, value string) {
	t.Helper()

	prev := dbPathFlag
	t.Cleanup(func() { dbPathFlag = prev })
	dbPathFlag = value
}

func setServeAddrFlag(t *testing.T, value string) {
	t.Helper()

	prev := serveAddr
	t.Cleanup(func() { serveAddr = prev })
	serveAddr = value
}

func TestResolveDBPathFlagWins(t *testing.T) {
	testsupport.SetupTestHome(t)
	setDBPathFlag(t, "/tmp/flag-tasks.db")
	t.Setenv("TASKNEST_DB", "/tmp/env-tasks.db")

	path, err := resolveDBPath()
	if err != nil {
		t.Fatalf("resolve db path: %v", err)
	}
	if path != "/tmp/flag-tasks.db" {
		t.Fatalf("expected flag path to win, got %q", path)
	}
}

func TestResolveDBPathUsesEnv(t *testing.T) {
	testsupport.SetupTestHome(t)
	setDBPathFlag(t, "")
	t.Setenv("TASKNEST_DB", "/tmp/env-tasks.db")

	path, err := resolveDBPath()
	if err != nil {
		t.Fatalf("resolve db path: %v", err)
	}
	if path != "/tmp/env-tasks.db" {
		t.Fatalf("expected env path, got %q", path)
	}
}

func TestResolveDBPathUsesConfig(t *testing.T) {
	testsupport.SetupTestHome(t)
	setDBPathFlag(t, "")
	t.Setenv("TASKNEST_DB", "")

	projectDir := t.TempDir()
	configContent := "[store]\npath = \"/tmp/config-tasks.db\"\n"
	if err := os.WriteFile(filepath.Join(projectDir, "tasknest.toml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, projectDir)

	path, err := resolveDBPath()
	if err != nil {
		t.Fatalf("resolve db path: %v", err)
	}
	if path != "/tmp/config-tasks.db" {
		t.Fatalf("expected config path, got %q", path)
	}
}

func TestResolveDBPathDefault(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	setDBPathFlag(t, "")
	t.Setenv("TASKNEST_DB", "")
	chdir(t, t.TempDir())

	path, err := resolveDBPath()
	if err != nil {
		t.Fatalf("resolve db path: %v", err)
	}

	want := filepath.Join(homeDir, ".local", "state", "tasknest", "tasks.db")
	if path != want {
		t.Fatalf("expected default path %q, got %q", want, path)
	}
}

func TestResolveServeAddrFlagWins(t *testing.T) {
	testsupport.SetupTestHome(t)
	setServeAddrFlag(t, ":9999")
	t.Setenv("TASKNEST_ADDR", ":8888")

	addr, err := resolveServeAddr()
	if err != nil {
		t.Fatalf("resolve addr: %v", err)
	}
	if addr != ":9999" {
		t.Fatalf("expected flag addr to win, got %q", addr)
	}
}

func TestResolveServeAddrUsesEnv(t *testing.T) {
	testsupport.SetupTestHome(t)
	setServeAddrFlag(t, "")
	t.Setenv("TASKNEST_ADDR", ":8888")

	addr, err := resolveServeAddr()
	if err != nil {
		t.Fatalf("resolve addr: %v", err)
	}
	if addr != ":8888" {
		t.Fatalf("expected env addr, got %q", addr)
	}
}

func TestResolveServeAddrDefault(t *testing.T) {
	testsupport.SetupTestHome(t)
	setServeAddrFlag(t, "")
	t.Setenv("TASKNEST_ADDR", "")
	chdir(t, t.TempDir())

	addr, err := resolveServeAddr()
	if err != nil {
		t.Fatalf("resolve addr: %v", err)
	}
	if addr != defaultServeAddr {
		t.Fatalf("expected default addr %q, got %q", defaultServeAddr, addr)
	}
}

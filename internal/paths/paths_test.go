package paths

import (
	"path/filepath"
	"testing"
)

func TestDefaultStateDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := DefaultStateDir()
	if err != nil {
		t.Fatalf("failed to resolve state dir: %v", err)
	}

	want := filepath.Join(home, ".local", "state", "tasknest")
	if dir != want {
		t.Errorf("expected %q, got %q", want, dir)
	}
}

func TestDefaultDBPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("failed to resolve db path: %v", err)
	}

	want := filepath.Join(home, ".local", "state", "tasknest", "tasks.db")
	if path != want {
		t.Errorf("expected %q, got %q", want, path)
	}
}

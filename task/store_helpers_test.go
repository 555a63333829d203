package task

import (
	"path/filepath"
	"testing"
)

// mockPrompter implements Prompter for testing.
type mockPrompter struct {
	response bool
	err      error
	called   bool
}

func (m *mockPrompter) Confirm(message string) (bool, error) {
	m.called = true
	return m.response, m.err
}

// countingInvalidator implements Invalidator for testing.
type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) Invalidate() {
	c.calls++
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "tasks.db"), OpenOptions{})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

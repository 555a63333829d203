package main

import (
	"strings"
	"testing"
)

func TestParseTaskIDArgs(t *testing.T) {
	ids, err := parseTaskIDArgs([]string{"1", " 42 ", "7"})
	if err != nil {
		t.Fatalf("parse ids: %v", err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 42 || ids[2] != 7 {
		t.Fatalf("expected [1 42 7], got %v", ids)
	}
}

func TestParseTaskIDArgsRejectsBadIDs(t *testing.T) {
	for _, bad := range []string{"abc", "0", "-3", ""} {
		if _, err := parseTaskIDArgs([]string{bad}); err == nil {
			t.Fatalf("expected error for id %q", bad)
		}
	}
}

func TestResolveDescriptionFromStdinPassthrough(t *testing.T) {
	got, err := resolveDescriptionFromStdin("buy milk", strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("resolve description: %v", err)
	}
	if got != "buy milk" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestResolveDescriptionFromStdinReadsDash(t *testing.T) {
	got, err := resolveDescriptionFromStdin("-", strings.NewReader("from stdin\n"))
	if err != nil {
		t.Fatalf("resolve description: %v", err)
	}
	if got != "from stdin" {
		t.Fatalf("expected stdin contents, got %q", got)
	}
}

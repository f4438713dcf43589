// Package testkit provides small assertion and seam helpers shared by tests
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustPanic asserts that fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustNotPanic asserts that fn returns normally
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain asserts that haystack contains needle. On failure the full
// haystack is dumped to a temp file so long log output stays readable
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	dump := filepath.Join(t.TempDir(), "assert_output.txt")
	_ = os.WriteFile(dump, []byte(haystack), 0o600)
	t.Fatalf("expected output to contain %q\n\nfull output written to %s", needle, dump)
}

package testkit

import (
	"sync"
	"testing"
)

// serialMu serializes tests that mutate package-level seams
var serialMu sync.Mutex

// Swap replaces a package-level variable for the duration of the test
// and restores the original in Cleanup
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds a process-wide lock for the whole test so seam mutations
// in one test cannot bleed into another running in parallel
func Serial(t *testing.T) {
	t.Helper()
	serialMu.Lock()
	t.Cleanup(serialMu.Unlock)
}

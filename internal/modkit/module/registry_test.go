package module

import (
	"sync"
	"testing"
)

// listerPorts mimics the bundle the installations module registers
type listerPorts struct {
	Module string
	Count  int
}

// must is a tiny helper for ok checks
func must(t *testing.T, ok bool, msg string) {
	t.Helper()
	if !ok {
		t.Fatalf("%s", msg)
	}
}

func TestRegistry_RegisterAndPortsAs_Success(t *testing.T) {
	t.Parallel()
	Reset()

	want := listerPorts{Module: "installations", Count: 3}
	Register("installations", want)

	got, ok := PortsAs[listerPorts]("installations")
	must(t, ok, "expected ok for a registered module")
	if got != want {
		t.Fatalf("unexpected value got=%v want=%v", got, want)
	}
}

func TestRegistry_PortsAs_MissingReturnsZeroAndFalse(t *testing.T) {
	t.Parallel()
	Reset()

	got, ok := PortsAs[listerPorts]("summary")
	if ok {
		t.Fatal("expected ok=false for an unregistered module")
	}
	if got != (listerPorts{}) {
		t.Fatalf("expected zero value got=%v", got)
	}
}

func TestRegistry_PortsAs_TypeMismatchReturnsFalse(t *testing.T) {
	t.Parallel()
	Reset()

	Register("installations", listerPorts{Module: "installations", Count: 1})

	// ask for wrong type
	_, ok := PortsAs[int]("installations")
	if ok {
		t.Fatal("expected ok=false for type mismatch")
	}
}

func TestRegistry_Register_OverwritesExisting(t *testing.T) {
	t.Parallel()
	Reset()

	Register("activity", listerPorts{Module: "stale", Count: 1})
	Register("activity", listerPorts{Module: "activity", Count: 2})

	got, ok := PortsAs[listerPorts]("activity")
	must(t, ok, "expected ok for activity after overwrite")
	if got.Module != "activity" || got.Count != 2 {
		t.Fatalf("expected overwritten value got=%v", got)
	}
}

func TestRegistry_Reset_ClearsAll(t *testing.T) {
	t.Parallel()
	Reset()

	Register("meta", listerPorts{Module: "meta", Count: 9})
	Reset()

	_, ok := PortsAs[listerPorts]("meta")
	if ok {
		t.Fatal("expected ok=false after reset")
	}
}

func TestRegistry_ConcurrentRegisterAndRead_NoRace(t *testing.T) {
	t.Parallel()
	Reset()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(2)

	// writer
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			Register("installations", listerPorts{Module: "installations", Count: i})
		}
	}()

	// reader
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_, _ = PortsAs[listerPorts]("installations")
		}
	}()

	wg.Wait()

	got, ok := PortsAs[listerPorts]("installations")
	must(t, ok, "expected ok after concurrent writes")
	if got.Module != "installations" {
		t.Fatalf("unexpected final value got=%v", got)
	}
}

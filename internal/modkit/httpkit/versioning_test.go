package httpkit

import (
	"net/http"
	"testing"
)

func TestMountAPI_MountsPrefixAndAppliesMiddleware(t *testing.T) {
	t.Parallel()

	rec := &mountRecorder{}
	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }

	mounts := 0
	MountAPI(rec, "v2", []func(http.Handler) http.Handler{mwA, mwB}, func(api Router) {
		mounts++
	})

	if len(rec.prefixes) != 1 {
		t.Fatalf("expected 1 Route call, got %d", len(rec.prefixes))
	}
	if got, want := rec.prefixes[0], "/api/v2"; got != want {
		t.Fatalf("expected prefix %q, got %q", want, got)
	}
	if rec.useCalls != 1 || rec.lastMWLen != 2 {
		t.Fatalf("expected Use once with 2 middleware, got calls=%d len=%d", rec.useCalls, rec.lastMWLen)
	}
	if mounts != 1 {
		t.Fatalf("expected mount closure to be invoked once, got %d", mounts)
	}
}

func TestMountAPI_TrimsLeadingSlashOnVersion(t *testing.T) {
	t.Parallel()

	rec := &mountRecorder{}
	mounts := 0
	MountAPI(rec, "/v3", nil, func(api Router) { mounts++ })

	if got, want := rec.prefixes[0], "/api/v3"; got != want {
		t.Fatalf("expected prefix %q, got %q", want, got)
	}
	if rec.useCalls != 0 {
		t.Fatalf("expected Use not called for empty middleware, got %d", rec.useCalls)
	}
	if mounts != 1 {
		t.Fatalf("expected mount closure to be invoked once, got %d", mounts)
	}
}

func TestMountAPIV1_Convenience(t *testing.T) {
	t.Parallel()

	rec := &mountRecorder{}
	mw := func(next http.Handler) http.Handler { return next }

	mounts := 0
	MountAPIV1(rec, []func(http.Handler) http.Handler{mw}, func(api Router) { mounts++ })

	if got, want := rec.prefixes[0], "/api/v1"; got != want {
		t.Fatalf("expected prefix %q, got %q", want, got)
	}
	if rec.useCalls != 1 || rec.lastMWLen != 1 {
		t.Fatalf("expected Use once with 1 middleware, got calls=%d len=%d", rec.useCalls, rec.lastMWLen)
	}
	if mounts != 1 {
		t.Fatalf("expected mount closure to be invoked once, got %d", mounts)
	}
}

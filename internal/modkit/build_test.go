package modkit

import (
	"net/http"
	"reflect"
	"testing"

	"gitpulse/internal/modkit/httpkit"
	kit "gitpulse/internal/platform/testkit"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()

	if b.Name != "" || b.Prefix != "" {
		t.Fatalf("defaults should be empty, got name=%q prefix=%q", b.Name, b.Prefix)
	}
	if b.Ports != nil {
		t.Fatalf("default Ports non-nil")
	}
	if b.SwaggerOn {
		t.Fatalf("default SwaggerOn = true, want false")
	}
	if len(b.Mw) != 0 {
		t.Fatalf("default Mw length = %d, want 0", len(b.Mw))
	}

	// Subrouter defaults to identity, Register to a no-op
	var r httpkit.Router
	if r2 := b.Subrouter(r); r2 != r {
		t.Fatalf("default Subrouter should be identity")
	}
	kit.MustNotPanic(t, func() { b.Register(r) })
}

func TestBuild_WithOptionsAndCopySemantics(t *testing.T) {
	t.Parallel()

	// compare funcs by program counter
	fnPtr := func(f func(http.Handler) http.Handler) uintptr {
		return reflect.ValueOf(f).Pointer()
	}

	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }
	mid := []func(http.Handler) http.Handler{mwA, mwB}

	subCalled := 0
	regCalled := 0

	type ports struct {
		Count  int
		Module string
	}
	p := ports{Count: 7, Module: "installations"}

	// hooks wired through an in-package Option, same as module code does
	hooks := Option(func(c *buildCfg) {
		c.subrouter = func(in httpkit.Router) httpkit.Router {
			subCalled++
			return in
		}
		c.register = func(httpkit.Router) { regCalled++ }
		c.swaggerOn = true
	})

	b := Build(
		WithName("installations"),
		WithPrefix("/api/v1/installations"),
		WithMiddlewares(mid...),
		WithPorts[ports](p),
		hooks,
	)

	if b.Name != "installations" {
		t.Fatalf("Name = %q", b.Name)
	}
	if b.Prefix != "/api/v1/installations" {
		t.Fatalf("Prefix = %q", b.Prefix)
	}
	if got, ok := b.Ports.(ports); !ok || got != p {
		t.Fatalf("Ports mismatch after Build")
	}
	if !b.SwaggerOn {
		t.Fatalf("SwaggerOn = false, want true")
	}

	// middleware slice is copied in order
	if len(b.Mw) != 2 {
		t.Fatalf("Mw length = %d, want 2", len(b.Mw))
	}
	if fnPtr(b.Mw[0]) != fnPtr(mwA) || fnPtr(b.Mw[1]) != fnPtr(mwB) {
		t.Fatalf("Mw contents not preserved")
	}

	// mutating the source slice after Build must not reach Built.Mw
	mid[0] = func(next http.Handler) http.Handler { return next }
	if fnPtr(b.Mw[0]) != fnPtr(mwA) || fnPtr(b.Mw[1]) != fnPtr(mwB) {
		t.Fatalf("Built.Mw aliased the source slice")
	}

	// hooks are plumbed through
	var r httpkit.Router
	if out := b.Subrouter(r); out != r {
		t.Fatalf("Subrouter did not return its input")
	}
	if subCalled != 1 {
		t.Fatalf("Subrouter invocations = %d, want 1", subCalled)
	}

	b.Register(r)
	if regCalled != 1 {
		t.Fatalf("Register invocations = %d, want 1", regCalled)
	}
}

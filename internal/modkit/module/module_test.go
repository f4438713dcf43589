package module

import (
	"testing"

	phttp "gitpulse/internal/platform/net/http"
)

// flagModule records MountRoutes invocations and serves a configurable
// ports payload
type flagModule struct {
	mounted *bool
	ports   any
}

func (s *flagModule) MountRoutes(_ phttp.Router) {
	if s.mounted != nil {
		*s.mounted = true
	}
}

func (s *flagModule) Ports() any   { return s.ports }
func (s *flagModule) Name() string { return "installations" }

var _ Module = (*flagModule)(nil)

func TestModule_MountRoutes(t *testing.T) {
	t.Parallel()

	called := false
	m := &flagModule{mounted: &called}

	// a typed nil router is allowed, the contract does not require usage
	var r phttp.Router
	m.MountRoutes(r)

	if !called {
		t.Fatalf("expected MountRoutes to set called but it did not")
	}
}

func TestModule_PortsShapes(t *testing.T) {
	t.Parallel()

	type bundle struct {
		Module string
		Count  int
	}

	cases := []struct {
		name  string
		ports any
		check func(t *testing.T, v any)
	}{
		{
			name:  "nil ports",
			ports: nil,
			check: func(t *testing.T, v any) {
				if v != nil {
					t.Fatalf("expected nil ports got %T", v)
				}
			},
		},
		{
			name:  "primitive ports",
			ports: 123,
			check: func(t *testing.T, v any) {
				if n, ok := v.(int); !ok || n != 123 {
					t.Fatalf("expected int 123 got %v", v)
				}
			},
		},
		{
			name:  "struct ports",
			ports: bundle{Module: "installations", Count: 7},
			check: func(t *testing.T, v any) {
				b, ok := v.(bundle)
				if !ok {
					t.Fatalf("expected bundle got %T", v)
				}
				if b.Module != "installations" || b.Count != 7 {
					t.Fatalf("unexpected bundle contents %+v", b)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &flagModule{ports: tc.ports}
			tc.check(t, m.Ports())
		})
	}
}

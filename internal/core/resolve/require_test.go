package resolve

import (
	"net/http/httptest"
	"testing"

	perr "gitpulse/internal/platform/errors"
)

func TestRequireReturnsID(t *testing.T) {
	r := httptest.NewRequest("GET", "/?installation_id=4242", nil)
	id, err := Require(Options{Request: r})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 4242 {
		t.Fatalf("id = %d, want 4242", id)
	}
}

func TestRequireFailureIsTyped(t *testing.T) {
	cases := []struct {
		name       string
		target     string
		wantSource string
	}{
		{"nothing supplied", "/", "none"},
		{"invalid query", "/?installation_id=abc", "query"},
	}
	for _, c := range cases {
		r := httptest.NewRequest("GET", c.target, nil)
		id, err := Require(Options{Request: r})
		if err == nil {
			t.Fatalf("%s: expected error, got id %d", c.name, id)
		}
		e, ok := perr.As(err)
		if !ok {
			t.Fatalf("%s: error is not a platform error: %v", c.name, err)
		}
		if e.Kind() != perr.KindInstallationRequired {
			t.Fatalf("%s: kind = %v, want KindInstallationRequired", c.name, e.Kind())
		}
		if e.Source() != c.wantSource {
			t.Fatalf("%s: source = %q, want %q", c.name, e.Source(), c.wantSource)
		}

		// the classified response carries the machine-readable contract
		cls := perr.Classify(err)
		if cls.Code != "INSTALLATION_ID_REQUIRED" || !cls.NeedsInstallation {
			t.Fatalf("%s: classified = %+v", c.name, cls)
		}
	}
}

package httpkit

import (
	"errors"
	"testing"
	"time"

	"gitpulse/internal/core/ghapp"
	perr "gitpulse/internal/platform/errors"
)

func TestPort_Parse_MissingHeaderIsAnonymous(t *testing.T) {
	p := NewPortFunc(func(string) (*ghapp.Session, error) {
		t.Fatal("parser should not be called without a header")
		return nil, nil
	})

	sess, err := p.Parse(newReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected anonymous nil session, got %+v", sess)
	}
}

func TestPort_Parse_WrongSchemeAndEmptyToken(t *testing.T) {
	p := NewPortFunc(func(string) (*ghapp.Session, error) {
		t.Fatal("parser should not be called for malformed headers")
		return nil, nil
	})

	for _, h := range []string{"Basic abc", "Bearer", "Bearer    "} {
		req := newReq()
		req.Header.Set("Authorization", h)
		_, err := p.Parse(req)
		if err == nil {
			t.Fatalf("header %q: expected error", h)
		}
		if !perr.IsKind(err, perr.KindToken) {
			t.Fatalf("header %q: kind = %v want token", h, perr.KindOf(err))
		}
	}
}

func TestPort_Parse_InvalidToken(t *testing.T) {
	p := NewPortFunc(func(string) (*ghapp.Session, error) {
		return nil, errors.New("nope")
	})

	req := newReq()
	req.Header.Set("Authorization", "Bearer junk")
	_, err := p.Parse(req)
	if err == nil {
		t.Fatal("expected error for rejected token")
	}
	if !perr.IsKind(err, perr.KindToken) {
		t.Fatalf("kind = %v want token", perr.KindOf(err))
	}
}

func TestPort_Parse_ClassifiedErrorKeepsKind(t *testing.T) {
	// a rate-limited /user lookup is a retryable upstream failure, not a
	// bad token; re-kinding it would force a sign-out on the client
	reset := time.Now().Add(30 * time.Minute)
	p := NewPortFunc(func(string) (*ghapp.Session, error) {
		return nil, perr.RateLimitf(reset, "github rate limit exceeded")
	})

	req := newReq()
	req.Header.Set("Authorization", "Bearer tok")
	_, err := p.Parse(req)
	if err == nil {
		t.Fatal("expected error")
	}
	if !perr.IsKind(err, perr.KindRateLimit) {
		t.Fatalf("kind = %v want rate limit", perr.KindOf(err))
	}
	pe, ok := perr.As(err)
	if !ok || !pe.ResetAt().Equal(reset) {
		t.Fatalf("reset time lost through parse: %+v", pe)
	}
}

func TestPort_Parse_ValidToken_CaseInsensitiveAndTrim(t *testing.T) {
	var got string
	want := &ghapp.Session{User: ghapp.User{Login: "octocat"}}
	p := NewPortFunc(func(tok string) (*ghapp.Session, error) {
		got = tok
		return want, nil
	})

	req := newReq()
	req.Header.Set("Authorization", "  bEaReR   tok-1  ")
	sess, err := p.Parse(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess != want {
		t.Fatalf("session mismatch: %+v", sess)
	}
	if got != "tok-1" {
		t.Fatalf("token passed to parser = %q want tok-1", got)
	}
}

func TestPort_Parse_NilParser(t *testing.T) {
	p := NewPortFunc(nil)
	req := newReq()
	req.Header.Set("Authorization", "Bearer something")
	_, err := p.Parse(req)
	if err == nil {
		t.Fatal("expected error with nil parser")
	}
	if !perr.IsKind(err, perr.KindToken) {
		t.Fatalf("kind = %v want token", perr.KindOf(err))
	}
}

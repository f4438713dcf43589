// Package httpkit provides tiny HTTP helpers and adapters
package httpkit

import (
	"net/http"
	"strings"

	"gitpulse/internal/core/ghapp"
	perr "gitpulse/internal/platform/errors"
)

// TokenFunc exchanges a bearer token for the session it represents
type TokenFunc func(token string) (*ghapp.Session, error)

// Port implements middleware.SessionPort by reading Authorization and delegating to a TokenFunc
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a simple parser function
func NewPortFunc(fn TokenFunc) *Port {
	return &Port{parse: fn}
}

// Parse extracts the session from the Authorization Bearer token.
// A missing header means an anonymous request and returns nil, nil so
// query and cookie resolution still work downstream; a present but
// malformed or rejected token is an error
func (p *Port) Parse(r *http.Request) (*ghapp.Session, error) {
	authz := r.Header.Get("Authorization")
	// normalize whitespace around the whole header
	s := strings.TrimSpace(authz)
	if s == "" {
		return nil, nil
	}
	ls := strings.ToLower(s)
	const prefix = "bearer"
	if !strings.HasPrefix(ls, prefix) {
		return nil, perr.Tokenf("malformed bearer token")
	}
	// slice after "Bearer" (no trailing space required), then trim any spaces before token
	raw := strings.TrimSpace(s[len(prefix):])
	if raw == "" {
		return nil, perr.Tokenf("malformed bearer token")
	}

	if p.parse == nil {
		return nil, perr.Tokenf("invalid bearer token")
	}

	sess, err := p.parse(raw)
	if err != nil {
		// already-classified failures (rate limits, upstream faults) keep
		// their kind; only foreign errors become token errors
		if _, ok := perr.As(err); ok {
			return nil, err
		}
		return nil, perr.Wrap(err, perr.KindToken, "invalid bearer token")
	}
	return sess, nil
}

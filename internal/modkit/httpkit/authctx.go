package httpkit

import (
	"net/http"
	"strings"

	"gitpulse/internal/core/ghapp"
	perr "gitpulse/internal/platform/errors"
	pnet "gitpulse/internal/platform/net"
)

// Session returns the parsed session from the request context
func Session(r *http.Request) (*ghapp.Session, error) {
	sess := pnet.Session(r.Context())
	if sess == nil {
		return nil, perr.Tokenf("missing session")
	}
	return sess, nil
}

// MustSession returns the session or panics
// only use on routes behind RequireSession
func MustSession(r *http.Request) *ghapp.Session {
	sess, err := Session(r)
	if err != nil {
		panic(err)
	}
	return sess
}

// Installation returns the installation id the session carries, 0 when none
func Installation(r *http.Request) int64 {
	return pnet.InstallationID(r.Context())
}

// Bearer returns the raw bearer token from the Authorization header
func Bearer(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	if strings.TrimSpace(authz) == "" {
		return "", perr.Tokenf("missing bearer token")
	}
	// case-insensitive Bearer prefix (don't trim the whole header first)
	const prefix = "bearer "
	if len(authz) < len(prefix) || strings.ToLower(authz[:len(prefix)]) != prefix {
		return "", perr.Tokenf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perr.Tokenf("missing bearer token")
	}
	return raw, nil
}

// MustBearer returns the raw bearer token or panics
// only use on routes protected by the session middleware
func MustBearer(r *http.Request) string {
	raw, err := Bearer(r)
	if err != nil {
		panic(err)
	}
	return raw
}

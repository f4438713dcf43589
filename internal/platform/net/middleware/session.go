package middleware

import (
	"net/http"
	"time"

	"gitpulse/internal/core/ghapp"
	perr "gitpulse/internal/platform/errors"
	pnet "gitpulse/internal/platform/net"
)

// SessionPort is the seam the authentication layer implements.
// Parse returns the session for the request, or nil when the request is
// anonymous; errors are reserved for malformed credentials
type SessionPort interface {
	Parse(r *http.Request) (*ghapp.Session, error)
}

// Session stashes the parsed session on the request context. A nil port is
// a no-op until wired; anonymous requests pass through with no session so
// downstream resolvers can still consult query and cookie sources. A parsed
// session past its expiry is rejected like a malformed credential
func Session(p SessionPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			sess, err := p.Parse(r)
			if err == nil && sess.Expired(time.Now()) {
				err = perr.Tokenf("session expired")
			}
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				w.Header().Set("X-Request-ID", body.RequestID)
				write(w, status, body)
				return
			}
			if sess == nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := pnet.WithSession(r.Context(), sess)
			ctx = pnet.WithRequest(ctx, pnet.RequestID(ctx), sess.InstallationID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Module tags the context with the owning API module name so error logs
// carry it
func Module(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(pnet.WithModule(r.Context(), name)))
		})
	}
}

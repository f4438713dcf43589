package httpkit

import (
	"net/http"

	perr "gitpulse/internal/platform/errors"
	pnet "gitpulse/internal/platform/net"
	phttp "gitpulse/internal/platform/net/http"
)

// RequireSession rejects anonymous requests. The session middleware lets
// them through so resolvers can fall back to query and cookie sources;
// routes that act as the signed-in user mount behind this guard instead
func RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if pnet.Session(r.Context()) == nil {
				status, body := pnet.Error(perr.Tokenf("missing session"), pnet.RequestID(r.Context()))
				w.Header().Set("X-Request-ID", body.RequestID)
				phttp.JSON(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Protected groups routes behind the session guard
func Protected(r Router, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(RequireSession())
		fn(gr)
	})
}

package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "gitpulse/internal/platform/net/http"
	"gitpulse/internal/platform/net/middleware"
)

// CommonStack returns a baseline per module middleware slice
// compose with your session middleware as needed in main
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability: structured access log, warn on slow requests
		middleware.AccessLog,

		// cross-origin (tweak config in main if needed)
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}

// WithSession wires the session middleware to the platform JSON writer
func WithSession(p middleware.SessionPort) func(http.Handler) http.Handler {
	// middleware expects write func(w http.ResponseWriter, status int, body any)
	// use phttp.JSON which matches that signature
	return middleware.Session(p, phttp.JSON)
}

// Module tags requests with the owning module name for error logs
func Module(name string) func(http.Handler) http.Handler {
	return middleware.Module(name)
}

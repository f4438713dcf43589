// Package http hosts server adapters. Profiler mounts pprof endpoints when enabled
package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler exposes pprof under prefix (e.g. "/debug") when enabled.
// Disabled is a no-op so callers can wire it unconditionally from config
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(prefix, mw.Profiler())
	serve := func(w stdhttp.ResponseWriter, req *stdhttp.Request) { h.ServeHTTP(w, req) }

	// the bare prefix and everything below it
	r.Get(prefix, serve)
	r.Get(prefix+"/*", serve)
}

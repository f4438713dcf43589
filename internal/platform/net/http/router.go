package http

import "net/http"

// Handler is the platform-wide handler signature. Plain functions keep the
// modules decoupled from any particular mux
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the mounting surface handed to modules. The concrete
// implementation wraps chi (see AdaptChi); modules never see chi directly
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)
	Head(path string, h Handler)
	Options(path string, h Handler)

	// Handle mounts a plain http.Handler, e.g. the swagger UI
	Handle(path string, h http.Handler)

	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux exposes the underlying handler for the http.Server
	Mux() http.Handler
}

package httpkit

import "net/http"

// MountUnder routes a module under prefix, applying its middlewares to the
// subrouter only so sibling modules are unaffected
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountModule is MountUnder plus the module hooks: the optional subrouter
// swap runs after the scoped middleware, then register attaches the endpoints
func MountModule(r Router, prefix string, mw []func(http.Handler) http.Handler, subrouter func(Router) Router, register func(Router)) {
	MountUnder(r, prefix, mw, func(sub Router) {
		if subrouter != nil {
			sub = subrouter(sub)
		}
		if register != nil {
			register(sub)
		}
	})
}

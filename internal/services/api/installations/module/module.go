// Package module wires installations into the API using modkit
package module

import (
	"net/http"

	modkit "gitpulse/internal/modkit"
	"gitpulse/internal/modkit/httpkit"
	str "gitpulse/internal/platform/strings"
	insthttp "gitpulse/internal/services/api/installations/http"
	instsvc "gitpulse/internal/services/api/installations/service"
)

// Module implements the installations module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc instsvc.Service
}

// New constructs the installations module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("installations"),
		modkit.WithPrefix("/installations"),
	}, opts...)...)

	svc := instsvc.New(deps.GitHub)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Lister: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		insthttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountModule(r, m.prefix, m.mws, m.subrouter, m.register)
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

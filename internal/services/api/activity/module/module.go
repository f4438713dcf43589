// Package module wires activity into the API using modkit
package module

import (
	"net/http"

	modkit "gitpulse/internal/modkit"
	"gitpulse/internal/modkit/httpkit"
	str "gitpulse/internal/platform/strings"
	acthttp "gitpulse/internal/services/api/activity/http"
	actsvc "gitpulse/internal/services/api/activity/service"
)

// Module implements the activity module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc actsvc.Service
}

// New constructs the activity module.
// Inject the installations Lister with modkit.WithPorts(Ports{Lister: ...})
// so multi resolution can validate against the session's installations
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("activity"),
		modkit.WithPrefix("/activity"),
	}, opts...)...)

	svc := actsvc.New(deps.GitHub)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	ports, _ := b.Ports.(Ports)
	m.ports = ports

	external := b.Register
	m.register = func(r httpkit.Router) {
		acthttp.Register(r, m.svc, ports.Lister)
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

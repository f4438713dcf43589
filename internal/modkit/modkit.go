package modkit

import (
	phttp "gitpulse/internal/platform/net/http"
)

// Module is the common surface for API modules: mount routes, expose ports.
// Kept tiny so modules stay decoupled from each other
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)

	// Ports returns a module specific port set for cross wiring
	Ports() any

	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps and options; modules expose
// New(deps Deps, opts ...Option) Module following this shape
type Builder func(Deps, ...Option) Module

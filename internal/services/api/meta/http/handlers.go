// Package http serves the meta endpoints: health, build version, and
// service uptime
package http

import (
	"net/http"
	"time"

	"gitpulse/internal/core/version"
	"gitpulse/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: stamp(h.deps.StartedAt),
		Now:     stamp(time.Now()),
	}, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: stamp(h.deps.StartedAt),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
	}, nil
}

// Package service contains summary workflows
package service

import (
	"context"

	perr "gitpulse/internal/platform/errors"
	"gitpulse/internal/services/api/summary/domain"
)

// Service defines the summary service contract
type Service interface {
	Generate(ctx context.Context, req domain.Request) (domain.Summary, error)
}

// Svc implements the summary service over an injected generator
type Svc struct {
	gen domain.GeneratorPort
}

// New constructs a summary service. A nil generator is allowed; requests
// then fail with a configuration error instead of at startup
func New(gen domain.GeneratorPort) *Svc {
	return &Svc{gen: gen}
}

// Generate produces a summary for the requested window
func (s *Svc) Generate(ctx context.Context, req domain.Request) (domain.Summary, error) {
	if s.gen == nil {
		return domain.Summary{}, perr.Configf("summary generator not configured")
	}
	if req.Period == "" {
		req.Period = "week"
	}
	return s.gen.Generate(ctx, req)
}

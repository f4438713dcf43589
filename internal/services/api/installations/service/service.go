// Package service contains installation workflows
package service

import (
	"context"

	gh "gitpulse/internal/adapters/github"
	"gitpulse/internal/core/ghapp"
	perr "gitpulse/internal/platform/errors"
	"gitpulse/internal/services/api/installations/domain"
)

// Service defines the installations service contract
type Service interface {
	domain.ListerPort
}

// Svc implements the installations service
type Svc struct {
	gh *gh.Client
}

// New constructs an installations service
func New(client *gh.Client) *Svc {
	if client == nil {
		panic("installations.Service requires a non nil GitHub client")
	}
	return &Svc{gh: client}
}

// List returns the App installations the session user can access
func (s *Svc) List(ctx context.Context, sess *ghapp.Session) ([]ghapp.Installation, error) {
	if sess == nil || sess.AccessToken == "" {
		return nil, perr.Tokenf("missing session token")
	}
	return s.gh.UserInstallations(ctx, sess.AccessToken)
}

// Package service contains activity workflows
package service

import (
	"context"

	gh "gitpulse/internal/adapters/github"
	"gitpulse/internal/core/ghapp"
	perr "gitpulse/internal/platform/errors"
	"gitpulse/internal/services/api/activity/domain"
)

// Service defines the activity service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the activity service
type Svc struct {
	gh *gh.Client
}

// New constructs an activity service
func New(client *gh.Client) *Svc {
	if client == nil {
		panic("activity.Service requires a non nil GitHub client")
	}
	return &Svc{gh: client}
}

// Events returns a page of the session user's received events
func (s *Svc) Events(ctx context.Context, sess *ghapp.Session, installationID int64, page, perPage int) (domain.EventsResponse, error) {
	if sess == nil || sess.AccessToken == "" {
		return domain.EventsResponse{}, perr.Tokenf("missing session token")
	}
	events, err := s.gh.ReceivedEvents(ctx, sess.AccessToken, sess.User.Login, page, perPage)
	if err != nil {
		return domain.EventsResponse{}, err
	}
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 || perPage > 100 {
		perPage = 30
	}
	return domain.EventsResponse{
		InstallationID: installationID,
		Events:         events,
		Page:           page,
		PerPage:        perPage,
	}, nil
}

// Repos returns repositories grouped by installation
func (s *Svc) Repos(ctx context.Context, sess *ghapp.Session, installationIDs []int64) (domain.ReposResponse, error) {
	if sess == nil || sess.AccessToken == "" {
		return domain.ReposResponse{}, perr.Tokenf("missing session token")
	}
	out := domain.ReposResponse{
		Installations: make([]domain.InstallationRepos, 0, len(installationIDs)),
	}
	for _, id := range installationIDs {
		repos, err := s.gh.InstallationRepositories(ctx, sess.AccessToken, id)
		if err != nil {
			return domain.ReposResponse{}, err
		}
		out.Installations = append(out.Installations, domain.InstallationRepos{
			InstallationID: id,
			Repositories:   repos,
		})
	}
	return out, nil
}

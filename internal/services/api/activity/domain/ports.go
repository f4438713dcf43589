package domain

import (
	"context"

	"gitpulse/internal/core/ghapp"
)

// ServicePort is consumed by handlers
type ServicePort interface {
	Events(ctx context.Context, sess *ghapp.Session, installationID int64, page, perPage int) (EventsResponse, error)
	Repos(ctx context.Context, sess *ghapp.Session, installationIDs []int64) (ReposResponse, error)
}

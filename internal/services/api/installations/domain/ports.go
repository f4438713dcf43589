package domain

import (
	"context"

	"gitpulse/internal/core/ghapp"
)

// ListerPort is consumed by handlers and other modules that need the
// session user's available installations
type ListerPort interface {
	List(ctx context.Context, sess *ghapp.Session) ([]ghapp.Installation, error)
}

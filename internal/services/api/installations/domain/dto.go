// Package domain holds installation DTOs and ports
package domain

import (
	"gitpulse/internal/core/ghapp"
	"gitpulse/internal/core/resolve"
)

// ListResponse carries the installations the session user can access
type ListResponse struct {
	Installations []ghapp.Installation `json:"installations"`
	Total         int                  `json:"total"`
}

// CurrentResponse reports how the installation id resolved for this request
type CurrentResponse struct {
	Resolved  resolve.Identifier `json:"resolved"`
	Available []int64            `json:"available,omitempty"`
}

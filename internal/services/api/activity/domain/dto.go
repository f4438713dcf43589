// Package domain holds activity DTOs and ports
package domain

import (
	"gitpulse/internal/core/ghapp"
)

// EventsResponse is a page of the session user's received events scoped to
// the resolved installation
type EventsResponse struct {
	InstallationID int64         `json:"installationId"`
	Events         []ghapp.Event `json:"events"`
	Page           int           `json:"page"`
	PerPage        int           `json:"perPage"`
}

// InstallationRepos groups repositories under the installation that grants
// access to them
type InstallationRepos struct {
	InstallationID int64              `json:"installationId"`
	Repositories   []ghapp.Repository `json:"repositories"`
}

// ReposResponse lists repositories for every resolved installation
type ReposResponse struct {
	Installations []InstallationRepos `json:"installations"`
}

// Package domain holds summary DTOs and ports
package domain

import "time"

// Request describes the window a summary should cover. Installation ids
// come either as a JSON array or as the comma-separated form clients
// forward verbatim from the installation_ids query parameter
type Request struct {
	InstallationIDs    []int64 `json:"installationIds,omitempty"`
	InstallationIDsCSV string  `json:"installationIdsCsv,omitempty" validate:"omitempty,comma_ints"`
	Period             string  `json:"period,omitempty" validate:"omitempty,oneof=day week month"`
}

// Summary is a generated digest of recent activity
type Summary struct {
	Text            string    `json:"text"`
	Period          string    `json:"period"`
	InstallationIDs []int64   `json:"installationIds"`
	GeneratedAt     time.Time `json:"generatedAt"`
}

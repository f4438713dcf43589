// Package ghapp holds the GitHub App domain types shared across services.
// Everything here is a per-request snapshot: read-only once constructed
package ghapp

import "time"

// Account is the org or user an App installation is granted on
type Account struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatarUrl"`
	Type      string `json:"type"`
}

// Installation is a GitHub App authorization grant, the tenant unit all
// API calls are scoped by
type Installation struct {
	ID         int64   `json:"id"`
	Account    Account `json:"account"`
	AppID      int64   `json:"appId"`
	TargetType string  `json:"targetType"`
}

// User is the signed-in GitHub user behind a session
type User struct {
	Login     string `json:"login"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Session is the authentication layer's view of the current user.
// This package only reads it; InstallationID == 0 means the session
// carries no installation
type Session struct {
	User           User      `json:"user"`
	AccessToken    string    `json:"accessToken,omitempty"`
	InstallationID int64     `json:"installationId,omitempty"`
	Expires        time.Time `json:"expires"`
}

// HasInstallation reports whether the session carries an installation id,
// valid or not
func (s *Session) HasInstallation() bool {
	return s != nil && s.InstallationID != 0
}

// Expired reports whether the session is past its expiry
func (s *Session) Expired(now time.Time) bool {
	return s != nil && !s.Expires.IsZero() && now.After(s.Expires)
}

// Repository is the subset of a GitHub repository the dashboard shows
type Repository struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Private  bool   `json:"private"`
	HTMLURL  string `json:"htmlUrl,omitempty"`
	Language string `json:"language,omitempty"`
}

// Event is a single entry from a user's received-events feed
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Actor     Account   `json:"actor"`
	Repo      string    `json:"repo"`
	CreatedAt time.Time `json:"createdAt"`
}

// IDs returns the installation ids of a slice of installations in order
func IDs(list []Installation) []int64 {
	out := make([]int64, 0, len(list))
	for _, in := range list {
		out = append(out, in.ID)
	}
	return out
}

// Contains reports whether list holds an installation with the given id
func Contains(list []Installation, id int64) bool {
	for _, in := range list {
		if in.ID == id {
			return true
		}
	}
	return false
}

package resolve

import (
	"net/http"
	"strings"

	"gitpulse/internal/core/ghapp"
)

// MultiOptions configures a list resolution. Same sources and precedence as
// Options; the query parameter carries a comma-separated list instead
type MultiOptions struct {
	Request   *http.Request
	Session   *ghapp.Session
	Available []ghapp.Installation

	// QueryParam defaults to "installation_ids"
	QueryParam string
	// CookieName defaults to "github_installation_id"
	CookieName string

	UseFirstAvailable bool

	// ValidateAgainstAvailable intersects the resolved ids with the ids in
	// Available, whichever source they came from, preserving input order
	ValidateAgainstAvailable bool
}

// Installations resolves a list of installation ids. Unlike the single
// resolver it never reports partial validity: entries that do not parse are
// silently dropped, since this serves list-shaped query params where a bad
// entry should not poison the rest
func Installations(opts MultiOptions) []int64 {
	param := opts.QueryParam
	if param == "" {
		param = DefaultMultiQueryParam
	}
	cookie := opts.CookieName
	if cookie == "" {
		cookie = DefaultCookieName
	}

	if raw, ok := fromQuery(opts.Request, param); ok {
		return opts.confirm(splitIDs(raw))
	}

	// the session is still the winning source when validation drops its id;
	// an empty list comes back rather than falling through to the cookie
	if opts.Session.HasInstallation() && opts.Session.InstallationID > 0 {
		return opts.confirm([]int64{opts.Session.InstallationID})
	}

	if raw, ok := fromCookie(opts.Request, cookie); ok {
		if id, errText := parsePositiveInt(raw); errText == "" {
			return opts.confirm([]int64{id})
		}
		return []int64{}
	}

	if opts.UseFirstAvailable && len(opts.Available) > 0 {
		return []int64{opts.Available[0].ID}
	}

	return []int64{}
}

// confirm applies the optional membership check to a resolved list
func (o MultiOptions) confirm(ids []int64) []int64 {
	if !o.ValidateAgainstAvailable {
		return ids
	}
	return intersect(ids, o.Available)
}

// splitIDs parses a comma-separated list, trimming entries and dropping
// anything that is not a positive base-10 integer
func splitIDs(raw string) []int64 {
	out := []int64{}
	for _, part := range strings.Split(raw, ",") {
		if id, errText := parsePositiveInt(part); errText == "" {
			out = append(out, id)
		}
	}
	return out
}

// intersect keeps ids present in the available set, preserving input order
func intersect(ids []int64, available []ghapp.Installation) []int64 {
	out := []int64{}
	for _, id := range ids {
		if ghapp.Contains(available, id) {
			out = append(out, id)
		}
	}
	return out
}

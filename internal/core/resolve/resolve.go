// Package resolve determines which GitHub App installation a request acts
// on behalf of. Resolution is a fixed precedence over independent sources
// (query, session, cookie, fallback); the first source that yields any
// candidate wins and is never retried against later sources, even when the
// candidate turns out to be invalid.
//
// Everything in this package is pure and request-scoped: inputs are
// snapshots, nothing is cached, and no I/O happens here
package resolve

import (
	"net/http"
	"strconv"
	"strings"

	"gitpulse/internal/core/ghapp"
)

// Default parameter names, overridable per call
const (
	DefaultQueryParam      = "installation_id"
	DefaultMultiQueryParam = "installation_ids"
	DefaultCookieName      = "github_installation_id"
)

// Source tags which input produced a resolved identifier
type Source string

// Source values are part of the INSTALLATION_ID_REQUIRED metadata contract
const (
	SourceQuery     Source = "query"
	SourceSession   Source = "session"
	SourceCookie    Source = "cookie"
	SourceAvailable Source = "available_installations"
	SourceFallback  Source = "fallback"
	SourceNone      Source = "none"
)

// Identifier is the outcome of a single resolution.
// Source is always set, even when nothing was found; ID is only
// meaningful when Valid is true
type Identifier struct {
	ID     int64  `json:"id,omitempty"`
	Source Source `json:"source"`
	Valid  bool   `json:"isValid"`
	Err    string `json:"error,omitempty"`
}

// Options configures a resolution. Request, Session, and Available are
// per-request snapshots supplied by the caller; none are mutated
type Options struct {
	Request   *http.Request
	Session   *ghapp.Session
	Available []ghapp.Installation

	// QueryParam defaults to "installation_id"
	QueryParam string
	// CookieName defaults to "github_installation_id"
	CookieName string

	// UseFirstAvailable takes the first available installation when no
	// other source yields a candidate
	UseFirstAvailable bool

	// ValidateAgainstAvailable additionally requires the resolved id to be
	// a member of Available. Off by default; membership failures keep the
	// originating source and report invalid
	ValidateAgainstAvailable bool
}

// Installation resolves a single installation id over the fixed precedence
// query > session > cookie > first-available fallback > none
func Installation(opts Options) Identifier {
	param := opts.QueryParam
	if param == "" {
		param = DefaultQueryParam
	}
	cookie := opts.CookieName
	if cookie == "" {
		cookie = DefaultCookieName
	}

	if raw, ok := fromQuery(opts.Request, param); ok {
		return confirmAvailable(parseIdentifier(raw, SourceQuery), opts)
	}

	// a session-supplied id stops resolution here even when invalid;
	// it does not fall through to the cookie
	if opts.Session.HasInstallation() {
		id := opts.Session.InstallationID
		if id <= 0 {
			return Identifier{
				Source: SourceSession,
				Err:    "session installation id must be a positive integer, got " + strconv.FormatInt(id, 10),
			}
		}
		return confirmAvailable(Identifier{ID: id, Source: SourceSession, Valid: true}, opts)
	}

	if raw, ok := fromCookie(opts.Request, cookie); ok {
		return confirmAvailable(parseIdentifier(raw, SourceCookie), opts)
	}

	if opts.UseFirstAvailable && len(opts.Available) > 0 {
		return Identifier{ID: opts.Available[0].ID, Source: SourceFallback, Valid: true}
	}

	return Identifier{
		Source: SourceNone,
		Err:    "no installation id found in query, session, or cookie",
	}
}

// confirmAvailable applies the optional membership check to a valid result
func confirmAvailable(id Identifier, opts Options) Identifier {
	if !opts.ValidateAgainstAvailable || !id.Valid {
		return id
	}
	if !ghapp.Contains(opts.Available, id.ID) {
		return Identifier{
			Source: id.Source,
			Err:    "installation " + strconv.FormatInt(id.ID, 10) + " is not among the available installations",
		}
	}
	id.Source = SourceAvailable
	return id
}

// parseIdentifier applies the shared validation rule: the raw string must
// parse fully to a base-10 integer greater than zero
func parseIdentifier(raw string, src Source) Identifier {
	id, errText := parsePositiveInt(raw)
	if errText != "" {
		return Identifier{Source: src, Err: errText}
	}
	return Identifier{ID: id, Source: src, Valid: true}
}

func parsePositiveInt(raw string) (int64, string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, "installation id is empty"
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, "installation id " + strconv.Quote(s) + " is not a base-10 integer"
	}
	if id <= 0 {
		return 0, "installation id must be a positive integer, got " + s
	}
	return id, ""
}

// Source readers. Each extracts a raw candidate without judging validity

// fromQuery returns the named query parameter when present
func fromQuery(r *http.Request, name string) (string, bool) {
	if r == nil || r.URL == nil {
		return "", false
	}
	vals, ok := r.URL.Query()[name]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// fromCookie scans the raw Cookie header for the named pair. The header is
// split on ";" with whitespace tolerance so pair order and spacing do not
// matter; the stdlib cookie jar is deliberately bypassed to keep the reader
// a pure function of the header string
func fromCookie(r *http.Request, name string) (string, bool) {
	if r == nil {
		return "", false
	}
	header := r.Header.Get("Cookie")
	if header == "" {
		return "", false
	}
	for _, pair := range strings.Split(header, ";") {
		pair = strings.TrimSpace(pair)
		k, v, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		if strings.TrimSpace(k) == name {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// Package errors provides a structured error type with wrapping and the
// closed GitHub domain taxonomy used across services
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"time"
)

// Kind is the closed set of failure kinds the API distinguishes.
// Numeric values are internal only; the stable wire identifiers come
// from Kind.Code
type Kind uint8

const (
	// KindUnknown is for recovered values that are not errors at all
	KindUnknown Kind = iota

	// KindInternal is for plain runtime errors outside the GitHub domain
	KindInternal

	// KindGitHub is for GitHub domain errors with no finer classification
	KindGitHub

	// KindAuth is for GitHub auth failures (client must sign out)
	KindAuth

	// KindToken is for expired or invalid tokens (subtype of auth)
	KindToken

	// KindScope is for missing OAuth scopes (subtype of auth)
	KindScope

	// KindRateLimit is for exhausted GitHub quota, carries a reset time
	KindRateLimit

	// KindNotFound is for missing upstream resources
	KindNotFound

	// KindAPI is for generic upstream API faults, carries the upstream status
	KindAPI

	// KindConfig is for GitHub App misconfiguration (operator-fixable)
	KindConfig

	// KindInstallationRequired is for failed installation id resolution
	KindInstallationRequired

	// KindValidation is for request input validation failures
	KindValidation
)

// Code returns the machine-readable wire code for a kind.
// Values are part of the client contract; never change them
func (k Kind) Code() string {
	switch k {
	case KindAuth:
		return "GITHUB_AUTH_ERROR"
	case KindToken:
		return "GITHUB_TOKEN_ERROR"
	case KindScope:
		return "GITHUB_SCOPE_ERROR"
	case KindRateLimit:
		return "GITHUB_RATE_LIMIT_ERROR"
	case KindNotFound:
		return "GITHUB_NOT_FOUND_ERROR"
	case KindAPI:
		return "GITHUB_API_ERROR"
	case KindConfig:
		return "GITHUB_APP_CONFIG_ERROR"
	case KindGitHub:
		return "GITHUB_ERROR"
	case KindInternal:
		return "API_ERROR"
	case KindInstallationRequired:
		return "INSTALLATION_ID_REQUIRED"
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindUnknown:
		return "UNKNOWN_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// HTTPStatusCode turns a Kind into an http status code.
// The whole auth family maps to 403 rather than 401 so browsers never raise
// a native credential prompt; clients key off signOutRequired instead
func HTTPStatusCode(k Kind) int {
	switch k {
	case KindAuth, KindToken, KindScope:
		return http.StatusForbidden
	case KindRateLimit:
		return http.StatusTooManyRequests
	case KindNotFound:
		return http.StatusNotFound
	case KindInstallationRequired, KindValidation:
		return http.StatusBadRequest
	case KindAPI, KindConfig, KindGitHub, KindInternal, KindUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Error is the structured error type with wrapping and taxonomy metadata
// msg is human/developer facing; kind drives the wire mapping
// status is the upstream status for KindAPI when known
// resetAt is the quota reset for KindRateLimit
// source is the resolver source for KindInstallationRequired
type Error struct {
	orig    error
	msg     string
	kind    Kind
	status  int
	resetAt time.Time
	source  string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error { return e.orig }

// Kind returns the taxonomy kind
func (e *Error) Kind() Kind { return e.kind }

// Message returns the human-readable message without the wrapped cause
func (e *Error) Message() string { return e.msg }

// UpstreamStatus returns the upstream HTTP status for KindAPI, 0 if unknown
func (e *Error) UpstreamStatus() int { return e.status }

// ResetAt returns the rate limit reset time, zero unless KindRateLimit
func (e *Error) ResetAt() time.Time { return e.resetAt }

// Source returns the resolution source tag, empty unless KindInstallationRequired
func (e *Error) Source() string { return e.source }

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf extracts a Kind from any error, defaulting to KindInternal
// for foreign errors (plain runtime failures)
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.kind
	}
	return KindInternal
}

// IsKind reports whether err has the given kind
func IsKind(err error, k Kind) bool { return KindOf(err) == k }

// HTTPStatus returns the mapped HTTP status for any error.
// A KindAPI error with a known upstream status passes that status through
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if e, ok := As(err); ok {
		if e.kind == KindAPI && e.status != 0 {
			return e.status
		}
		return HTTPStatusCode(e.kind)
	}
	return HTTPStatusCode(KindInternal)
}

// Mutators (copy-on-write)

// WithSource attaches a resolution source tag (copy-on-write).
// If err isn't *Error, returns err unchanged
func WithSource(err error, source string) error {
	if e, ok := As(err); ok {
		c := *e
		c.source = source
		return &c
	}
	return err
}

// WithUpstreamStatus attaches an upstream status (copy-on-write).
// If err isn't *Error, returns err unchanged
func WithUpstreamStatus(err error, status int) error {
	if e, ok := As(err); ok {
		c := *e
		c.status = status
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given kind and message
func New(kind Kind, msg string) error { return &Error{kind: kind, msg: msg} }

// Newf returns a new *Error with kind and formatted message
func Newf(kind Kind, format string, a ...any) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with kind and message
func Wrap(orig error, kind Kind, msg string) error {
	return &Error{kind: kind, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with kind and formatted message
func Wrapf(orig error, kind Kind, format string, a ...any) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err != nil (helper for 1-liners)
func WrapIf(err error, kind Kind, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, kind, msg)
}

// Sugar

// Authf returns a GitHub auth failure
func Authf(format string, a ...any) error { return Newf(KindAuth, format, a...) }

// Tokenf returns an expired/invalid token failure
func Tokenf(format string, a ...any) error { return Newf(KindToken, format, a...) }

// Scopef returns a missing scope failure
func Scopef(format string, a ...any) error { return Newf(KindScope, format, a...) }

// RateLimitf returns a quota exhaustion error carrying its reset time
func RateLimitf(resetAt time.Time, format string, a ...any) error {
	return &Error{kind: KindRateLimit, msg: fmt.Sprintf(format, a...), resetAt: resetAt}
}

// NotFoundf returns an upstream not found error
func NotFoundf(format string, a ...any) error { return Newf(KindNotFound, format, a...) }

// APIf returns a generic upstream fault carrying the upstream status (0 if unknown)
func APIf(status int, format string, a ...any) error {
	return &Error{kind: KindAPI, msg: fmt.Sprintf(format, a...), status: status}
}

// Configf returns a GitHub App misconfiguration error
func Configf(format string, a ...any) error { return Newf(KindConfig, format, a...) }

// GitHubf returns an unclassified GitHub domain error
func GitHubf(format string, a ...any) error { return Newf(KindGitHub, format, a...) }

// Internalf returns a plain internal error
func Internalf(format string, a ...any) error { return Newf(KindInternal, format, a...) }

// Validationf returns an input validation error
func Validationf(format string, a ...any) error { return Newf(KindValidation, format, a...) }

// InstallationRequiredf returns the mandatory resolver failure, tagged with
// the source the losing candidate came from
func InstallationRequiredf(source string, format string, a ...any) error {
	return &Error{kind: KindInstallationRequired, msg: fmt.Sprintf(format, a...), source: source}
}

// Retry semantics

// Retryable reports whether a retry may succeed: rate limited calls
// (after the reset) and upstream 5xx faults
func Retryable(err error) bool {
	e, ok := As(err)
	if !ok {
		return false
	}
	switch e.kind {
	case KindRateLimit:
		return true
	case KindAPI:
		return e.status >= 500 || e.status == 0
	default:
		return false
	}
}

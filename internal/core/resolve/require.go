package resolve

import (
	perr "gitpulse/internal/platform/errors"
)

// Require resolves a single installation id and converts an invalid or
// absent result into a typed INSTALLATION_ID_REQUIRED failure carrying the
// losing source, so callers can tell "user must install the App" apart from
// other failure modes without string-matching messages.
//
// This runs before any GitHub call is attempted: a request with no usable
// tenant context fails fast instead of wasting upstream I/O
func Require(opts Options) (int64, error) {
	res := Installation(opts)
	if res.Valid {
		return res.ID, nil
	}
	msg := res.Err
	if msg == "" {
		msg = "installation id is required"
	}
	return 0, perr.InstallationRequiredf(string(res.Source), "%s", msg)
}

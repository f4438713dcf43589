package net

import (
	"time"

	perr "gitpulse/internal/platform/errors"

	"github.com/google/uuid"
)

// Wire is the standardized error body. Field names and optionality are the
// client contract; do not reshape
type Wire struct {
	Error             string         `json:"error"`
	Code              string         `json:"code"`
	Details           string         `json:"details,omitempty"`
	RequestID         string         `json:"requestId,omitempty"`
	SignOutRequired   bool           `json:"signOutRequired,omitempty"`
	NeedsInstallation bool           `json:"needsInstallation,omitempty"`
	ResetAt           string         `json:"resetAt,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

// Error classifies err and builds the wire body. reqID may be empty, in
// which case a fresh one is generated: every error response carries one
func Error(err error, reqID string) (int, Wire) {
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c := perr.Classify(err)
	return c.Status, fromClassified(c, reqID)
}

// ErrorValue is Error for arbitrary recovered values (panics)
func ErrorValue(v any, reqID string) (int, Wire) {
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c := perr.Classify(v)
	return c.Status, fromClassified(c, reqID)
}

func fromClassified(c perr.Classified, reqID string) Wire {
	w := Wire{
		Error:             c.Message,
		Code:              c.Code,
		Details:           c.Details,
		RequestID:         reqID,
		SignOutRequired:   c.SignOutRequired,
		NeedsInstallation: c.NeedsInstallation,
		Metadata:          c.Metadata,
	}
	if !c.ResetAt.IsZero() {
		w.ResetAt = c.ResetAt.UTC().Format(time.RFC3339)
	}
	return w
}

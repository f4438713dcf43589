package errors

import (
	"net/http"
	"time"
)

// genericMessage is the only text a client ever sees for failures that are
// not part of the domain taxonomy; internals stay in logs
const genericMessage = "An unexpected error occurred"

// Classified is the outcome of mapping a failure onto the client contract:
// one status, one stable code, and the code-specific extra fields
type Classified struct {
	Status            int
	Code              string
	Message           string
	Details           string
	SignOutRequired   bool
	NeedsInstallation bool
	ResetAt           time.Time
	Metadata          map[string]any
}

// Classify maps any recovered value to its classification. It is total:
// errors in the taxonomy map per kind, foreign errors become API_ERROR with
// the original message as details, and non-error values become UNKNOWN_ERROR.
// Same kind in, same {status, code} out, always
func Classify(v any) Classified {
	switch x := v.(type) {
	case nil:
		return Classified{
			Status:  http.StatusInternalServerError,
			Code:    KindUnknown.Code(),
			Message: genericMessage,
		}
	case error:
		return classifyError(x)
	default:
		return Classified{
			Status:  http.StatusInternalServerError,
			Code:    KindUnknown.Code(),
			Message: genericMessage,
		}
	}
}

func classifyError(err error) Classified {
	e, ok := As(err)
	if !ok {
		// plain runtime error: generic client text, message preserved as details
		return Classified{
			Status:  http.StatusInternalServerError,
			Code:    KindInternal.Code(),
			Message: genericMessage,
			Details: err.Error(),
		}
	}

	c := Classified{
		Status:  HTTPStatus(e),
		Code:    e.kind.Code(),
		Message: e.msg,
	}
	if c.Message == "" {
		c.Message = genericMessage
	}

	switch e.kind {
	case KindAuth, KindToken, KindScope:
		c.SignOutRequired = true
	case KindRateLimit:
		c.ResetAt = e.resetAt
	case KindInstallationRequired:
		c.NeedsInstallation = true
		if e.source != "" {
			c.Metadata = map[string]any{"source": e.source}
		}
	case KindInternal:
		c.Message = genericMessage
		c.Details = e.msg
	case KindUnknown:
		c.Message = genericMessage
	}
	return c
}

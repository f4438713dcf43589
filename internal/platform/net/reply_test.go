package net

import (
	stderrs "errors"
	"encoding/json"
	"testing"
	"time"

	perr "gitpulse/internal/platform/errors"
)

func TestErrorBuildsContractBody(t *testing.T) {
	status, w := Error(perr.Authf("bad credentials"), "req-1")
	if status != 403 {
		t.Fatalf("status = %d, want 403", status)
	}
	if w.Code != "GITHUB_AUTH_ERROR" || !w.SignOutRequired || w.RequestID != "req-1" {
		t.Fatalf("wire = %+v", w)
	}
	if w.Error == "" {
		t.Fatalf("human-readable error text missing")
	}
}

func TestErrorGeneratesRequestID(t *testing.T) {
	_, w := Error(stderrs.New("boom"), "")
	if w.RequestID == "" {
		t.Fatalf("request id not generated")
	}
}

func TestErrorRateLimitResetISO(t *testing.T) {
	reset := time.Now().Add(time.Hour)
	status, w := Error(perr.RateLimitf(reset, "rate limited"), "req-2")
	if status != 429 || w.Code != "GITHUB_RATE_LIMIT_ERROR" {
		t.Fatalf("wire = %d %+v", status, w)
	}
	parsed, err := time.Parse(time.RFC3339, w.ResetAt)
	if err != nil {
		t.Fatalf("resetAt %q is not RFC3339: %v", w.ResetAt, err)
	}
	if !parsed.After(time.Now()) {
		t.Fatalf("resetAt %v is not in the future", parsed)
	}
}

func TestWireOmitsAbsentFields(t *testing.T) {
	// a not-found error carries none of the optional flags
	_, w := Error(perr.NotFoundf("missing repo"), "req-3")
	b, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, absent := range []string{"signOutRequired", "needsInstallation", "resetAt", "details", "metadata"} {
		if jsonHasKey(b, absent) {
			t.Fatalf("field %q should be omitted: %s", absent, b)
		}
	}
	for _, present := range []string{"error", "code", "requestId"} {
		if !jsonHasKey(b, present) {
			t.Fatalf("field %q missing: %s", present, b)
		}
	}
}

func TestErrorValueNonError(t *testing.T) {
	status, w := ErrorValue("panic string", "req-4")
	if status != 500 || w.Code != "UNKNOWN_ERROR" {
		t.Fatalf("wire = %d %+v", status, w)
	}
}

func jsonHasKey(b []byte, key string) bool {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return false
	}
	_, ok := m[key]
	return ok
}

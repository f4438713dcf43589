package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
	"time"
)

func TestClassifyTaxonomy(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"auth", Authf("bad credentials"), 403, "GITHUB_AUTH_ERROR"},
		{"token", Tokenf("token expired"), 403, "GITHUB_TOKEN_ERROR"},
		{"scope", Scopef("missing repo scope"), 403, "GITHUB_SCOPE_ERROR"},
		{"rate limit", RateLimitf(time.Now().Add(time.Hour), "rate limited"), 429, "GITHUB_RATE_LIMIT_ERROR"},
		{"not found", NotFoundf("no such repo"), 404, "GITHUB_NOT_FOUND_ERROR"},
		{"api with status", APIf(502, "bad gateway"), 502, "GITHUB_API_ERROR"},
		{"api without status", APIf(0, "aborted"), 500, "GITHUB_API_ERROR"},
		{"config", Configf("app id missing"), 500, "GITHUB_APP_CONFIG_ERROR"},
		{"github generic", GitHubf("odd payload"), 500, "GITHUB_ERROR"},
		{"internal", Internalf("nil deref"), 500, "API_ERROR"},
		{"installation required", InstallationRequiredf("none", "no installation id"), 400, "INSTALLATION_ID_REQUIRED"},
		{"validation", Validationf("bad field"), 400, "VALIDATION_ERROR"},
	}
	for _, c := range cases {
		got := Classify(c.err)
		if got.Status != c.wantStatus || got.Code != c.wantCode {
			t.Fatalf("%s: Classify = {%d %s}, want {%d %s}",
				c.name, got.Status, got.Code, c.wantStatus, c.wantCode)
		}
		// purity: classifying the same error twice gives the same pair
		again := Classify(c.err)
		if again.Status != got.Status || again.Code != got.Code {
			t.Fatalf("%s: classification is not stable", c.name)
		}
	}
}

func TestClassifyAuthFamilySignOut(t *testing.T) {
	for _, err := range []error{Authf("a"), Tokenf("t"), Scopef("s")} {
		c := Classify(err)
		if !c.SignOutRequired {
			t.Fatalf("Classify(%s) missing SignOutRequired", c.Code)
		}
		if c.Status != http.StatusForbidden {
			t.Fatalf("auth family status = %d, want 403 (never 401)", c.Status)
		}
	}
	if Classify(NotFoundf("x")).SignOutRequired {
		t.Fatalf("SignOutRequired leaked onto a non-auth kind")
	}
}

func TestClassifyRateLimitResetInFuture(t *testing.T) {
	reset := time.Now().Add(time.Hour)
	c := Classify(RateLimitf(reset, "rate limited"))
	if c.ResetAt.IsZero() || !c.ResetAt.After(time.Now()) {
		t.Fatalf("Classify(rate limit).ResetAt = %v, want strictly in the future", c.ResetAt)
	}
}

func TestClassifyInstallationRequired(t *testing.T) {
	c := Classify(InstallationRequiredf("session", "invalid installation id"))
	if !c.NeedsInstallation {
		t.Fatalf("NeedsInstallation not set")
	}
	if c.Metadata == nil || c.Metadata["source"] != "session" {
		t.Fatalf("source metadata missing: %+v", c.Metadata)
	}
	if c.Code != "INSTALLATION_ID_REQUIRED" || c.Status != 400 {
		t.Fatalf("got {%d %s}", c.Status, c.Code)
	}
}

func TestClassifyNeverLeaksInternals(t *testing.T) {
	// foreign error: generic message, original text as details only
	c := Classify(stderrs.New("pq: connection refused at 10.0.0.3"))
	if c.Code != "API_ERROR" || c.Status != 500 {
		t.Fatalf("foreign error: got {%d %s}", c.Status, c.Code)
	}
	if c.Message != genericMessage {
		t.Fatalf("foreign error leaked message: %q", c.Message)
	}
	if c.Details == "" {
		t.Fatalf("foreign error should carry details")
	}

	// KindInternal built in-process behaves the same
	ci := Classify(Internalf("worker pool drained"))
	if ci.Message != genericMessage || ci.Details != "worker pool drained" {
		t.Fatalf("internal error: message=%q details=%q", ci.Message, ci.Details)
	}
}

func TestClassifyNonErrorValues(t *testing.T) {
	// non-error values (recovered panics etc) map to UNKNOWN_ERROR,
	// error values always map through API_ERROR
	for _, v := range []any{nil, "boom", 42, struct{ X int }{1}} {
		c := Classify(v)
		if c.Code != "UNKNOWN_ERROR" || c.Status != 500 {
			t.Fatalf("Classify(%#v) = {%d %s}, want {500 UNKNOWN_ERROR}", v, c.Status, c.Code)
		}
		if c.Message != genericMessage {
			t.Fatalf("Classify(%#v) leaked message %q", v, c.Message)
		}
	}
	if c := Classify(any(stderrs.New("boom"))); c.Code != "API_ERROR" {
		t.Fatalf("error value classified as %s, want API_ERROR", c.Code)
	}
}

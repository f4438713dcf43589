package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitpulse/internal/platform/net/middleware"
)

func TestAccessLog_ForwardsStatusAndBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = io.WriteString(w, `{"queued":true}`)
	})
	req := httptest.NewRequest(http.MethodPost, "/api/summary/generate", nil)
	rr := httptest.NewRecorder()

	middleware.AccessLog(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected 202 got %d", rr.Code)
	}
	if rr.Body.String() != `{"queued":true}` {
		t.Fatalf("expected queued body got %q", rr.Body.String())
	}
}

func TestAccessLog_SlowRequestStillServed(t *testing.T) {
	// past the 500ms warn threshold; the response itself must be untouched
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(550 * time.Millisecond)
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/session", nil)
	rr := httptest.NewRecorder()

	middleware.AccessLog(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rr.Code)
	}
}

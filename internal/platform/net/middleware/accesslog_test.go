package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitpulse/internal/platform/net/middleware"
)

func TestAccessLogZerolog_PassesResponseThrough(t *testing.T) {
	cases := []struct {
		name    string
		opts    middleware.AccessLogOptions
		path    string
		handler http.HandlerFunc
		status  int
		body    string
	}{
		{
			name: "status and body survive the wrapper",
			path: "/installations",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = io.WriteString(w, `{"installations":[]}`)
			},
			status: http.StatusCreated,
			body:   `{"installations":[]}`,
		},
		{
			name: "slow marking never alters the response",
			opts: middleware.AccessLogOptions{Slow: time.Nanosecond},
			path: "/api/summary",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(50 * time.Microsecond)
				_, _ = io.WriteString(w, `{"summary":"quiet week"}`)
			},
			status: http.StatusOK,
			body:   `{"summary":"quiet week"}`,
		},
		{
			name: "multiple writes are all forwarded",
			path: "/api/activity",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"events":`))
				_, _ = w.Write([]byte(`42}`))
			},
			status: http.StatusOK,
			body:   `{"events":42}`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mw := middleware.AccessLogZerolog(c.opts)
			req := httptest.NewRequest(http.MethodGet, c.path, nil)
			rr := httptest.NewRecorder()

			mw(http.HandlerFunc(c.handler)).ServeHTTP(rr, req)

			if rr.Code != c.status {
				t.Fatalf("expected status %d got %d", c.status, rr.Code)
			}
			if rr.Body.String() != c.body {
				t.Fatalf("expected body %q got %q", c.body, rr.Body.String())
			}
		})
	}
}

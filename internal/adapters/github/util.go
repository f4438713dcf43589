package github

import (
	"io"
	"net/http"
	"strconv"
	"time"
)

// parseRateHeaders extracts GitHub rate-limit metadata. remaining is -1
// when the header is absent so an exhausted quota (0) stays distinguishable
func parseRateHeaders(h http.Header) (remaining int, reset time.Time, retryAfter int) {
	remaining = -1
	if rs := h.Get("X-RateLimit-Remaining"); rs != "" {
		remaining = atoi(rs)
	}
	if rs := h.Get("X-RateLimit-Reset"); rs != "" {
		if sec := atoi(rs); sec > 0 {
			reset = time.Unix(int64(sec), 0).UTC()
		}
	}
	retryAfter = atoi(h.Get("Retry-After"))
	return
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}

// Package github provides the outbound GitHub REST v3 client the API
// services wire behind their ports. Every call authenticates with the
// caller's session token, so the client itself holds no credentials
package github

import (
	"context"
	"io"
	"net/http"
	"time"

	perr "gitpulse/internal/platform/errors"
	"gitpulse/internal/platform/logger"
)

const (
	baseURLDefault   = "https://api.github.com"
	defaultTimeout   = 10 * time.Second
	defaultUA        = "gitpulse-api"
	defaultMaxRetry  = 2
	defaultRetryBase = 250 * time.Millisecond
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Retry config for transport errors and transient 5xx responses.
	// Rate-limited responses are never retried here; callers sit on an
	// interactive request path and get the reset time back instead
	MaxRetries int
	RetryBase  time.Duration
}

// Client is a minimal GitHub REST client with per-call bearer auth and
// ETag support
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("github"),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Do issues a request with auth headers, etag, retries, and rate limit
// classification. token is the session user's access token; etagIn is
// optional and adds If-None-Match for conditional requests.
// Non-2xx statuses other than 304 come back as classified errors so the
// response writer can map them without inspecting HTTP plumbing
func (c *Client) Do(ctx context.Context, method, path, token, etagIn string) (*http.Response, error) {
	url := c.opts.BaseURL + path
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, method, url, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.KindInternal, "github new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "application/vnd.github+json")
		if etagIn != "" {
			req.Header.Set("If-None-Match", etagIn)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.KindAPI, "github request failed")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("github transport error retrying")
			c.sleep(back)
			attempts++
			continue
		}

		rem, reset, retryAfter := parseRateHeaders(resp.Header)
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Int("rate_remaining", rem).
			Time("rate_reset", reset).
			Int("retry_after_s", retryAfter).
			Msg("github http response")

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNotModified:
			return resp, nil
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			if !c.shouldRetry(attempts) {
				status := resp.StatusCode
				_ = drainAndClose(resp.Body)
				return nil, perr.APIf(status, "github transient server error")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("github transient error retrying")
			_ = drainAndClose(resp.Body)
			c.sleep(back)
			attempts++
			continue
		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, c.classifyStatus(resp.StatusCode, resp.Header, string(body))
		}
	}
}

// classifyStatus turns a non-retryable GitHub response into a taxonomy error
func (c *Client) classifyStatus(status int, h http.Header, body string) error {
	rem, reset, retryAfter := parseRateHeaders(h)
	switch status {
	case http.StatusUnauthorized:
		return perr.Tokenf("github token rejected")
	case http.StatusForbidden, http.StatusTooManyRequests:
		if status == http.StatusTooManyRequests || rem == 0 || retryAfter > 0 {
			if reset.IsZero() && retryAfter > 0 {
				reset = c.now().Add(time.Duration(retryAfter) * time.Second)
			}
			if reset.IsZero() {
				// no reset headers at all; quotas are hourly, so report the
				// worst case rather than omitting resetAt from the wire
				reset = c.now().Add(time.Hour)
			}
			return perr.RateLimitf(reset, "github rate limit exceeded")
		}
		if scopes := h.Get("X-Accepted-OAuth-Scopes"); scopes != "" {
			return perr.Scopef("github token missing scopes: %s", scopes)
		}
		return perr.Authf("github access forbidden")
	case http.StatusNotFound:
		return perr.NotFoundf("github resource not found")
	default:
		return perr.APIf(status, "github unexpected status %d body %s", status, body)
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase
	// simple exponential with cap
	ms := int64(d / time.Millisecond)
	ms = ms << uint(attempt)
	max := int64(30 * time.Second / time.Millisecond)
	if ms > max {
		ms = max
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

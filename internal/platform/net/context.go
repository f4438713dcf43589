// Package net provides utilities for working with request contexts and the
// client-facing error wire contract
package net

import (
	"context"
	"strconv"

	"gitpulse/internal/core/ghapp"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyInstallation ctxKey = "installation_id"
	keySession      ctxKey = "session"
	keyModule       ctxKey = "module"
)

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID string, installationID int64) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if installationID > 0 {
		ctx = context.WithValue(ctx, keyInstallation, installationID)
	}
	return ctx
}

// WithSession annotates context with the authenticated session snapshot
func WithSession(ctx context.Context, s *ghapp.Session) context.Context {
	if s != nil {
		ctx = context.WithValue(ctx, keySession, s)
	}
	return ctx
}

// WithModule annotates context with the owning API module, used as the log
// tag when a request fails
func WithModule(ctx context.Context, name string) context.Context {
	if name != "" {
		ctx = context.WithValue(ctx, keyModule, name)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// InstallationID returns the installation id on the context, 0 if unset
func InstallationID(ctx context.Context) int64 {
	if v, ok := ctx.Value(keyInstallation).(int64); ok {
		return v
	}
	return 0
}

// InstallationTag renders the context installation id for log fields
func InstallationTag(ctx context.Context) string {
	if id := InstallationID(ctx); id > 0 {
		return strconv.FormatInt(id, 10)
	}
	return ""
}

// Session returns the session on the context if present
func Session(ctx context.Context) *ghapp.Session {
	if v, ok := ctx.Value(keySession).(*ghapp.Session); ok {
		return v
	}
	return nil
}

// Module returns the module tag on the context if present
func Module(ctx context.Context) string {
	if v, ok := ctx.Value(keyModule).(string); ok {
		return v
	}
	return ""
}

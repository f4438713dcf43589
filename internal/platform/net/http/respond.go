// Package http provides helpers for writing JSON responses and the error
// handling wrapper every route goes through
package http

import (
	"encoding/json"
	stdhttp "net/http"

	"gitpulse/internal/platform/logger"
	pnet "gitpulse/internal/platform/net"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONStatus writes only a status with an empty object body
func JSONStatus(w stdhttp.ResponseWriter, status int) {
	JSON(w, status, map[string]any{})
}

// RespondError classifies err, logs the original with the module tag, and
// writes the standardized error body. Effectful twin of Error for classic
// handlers
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	writeError(w, r, err)
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http. This is the only
// integration point routes need: a successful Response passes through
// untouched, an error Body is classified exactly once into the standardized
// wire format, so nothing unformatted ever reaches the HTTP layer
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	// an error Body takes over regardless of any preset status
	if err, ok := resp.Body.(error); ok && err != nil {
		writeError(w, r, err)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	// allow header overrides
	if resp.Header != nil {
		for k, vv := range resp.Header {
			for _, v := range vv {
				w.Header().Add(k, v)
			}
		}
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	// success path: the handler's payload goes out unchanged, no envelope
	JSON(w, status, resp.Body)
}

// writeError is the single spot converting failures into HTTP. The original
// error is logged with its module tag before the sanitized body goes out;
// internals never reach the client
func writeError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	ctx := r.Context()
	status, body := pnet.Error(err, pnet.RequestID(ctx))

	log := logger.C(ctx)
	log.Error().
		Err(err).
		Str("module", pnet.Module(ctx)).
		Str("request_id", body.RequestID).
		Int("status", status).
		Str("code", body.Code).
		Msg("request failed")

	w.Header().Set("X-Request-ID", body.RequestID)
	JSON(w, status, body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Data is an alias for OK
func Data(v any) Response { return OK(v) }

// Error returns a response that classifies the error when written
func Error(err error) Response { return Response{Body: err} }

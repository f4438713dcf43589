package http

import (
	"net/http"

	"gitpulse/internal/platform/net/http/bind"
)

// wrap lets handlers return either a plain value (wrapped as 200) or a
// full Response when they need a different status
func wrap(out any) Response {
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}

// JSONHandler adapts a body-decoding handler to a platform Handler; the
// payload is bound and validated before fn runs
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return wrap(out)
	})
}

// JSONHandlerNoBody calls fn without parsing a request body
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		return wrap(out)
	})
}

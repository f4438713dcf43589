package httpkit

import (
	"net/http"
)

// GetJSON mounts a body-decoding handler under GET
func GetJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Get(path, JSON(h))
}

// PostJSON mounts a body-decoding handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// PutJSON mounts a body-decoding handler under PUT
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Put(path, JSON(h))
}

// PatchJSON mounts a body-decoding handler under PATCH
func PatchJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Patch(path, JSON(h))
}

// DeleteJSON mounts a body-decoding handler under DELETE
func DeleteJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Delete(path, JSON(h))
}

// OptionsJSON mounts a body-decoding handler under OPTIONS
func OptionsJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Options(path, JSON(h))
}

// Body-less endpoints

// Get registers a no-body handler
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post registers a no-body handler
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}

// Put mounts a body-less handler under PUT
func Put(r Router, path string, h func(*http.Request) (any, error)) {
	r.Put(path, Call(h))
}

// Patch mounts a body-less handler under PATCH
func Patch(r Router, path string, h func(*http.Request) (any, error)) {
	r.Patch(path, Call(h))
}

// Delete mounts a body-less handler under DELETE
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, Call(h))
}

// Options mounts a body-less handler under OPTIONS
func Options(r Router, path string, h func(*http.Request) (any, error)) {
	r.Options(path, Call(h))
}

// Package strings provides string and slice helpers shared across modules
package strings

import std "strings"

// IfEmpty returns def when in has no elements, otherwise in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// Contains reports whether sub is within s
func Contains(s, sub string) bool { return std.Contains(s, sub) }

// HasSuffix reports whether s ends with suf
func HasSuffix(s, suf string) bool { return std.HasSuffix(s, suf) }

// MustString panics when s is blank; name identifies the missing value
// in the panic message
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a module root path like /installations or /summary:
// one leading slash, no trailing slash. A bare or empty root panics
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// EmptyToNil collapses all-whitespace input to the empty string
func EmptyToNil(s string) string {
	if std.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// Ptr returns a pointer to s, or nil for the empty string
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns "" for a nil pointer, else *ps
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}

// Package raw is the env reader used during bootstrap, before the logger
// exists. It must not import the logger package (import cycle).
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf reads environment variables under a namespace prefix,
// e.g. "CORE_API_" or "GITHUB_"
type Conf struct{ prefix string }

// New returns a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix returns a child Conf with an additional prefix (e.g. "LOG_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) lookup(key string) string {
	return strings.TrimSpace(os.Getenv(c.prefix + key))
}

// Get returns the trimmed env var or def when unset/empty
func (c Conf) Get(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// GetBool parses a bool-like env ("1|true|yes") with default fallback
func (c Conf) GetBool(key string, def bool) bool {
	switch strings.ToLower(c.lookup(key)) {
	case "":
		return def
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// GetInt parses a non-negative integer; unset, non-numeric or negative -> def
func (c Conf) GetInt(key string, def int) int {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}

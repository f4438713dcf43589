// Package modkit provides module wiring and core deps
package modkit

import (
	gh "gitpulse/internal/adapters/github"
	"gitpulse/internal/platform/config"
	"gitpulse/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	GitHub *gh.Client
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check the optional client
func (d Deps) ZeroOK() bool { return true }

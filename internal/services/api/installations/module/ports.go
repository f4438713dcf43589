package module

import (
	"gitpulse/internal/services/api/installations/domain"
)

// Ports bundles the cross-module surface of the installations module
type Ports struct {
	Lister domain.ListerPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

package module

import (
	instdomain "gitpulse/internal/services/api/installations/domain"
)

// Ports declares the cross-module dependencies the activity module consumes
type Ports struct {
	Lister instdomain.ListerPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

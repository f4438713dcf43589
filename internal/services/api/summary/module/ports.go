package module

import (
	"gitpulse/internal/services/api/summary/domain"
)

// Ports declares the external collaborators the summary module consumes
type Ports struct {
	Generator domain.GeneratorPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

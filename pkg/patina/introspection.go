package patina

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Root          string `json:"root"`
	CreatedField  string `json:"created_field"`
	ModifiedField string `json:"modified_field"`
	Watching      bool   `json:"watching"`
	Stamped       int    `json:"stamped"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ServiceState{
		Root:          s.root,
		CreatedField:  s.settings.CreatedField,
		ModifiedField: s.settings.ModifiedField,
		Watching:      s.watching,
		Stamped:       s.stamped,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)

package transport

import (
	"fmt"
	"strings"
)

// Settings names the props a Transport works on.
type Settings struct {
	// Phase is the phase name; filled from the phase when empty.
	Phase string `yaml:"phase"`
	// Quantity is the solved pore prop, e.g. "pore.concentration".
	Quantity string `yaml:"quantity"`
	// Conductance is the throat prop read to build A.
	Conductance string `yaml:"conductance"`
	// Cache keeps the pure Laplacian between assemblies. It is ignored
	// when the conductance is iterative.
	Cache bool `yaml:"cache"`
	// VariableProps are props recomputed from the solution.
	VariableProps []string `yaml:"variable_props"`
}

// DefaultSettings returns Settings with caching on.
func DefaultSettings() Settings {
	return Settings{Cache: true}
}

// validate reports the first missing required field.
func (s Settings) validate() error {
	var missing []string
	if s.Phase == "" {
		missing = append(missing, "phase")
	}
	if s.Quantity == "" {
		missing = append(missing, "quantity")
	}
	if s.Conductance == "" {
		missing = append(missing, "conductance")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s not defined", ErrIncompleteConfiguration, strings.Join(missing, ", "))
	}

	return nil
}

func (s Settings) clone() Settings {
	s.VariableProps = append([]string(nil), s.VariableProps...)

	return s
}

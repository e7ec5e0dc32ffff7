package config

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates malformed YAML or an unknown key.
	ErrParse = errors.New("config: cannot parse settings")

	// ErrInvalidSolver indicates an unknown solver method or a bad tolerance.
	ErrInvalidSolver = errors.New("config: invalid solver settings")

	// ErrInvalidLevel indicates a log level other than debug, info, warn or error.
	ErrInvalidLevel = errors.New("config: invalid log level")
)

// configErrorf wraps err with a call-site tag.
func configErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

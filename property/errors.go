package property

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey indicates a key that is not "pore.<name>" or
	// "throat.<name>".
	ErrInvalidKey = errors.New("property: invalid key")

	// ErrNotFound indicates a prop that is neither stored nor modelled.
	ErrNotFound = errors.New("property: prop not found")

	// ErrSizeMismatch indicates an array whose length does not match the
	// element count of the owning object.
	ErrSizeMismatch = errors.New("property: length does not match element count")

	// ErrBadShape indicates negative element counts.
	ErrBadShape = errors.New("property: element counts must be >= 0")

	// ErrDuplicateObject indicates an object name already used in a project.
	ErrDuplicateObject = errors.New("property: duplicate object name")

	// ErrUnknownObject indicates a geometry name not present in a project.
	ErrUnknownObject = errors.New("property: unknown object")

	// ErrOutOfRange indicates a pore or throat location outside the network.
	ErrOutOfRange = errors.New("property: location out of range")

	// ErrNilModel indicates AddModel was called without a function.
	ErrNilModel = errors.New("property: model function is nil")
)

// propertyErrorf wraps err with a call-site tag.
func propertyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

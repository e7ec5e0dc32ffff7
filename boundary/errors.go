package boundary

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch indicates a values slice that neither broadcasts
	// (length 1) nor matches the number of pores.
	ErrSizeMismatch = errors.New("boundary: number of values must be 1 or match number of pores")

	// ErrConflictingArguments indicates mutually exclusive rate arguments
	// (per-pore rates and a total rate) were both given, or neither was.
	ErrConflictingArguments = errors.New("boundary: conflicting arguments")

	// ErrUnknownPore indicates a pore index outside [0, Np).
	ErrUnknownPore = errors.New("boundary: pore index out of range")

	// ErrNonFinite indicates a NaN or ±Inf condition value.
	ErrNonFinite = errors.New("boundary: value must be finite")

	// ErrInvalidKind indicates a Kind not allowed for the operation
	// (All is accepted by Remove only).
	ErrInvalidKind = errors.New("boundary: invalid kind")

	// ErrInvalidMode indicates an unknown Mode.
	ErrInvalidMode = errors.New("boundary: invalid mode")
)

// boundaryErrorf wraps err with a call-site tag.
func boundaryErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

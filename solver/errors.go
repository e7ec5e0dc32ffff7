package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates Solve was called without a matrix.
	ErrNilMatrix = errors.New("solver: matrix is nil")

	// ErrDimensionMismatch indicates b or x0 do not match the matrix order.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")
)

// solverErrorf wraps err with a call-site tag.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

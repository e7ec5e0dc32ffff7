// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Builders and kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No exported function panics on user input;
// panics are reserved for option constructors and the gonum-compatible At.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so logs can be grepped.
// Call sites wrap with matrixErrorf(tag, ErrX); callers still match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> topology (indices, loops, duplicates) -> weights length -> NaN/Inf.

var (
	// ErrBadShape is returned when a requested dimension is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Get returns it; At panics with it to honor the gonum contract.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths between operands,
	// e.g. weights vs. connections, or a vector vs. matrix order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Sparse (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidTopology marks an edge list that cannot describe a network:
	// an endpoint outside [0, n), a self-loop, or a duplicated pair when
	// those are not allowed by options.
	ErrInvalidTopology = errors.New("matrix: invalid topology")

	// ErrStructural indicates a write into a position that is not part of
	// the sparsity pattern (only the diagonal is guaranteed to exist).
	ErrStructural = errors.New("matrix: entry not in sparsity pattern")
)

// matrixErrorf wraps err with a call-site tag, preserving the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// edgeErrorf wraps err with the offending edge position and endpoints.
func edgeErrorf(tag string, k, u, v int, err error) error {
	return fmt.Errorf("%s: edge %d (%d,%d): %w", tag, k, u, v, err)
}

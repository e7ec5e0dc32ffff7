// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and callers minimal by delegating nil/length/symmetry checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//
// AI-Hints:
//  - Use ValidateSymmetric after boundary-condition elimination: solvers
//    such as Cholesky rely on it.
//  - Use ValidateVecLen for any MatVec-like operations to avoid ad hoc length code.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Sparse) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is rejected even for n == 0.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric – Composite: NotNil → symmetry within eps.
// Errors: ErrNilMatrix, ErrAsymmetry.
// Complexity: O(nnz log row-nnz).
func ValidateSymmetric(m *Sparse, eps float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if !m.IsSymmetric(eps) {
		return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
	}

	return nil
}

// ValidateFinite – Composite: NotNil → every stored value finite → every
// element of the optional vectors finite.
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(nnz + Σ len(vecs)).
func ValidateFinite(m *Sparse, vecs ...[]float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	if !m.AllFinite() {
		return validatorErrorf("ValidateFinite: matrix", ErrNaNInf)
	}
	for vi, v := range vecs {
		for i, x := range v {
			if isNonFinite(x) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite: vector %d index %d", vi, i), ErrNaNInf)
			}
		}
	}

	return nil
}

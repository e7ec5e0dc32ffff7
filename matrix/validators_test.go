// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poreflow/matrix"
)

// TestValidateVecLen covers nil, matching and mismatched vectors.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		x       []float64
		n       int
		wantErr error
	}{
		{"nil", nil, 0, matrix.ErrNilMatrix},
		{"match", []float64{1, 2}, 2, nil},
		{"short", []float64{1}, 2, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateVecLen(tc.x, tc.n)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSymmetricAndFinite covers the composite validators.
func TestValidateSymmetricAndFinite(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)

	L, err := matrix.Laplacian(2, [][2]int{{0, 1}}, nil)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(L, 0))
	require.NoError(t, matrix.ValidateFinite(L, []float64{0, 1}))
	require.ErrorIs(t, matrix.ValidateFinite(L, []float64{0, math.Inf(1)}), matrix.ErrNaNInf)

	a, err := matrix.NewSparse(2, []matrix.Entry{{Row: 0, Col: 1, Val: 2}})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(a, 0), matrix.ErrAsymmetry)
}

// TestWithEpsilonPanics guards the option constructor contract.
func TestWithEpsilonPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
	require.Equal(t, 1e-3, matrix.NewOptions(matrix.WithEpsilon(1e-3)).Epsilon())
	require.Equal(t, matrix.DefaultEpsilon, matrix.NewOptions().Epsilon())
}

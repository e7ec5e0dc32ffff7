// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/poreflow/matrix"
)

// mustLaplacian builds a Laplacian or fails the test.
func mustLaplacian(t *testing.T, n int, conns [][2]int, w []float64) *matrix.Sparse {
	t.Helper()
	L, err := matrix.Laplacian(n, conns, w)
	require.NoError(t, err)

	return L
}

// TestNewSparse_FoldsDuplicatesAndSeedsDiagonal covers construction invariants.
func TestNewSparse_FoldsDuplicatesAndSeedsDiagonal(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSparse(3, []matrix.Entry{
		{Row: 0, Col: 2, Val: 1},
		{Row: 0, Col: 2, Val: 2.5},
		{Row: 2, Col: 1, Val: -1},
	})
	require.NoError(t, err)

	assert.Equal(t, 3.5, m.At(0, 2))
	assert.Equal(t, -1.0, m.At(2, 1))
	assert.Equal(t, []float64{0, 0, 0}, m.Diagonal())
	assert.Equal(t, 5, m.NNZ()) // three diagonal seeds + two folded positions
}

// TestNewSparse_Errors covers shape and index validation.
func TestNewSparse_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewSparse(0, nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewSparse(2, []matrix.Entry{{Row: 0, Col: 2, Val: 1}})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSparse_GetSetBounds checks safe accessors and the fixed pattern.
func TestSparse_GetSetBounds(t *testing.T) {
	t.Parallel()

	m := mustLaplacian(t, 3, [][2]int{{0, 1}}, nil)

	_, err := m.Get(3, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Panics(t, func() { m.At(-1, 0) })

	v, err := m.Get(0, 2)
	require.NoError(t, err)
	assert.Zero(t, v)

	assert.ErrorIs(t, m.Set(0, 2, 1), matrix.ErrStructural)
	require.NoError(t, m.Set(0, 1, -9))
	assert.Equal(t, -9.0, m.At(0, 1))
	assert.ErrorIs(t, m.SetDiag(5, 1), matrix.ErrOutOfRange)
}

// TestSparse_CloneIsIndependent ensures Clone shares no storage.
func TestSparse_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m := mustLaplacian(t, 2, [][2]int{{0, 1}}, []float64{2})
	c := m.Clone()
	require.NoError(t, c.SetDiag(0, 100))

	assert.Equal(t, 2.0, m.At(0, 0))
	assert.Equal(t, 100.0, c.At(0, 0))
}

// TestSparse_GonumInterop exercises mat.Matrix conformance.
func TestSparse_GonumInterop(t *testing.T) {
	t.Parallel()

	m := mustLaplacian(t, 3, [][2]int{{0, 1}, {1, 2}}, []float64{2, 3})
	d := mat.DenseCopyOf(m)
	assert.True(t, mat.Equal(d, m.ToDense()))
	assert.True(t, mat.Equal(m, m.T()))

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
}

// TestSparse_DoNonZeroSkipsExplicitZeros verifies the iterator contract.
func TestSparse_DoNonZeroSkipsExplicitZeros(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSparse(2, []matrix.Entry{{Row: 0, Col: 1, Val: math.Pi}})
	require.NoError(t, err)

	var seen int
	m.DoNonZero(func(i, j int, v float64) {
		seen++
		assert.Equal(t, 0, i)
		assert.Equal(t, 1, j)
		assert.Equal(t, math.Pi, v)
	})
	assert.Equal(t, 1, seen)
	assert.Contains(t, m.String(), "(0,1)=")
}

// SPDX-License-Identifier: MIT

// Package matrix - kernels over *Sparse used during system assembly.
//
// Purpose:
//   - MulVec for RHS corrections (b -= A·x_bc).
//   - Row/column masking and zero elimination for Dirichlet elimination.
//   - Structural checks: symmetry within eps, finiteness of stored values.
//   - Dense export into gonum for direct factorization.
//
// Determinism:
//   - Fixed row-major loop order; no map iteration.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxMulVec       = "MulVec"
	ctxZeroRowsCols = "ZeroRowsCols"
	ctxToSymDense   = "ToSymDense"
)

// MulVec returns y = A·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != n).
// Complexity: O(nnz).
func (m *Sparse) MulVec(x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(ctxMulVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, m.n); err != nil {
		return nil, matrixErrorf(ctxMulVec, err)
	}
	y := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		var acc float64
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			acc += m.data[k] * x[m.indices[k]]
		}
		y[i] = acc
	}

	return y, nil
}

// ZeroRowsCols zeroes every stored entry whose row OR column is flagged
// in mask. The pattern is kept; call EliminateZeros to compact it.
// Errors: ErrDimensionMismatch (len(mask) != n).
// Complexity: O(nnz).
func (m *Sparse) ZeroRowsCols(mask []bool) error {
	if len(mask) != m.n {
		return matrixErrorf(ctxZeroRowsCols, ErrDimensionMismatch)
	}
	for i := 0; i < m.n; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			if mask[i] || mask[m.indices[k]] {
				m.data[k] = 0
			}
		}
	}

	return nil
}

// EliminateZeros drops stored off-diagonal zeros. Diagonal entries stay
// stored regardless of value.
// Complexity: O(nnz).
func (m *Sparse) EliminateZeros() {
	w := 0
	start := 0
	for i := 0; i < m.n; i++ {
		end := m.indptr[i+1]
		for k := start; k < end; k++ {
			if m.data[k] == 0 && m.indices[k] != i {
				continue
			}
			m.indices[w] = m.indices[k]
			m.data[w] = m.data[k]
			w++
		}
		start = end
		m.indptr[i+1] = w
	}
	m.indices = m.indices[:w]
	m.data = m.data[:w]
}

// IsSymmetric reports whether |A[i,j] - A[j,i]| <= eps for every stored
// entry. NaN entries make the matrix asymmetric.
// Complexity: O(nnz log row-nnz).
func (m *Sparse) IsSymmetric(eps float64) bool {
	for i := 0; i < m.n; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			j := m.indices[k]
			if j <= i {
				continue
			}
			var t float64
			if kt := m.find(j, i); kt >= 0 {
				t = m.data[kt]
			}
			if !(math.Abs(m.data[k]-t) <= eps) {
				return false
			}
		}
	}
	// Entries stored only below the diagonal must be zero.
	for i := 0; i < m.n; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			j := m.indices[k]
			if j < i && m.find(j, i) < 0 && !(math.Abs(m.data[k]) <= eps) {
				return false
			}
		}
	}

	return true
}

// AllFinite reports whether every stored value is finite.
// Complexity: O(nnz).
func (m *Sparse) AllFinite() bool {
	for _, v := range m.data {
		if isNonFinite(v) {
			return false
		}
	}

	return true
}

// ToDense materializes A into a gonum dense matrix.
// Complexity: O(n² + nnz) time and O(n²) memory.
func (m *Sparse) ToDense() *mat.Dense {
	d := mat.NewDense(m.n, m.n, nil)
	for i := 0; i < m.n; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			d.Set(i, m.indices[k], m.data[k])
		}
	}

	return d
}

// ToSymDense materializes A into a gonum symmetric matrix using the upper
// triangle. Errors: ErrAsymmetry when A is not symmetric within eps.
// Complexity: O(n² + nnz log row-nnz).
func (m *Sparse) ToSymDense(eps float64) (*mat.SymDense, error) {
	if !m.IsSymmetric(eps) {
		return nil, matrixErrorf(ctxToSymDense, ErrAsymmetry)
	}
	s := mat.NewSymDense(m.n, nil)
	for i := 0; i < m.n; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			if j := m.indices[k]; j >= i {
				s.SetSym(i, j, m.data[k])
			}
		}
	}

	return s, nil
}

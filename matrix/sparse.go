// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (CSR) & safe accessors.
//
// Purpose:
//   - Hold an n×n coefficient matrix in compressed sparse row form.
//   - Keep the diagonal materialized for every row, even when its value is 0,
//     so boundary-condition elimination can always rewrite it in place.
//   - Interoperate with gonum: *Sparse satisfies mat.Matrix and
//     mat.NonZeroDoer, so any gonum routine can read it.
//
// Invariants (enforced by NewSparse and preserved by every method):
//   - len(indptr) == n+1, indptr[0] == 0, indptr[n] == len(indices) == len(data).
//   - Columns within a row are strictly increasing.
//   - (i, i) is stored for every i.
//
// Complexity quicksheet:
//   - NewSparse: O(nnz log nnz); Get/At: O(log row-nnz); Clone: O(nnz).

package matrix

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxNewSparse = "NewSparse"
	ctxGet       = "Sparse.Get"
	ctxSetDiag   = "Sparse.SetDiag"
	ctxSet       = "Sparse.Set"
)

// Sparse is a square CSR matrix of float64 values.
type Sparse struct {
	n       int       // order (rows == cols)
	indptr  []int     // row pointers, len n+1
	indices []int     // column index per stored entry
	data    []float64 // value per stored entry
}

// Compile-time assertions for gonum interface conformance.
var (
	_ mat.Matrix      = (*Sparse)(nil)
	_ mat.NonZeroDoer = (*Sparse)(nil)
	_ fmt.Stringer    = (*Sparse)(nil)
)

// NewSparse builds an n×n CSR matrix from triplets.
// MAIN DESCRIPTION:
//   - Duplicated positions are summed in input order (stable), so results
//     are bit-for-bit reproducible for a given entry sequence.
//   - A zero diagonal entry is inserted for every row not mentioned.
//
// Implementation:
//   - Stage 1: validate n > 0 and every index in range.
//   - Stage 2: bucket entries per row, diagonal seed first.
//   - Stage 3: stable-sort each row by column and fold duplicates.
//
// Errors:
//   - ErrBadShape (n <= 0), ErrOutOfRange (entry index outside [0, n)).
//
// Complexity:
//   - Time O(n + k log k) for k entries, Space O(n + k).
func NewSparse(n int, entries []Entry) (*Sparse, error) {
	if n <= 0 {
		return nil, matrixErrorf(ctxNewSparse, ErrBadShape)
	}
	for k, e := range entries {
		if e.Row < 0 || e.Row >= n || e.Col < 0 || e.Col >= n {
			return nil, fmt.Errorf("%s: entry %d (%d,%d): %w", ctxNewSparse, k, e.Row, e.Col, ErrOutOfRange)
		}
	}

	// Stage 2: one slot for the diagonal seed plus each entry in its row.
	counts := make([]int, n+1)
	for i := 0; i < n; i++ {
		counts[i+1] = 1
	}
	for _, e := range entries {
		counts[e.Row+1]++
	}
	for i := 0; i < n; i++ {
		counts[i+1] += counts[i]
	}
	cols := make([]int, counts[n])
	vals := make([]float64, counts[n])
	next := make([]int, n)
	copy(next, counts[:n])
	for i := 0; i < n; i++ {
		cols[next[i]] = i // diagonal seed, value 0
		next[i]++
	}
	for _, e := range entries {
		cols[next[e.Row]] = e.Col
		vals[next[e.Row]] = e.Val
		next[e.Row]++
	}

	// Stage 3: per-row stable sort + fold.
	s := &Sparse{
		n:       n,
		indptr:  make([]int, n+1),
		indices: make([]int, 0, len(cols)),
		data:    make([]float64, 0, len(vals)),
	}
	for i := 0; i < n; i++ {
		lo, hi := counts[i], counts[i+1]
		row := rowSorter{cols: cols[lo:hi], vals: vals[lo:hi]}
		sort.Stable(row)
		for k := 0; k < len(row.cols); k++ {
			last := len(s.indices) - 1
			if last >= s.indptr[i] && s.indices[last] == row.cols[k] {
				s.data[last] += row.vals[k]
				continue
			}
			s.indices = append(s.indices, row.cols[k])
			s.data = append(s.data, row.vals[k])
		}
		s.indptr[i+1] = len(s.indices)
	}

	return s, nil
}

// rowSorter sorts one CSR row (columns and values in lock-step).
type rowSorter struct {
	cols []int
	vals []float64
}

func (r rowSorter) Len() int           { return len(r.cols) }
func (r rowSorter) Less(i, j int) bool { return r.cols[i] < r.cols[j] }
func (r rowSorter) Swap(i, j int) {
	r.cols[i], r.cols[j] = r.cols[j], r.cols[i]
	r.vals[i], r.vals[j] = r.vals[j], r.vals[i]
}

// Order returns n for an n×n matrix.
func (m *Sparse) Order() int { return m.n }

// Dims returns (n, n). Part of mat.Matrix.
func (m *Sparse) Dims() (r, c int) { return m.n, m.n }

// NNZ returns the number of stored entries (explicit zeros included).
func (m *Sparse) NNZ() int { return len(m.data) }

// find returns the storage offset of (i, j) or -1 when not stored.
// Assumes 0 <= i < n.
func (m *Sparse) find(i, j int) int {
	lo, hi := m.indptr[i], m.indptr[i+1]
	k := lo + sort.SearchInts(m.indices[lo:hi], j)
	if k < hi && m.indices[k] == j {
		return k
	}

	return -1
}

// Get returns A[i, j], 0 for positions outside the sparsity pattern.
// Errors: ErrOutOfRange.
// Complexity: O(log row-nnz).
func (m *Sparse) Get(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxGet, i, j, ErrOutOfRange)
	}
	if k := m.find(i, j); k >= 0 {
		return m.data[k], nil
	}

	return 0, nil
}

// At returns A[i, j]. Part of mat.Matrix; like gonum it panics on an
// out-of-range index. Use Get for an error-returning accessor.
func (m *Sparse) At(i, j int) float64 {
	v, err := m.Get(i, j)
	if err != nil {
		panic(err)
	}

	return v
}

// T returns an implicit transpose view. Part of mat.Matrix.
func (m *Sparse) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// DoNonZero calls fn for every stored entry in row-major order.
// Explicit zeros kept on the diagonal are skipped. Part of mat.NonZeroDoer.
func (m *Sparse) DoNonZero(fn func(i, j int, v float64)) {
	for i := 0; i < m.n; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			if m.data[k] != 0 {
				fn(i, m.indices[k], m.data[k])
			}
		}
	}
}

// Set overwrites a stored entry. Positions outside the pattern fail with
// ErrStructural; the pattern never grows after construction.
func (m *Sparse) Set(i, j int, v float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("%s(%d,%d): %w", ctxSet, i, j, ErrOutOfRange)
	}
	k := m.find(i, j)
	if k < 0 {
		return fmt.Errorf("%s(%d,%d): %w", ctxSet, i, j, ErrStructural)
	}
	m.data[k] = v

	return nil
}

// Diagonal returns a fresh copy of diag(A).
// Complexity: O(n log row-nnz).
func (m *Sparse) Diagonal() []float64 {
	d := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		d[i] = m.data[m.find(i, i)] // diagonal is always stored
	}

	return d
}

// SetDiag writes A[i, i] = v.
// Errors: ErrOutOfRange.
func (m *Sparse) SetDiag(i int, v float64) error {
	if i < 0 || i >= m.n {
		return fmt.Errorf("%s(%d): %w", ctxSetDiag, i, ErrOutOfRange)
	}
	m.data[m.find(i, i)] = v

	return nil
}

// Values returns a copy of the stored values in CSR order.
func (m *Sparse) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy sharing nothing with m.
// Complexity: O(n + nnz).
func (m *Sparse) Clone() *Sparse {
	c := &Sparse{
		n:       m.n,
		indptr:  make([]int, len(m.indptr)),
		indices: make([]int, len(m.indices)),
		data:    make([]float64, len(m.data)),
	}
	copy(c.indptr, m.indptr)
	copy(c.indices, m.indices)
	copy(c.data, m.data)

	return c
}

// String renders the stored entries as "(i,j)=v" lines for debugging.
func (m *Sparse) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			fmt.Fprintf(&sb, "(%d,%d)=%g\n", i, m.indices[k], m.data[k])
		}
	}

	return sb.String()
}

// SPDX-License-Identifier: MIT

// Package matrix: domain types used by the builders and the sparse storage.
// This file intentionally contains ONLY small value types. Errors and
// options live in dedicated files (errors.go, options.go).
package matrix

// Entry is one (row, col, value) triplet fed into NewSparse.
// Duplicated (row, col) positions are summed during construction.
type Entry struct {
	Row int     // row index in [0, n)
	Col int     // column index in [0, n)
	Val float64 // contribution added to A[Row, Col]
}

// pairKey is a normalized unordered pair {min, max} used to detect
// duplicated throats during ingestion.
// Complexity: O(1) to build; used in O(E) scans during ingestion.
type pairKey struct {
	u int // smaller endpoint
	v int // larger endpoint
}

// newPairKey returns the normalized key for the unordered pair (a, b).
func newPairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{u: a, v: b}
}

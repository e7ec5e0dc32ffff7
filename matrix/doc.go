// Package matrix offers the sparse linear-algebra layer of poreflow.
//
// The matrix package provides:
//
//   - Sparse: a square CSR matrix with an always-materialized diagonal,
//     satisfying gonum's mat.Matrix and mat.NonZeroDoer interfaces.
//   - Laplacian / Adjacency: builders that turn a throat list plus
//     per-throat weights (conductances) into L = D - W or W.
//   - Kernels needed by Dirichlet elimination: MulVec, ZeroRowsCols,
//     SetDiag, EliminateZeros, IsSymmetric, AllFinite.
//   - Validators (ValidateVecLen, ValidateSymmetric, ValidateFinite) and
//     dense export to gonum (ToDense, ToSymDense).
//
// Topology policy is configured with functional options (WithAllowLoops,
// WithAllowDuplicates, WithValidateNaNInf, WithEpsilon). All errors are
// sentinels from errors.go and are matched with errors.Is.
//
// Example:
//
//	// 0 ── 1 ── 2  with conductances 2 and 3
//	L, err := matrix.Laplacian(3, [][2]int{{0, 1}, {1, 2}}, []float64{2, 3})
//	// L = [ 2 -2  0
//	//      -2  5 -3
//	//       0 -3  3 ]
package matrix

// Package solver defines the collaborator that solves A·x = b for the
// transport core, plus a direct solver built on gonum.
//
// Dense materializes the sparse system and factorizes it by LU with
// partial pivoting. WithCholesky tries Cholesky first, since a Laplacian
// with eliminated boundary rows is symmetric positive definite whenever
// every cluster is pinned; LU remains the fallback for asymmetric or
// indefinite input. A system whose condition number is infinite, such as
// a network held only by rate conditions, is Singular.
//
// A numerical failure is reported through the ExitCode, not the error:
// the error return is reserved for malformed input.
package solver

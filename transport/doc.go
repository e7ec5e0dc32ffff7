// Package transport solves steady-state transport on a pore network.
//
// A Transport reads a throat conductance from a phase, assembles the
// Laplacian system A·x = b, folds in the boundary conditions of its
// boundary.Store, hands the system to a solver.Solver and evaluates
// rates across any set of pores or throats afterwards.
//
// Value conditions are eliminated symmetrically: with f the mean of
// diag(A), every value pore p gets b[p] = value·f and an identity-like
// row f, the known values are moved to the right-hand side of the other
// rows, and the matching columns are zeroed. A therefore stays
// symmetric, which keeps solver.WithCholesky applicable.
//
// Lifecycle:
//
//	Unbuilt ──A()/B()/Run──► Assembled ──Run──► Solved
//	   ▲                                          │
//	   └──────── Reset / boundary change ─────────┘
//
// Run performs one assemble → check → solve → re-assemble cycle. The
// trailing re-assembly refreshes A and b from the new solution for
// callers that iterate on solution-dependent conductances; Run itself
// never iterates.
//
// A Transport is not safe for concurrent use.
package transport

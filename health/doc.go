// Package health decides whether a transport problem can be solved and,
// when it cannot, explains why.
//
// Three checks run in order:
//
//   - CheckTopology: every cluster of the network must be pinned by at
//     least one boundary pore, otherwise the system matrix is singular.
//   - CheckSystem: fast path; all stored entries of A and all of b are
//     finite.
//   - Diagnose: only after CheckSystem failed. It asks the upstream
//     objects (geometries, physics, phase) for coverage problems and for
//     props holding NaNs, composes their dependency graphs and reports the
//     props where the NaNs start together with the objects owning them.
//
// Diagnose never returns nil; its result always matches
// ErrNumericalHealth (or ErrGeometryHealth for coverage problems).
package health

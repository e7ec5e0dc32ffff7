// Package poreflow solves steady-state transport on pore networks: pores
// joined by throats, a conductance per throat, and fixed values or rates
// on boundary pores.
//
// 🚀 What is poreflow?
//
//	A small, layered library that brings together:
//		• Networks: pore/throat topology, clusters and health checks
//		• Props: named pore/throat arrays with models and a dependency graph
//		• Assembly: a sparse graph Laplacian with boundary conditions folded in
//		• Solving: dense LU, optionally Cholesky first, on top of gonum
//		• Diagnostics: tracing NaNs in the system back to the props that caused them
//		• Rates: per-throat flux and per-pore balance from a solution
//
// ✨ How a run fits together
//
//   - network.New validates the throat list.
//   - property.Store holds the phase and its conductance.
//   - transport.New binds them; SetValueBC / SetRateBC fix the boundary.
//   - Transport.Run checks topology, assembles, solves and re-assembles.
//   - Transport.Rate reads fluxes back out.
//
// Packages:
//
//	matrix/    sparse symmetric matrices, Laplacian construction, validators
//	network/   pores, throats, connected components, topology health
//	boundary/  value and rate boundary conditions per pore
//	depgraph/  prop dependency graph with topological ordering
//	property/  prop stores, models, and projects of phase/geometry/physics
//	health/    topology and NaN diagnostics
//	solver/    the Solver interface and the gonum-backed Dense solver
//	transport/ the assemble/solve/rate algorithm
//	config/    YAML settings and slog logger construction
//
// Quick start:
//
//	net, _ := network.New(3, [][2]int{{0, 1}, {1, 2}})
//	water, _ := property.NewStore("water", 3, 2)
//	_ = water.Fill("throat.hydraulic_conductance", 1)
//	alg, _ := transport.New(net, water,
//		transport.WithQuantity("pore.pressure"),
//		transport.WithConductance("throat.hydraulic_conductance"))
//	_, _ = alg.SetValueBC([]int{0, 2}, []float64{1, 0}, boundary.Merge)
//	_ = alg.Run(nil, nil)
package poreflow

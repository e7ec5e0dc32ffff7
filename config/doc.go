// Package config loads the settings of a transport run from YAML.
//
// A file names the props the algorithm works on, the linear solver and
// the log level:
//
//	transport:
//	  phase: water
//	  quantity: pore.pressure
//	  conductance: throat.hydraulic_conductance
//	  cache: true
//	  variable_props: [throat.viscosity]
//	solver:
//	  method: lu              # or "cholesky"
//	  symmetry_tolerance: 1e-12
//	log:
//	  level: info             # debug, info, warn, error
//
// Missing keys keep their defaults; unknown keys are rejected.
// Config.TransportOptions and Config.SolverOptions turn a loaded file
// into constructor options for the transport and solver packages.
package config

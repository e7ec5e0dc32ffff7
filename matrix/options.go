// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the edge-list → sparse
// builders (Laplacian, Adjacency). This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters on top of defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Topology defaults mirror a clean pore network: no self-loops and no
//     duplicated throats. Both are rejected with ErrInvalidTopology unless
//     explicitly allowed.
//   - NaN/Inf weights are NOT rejected by default. A transport system must
//     be assembled even from poisoned conductances so that the health
//     diagnostics can locate the upstream model that produced them.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation of weights.
	DefaultValidateNaNInf = false
)

// Topology policy.
const (
	// DefaultAllowLoops accepts edges whose endpoints coincide when true.
	// A loop contributes nothing to a Laplacian (w - w on the diagonal).
	DefaultAllowLoops = false

	// DefaultAllowDuplicates accepts repeated unordered pairs when true;
	// their weights are summed (parallel conductances).
	DefaultAllowDuplicates = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps             float64 // >= 0; DefaultEpsilon
	validateNaNInf  bool    // DefaultValidateNaNInf
	allowLoops      bool    // DefaultAllowLoops
	allowDuplicates bool    // DefaultAllowDuplicates
}

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf rejects NaN/±Inf weights with ErrNaNInf.
//
// Notes:
//   - Off by default; see the file header for why assembly tolerates NaN.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets non-finite weights through (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowLoops accepts self-loops (u == v) instead of failing with
// ErrInvalidTopology. Loops are dropped from the result.
func WithAllowLoops() Option {
	return func(o *Options) { o.allowLoops = true }
}

// WithDisallowLoops rejects self-loops (default).
func WithDisallowLoops() Option {
	return func(o *Options) { o.allowLoops = false }
}

// WithAllowDuplicates accepts repeated unordered pairs; their weights are
// summed into one off-diagonal entry.
func WithAllowDuplicates() Option {
	return func(o *Options) { o.allowDuplicates = true }
}

// WithDisallowDuplicates rejects repeated unordered pairs (default).
func WithDisallowDuplicates() Option {
	return func(o *Options) { o.allowDuplicates = false }
}

// NewOptions resolves option setters against documented defaults.
// Complexity: O(k) for k = len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the effective structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters apply in order; last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:             DefaultEpsilon,
		validateNaNInf:  DefaultValidateNaNInf,
		allowLoops:      DefaultAllowLoops,
		allowDuplicates: DefaultAllowDuplicates,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

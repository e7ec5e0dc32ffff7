package solver

import (
	"log/slog"
	"math"
)

// DefaultSymmetryTolerance is the |A[i,j] - A[j,i]| bound under which
// WithCholesky hands the system to Cholesky.
const DefaultSymmetryTolerance = 1e-12

const panicToleranceInvalid = "solver: WithSymmetryTolerance: eps must be finite, non-negative"

// Option configures Dense.
type Option func(*options)

type options struct {
	symTol   float64
	cholesky bool
	logger   *slog.Logger
}

func gatherOptions(opts ...Option) options {
	o := options{symTol: DefaultSymmetryTolerance, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSymmetryTolerance sets the symmetry check tolerance.
// Panics on negative or non-finite eps.
func WithSymmetryTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.symTol = eps }
}

// WithCholesky tries Cholesky before LU. Cholesky needs a symmetric
// positive definite system and may differ from LU in the last bits.
func WithCholesky() Option {
	return func(o *options) { o.cholesky = true }
}

// WithLU solves by LU only. This is the default.
func WithLU() Option {
	return func(o *options) { o.cholesky = false }
}

// WithLogger routes factorization messages to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

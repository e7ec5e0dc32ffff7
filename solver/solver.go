package solver

import (
	"fmt"

	"github.com/katalvlaran/poreflow/matrix"
)

// ExitCode reports how a solve ended.
type ExitCode int

const (
	// Success means x satisfies A·x = b to working precision.
	Success ExitCode = iota
	// Singular means the factorization failed or produced non-finite values.
	Singular
	// InvalidInput means the arguments were rejected; see the error.
	InvalidInput
)

// String implements fmt.Stringer.
func (c ExitCode) String() string {
	switch c {
	case Success:
		return "success"
	case Singular:
		return "singular"
	case InvalidInput:
		return "invalid input"
	default:
		return fmt.Sprintf("ExitCode(%d)", int(c))
	}
}

// Solver solves A·x = b. x0 is an initial guess that direct solvers may
// ignore; it is either nil or of length n.
type Solver interface {
	Solve(a *matrix.Sparse, b, x0 []float64) ([]float64, ExitCode, error)
}

// Func adapts a plain function to Solver.
type Func func(a *matrix.Sparse, b, x0 []float64) ([]float64, ExitCode, error)

// Solve calls f.
func (f Func) Solve(a *matrix.Sparse, b, x0 []float64) ([]float64, ExitCode, error) {
	return f(a, b, x0)
}

package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/poreflow/matrix"
)

// Dense is a direct solver over gonum dense factorizations.
// A Dense value holds only configuration and is safe for concurrent use.
type Dense struct {
	opts options
}

var _ Solver = (*Dense)(nil)

// NewDense returns a direct solver.
func NewDense(opts ...Option) *Dense {
	return &Dense{opts: gatherOptions(opts...)}
}

// Solve factorizes a and solves for b.
//
// Implementation:
//   - Stage 1: validate shapes.
//   - Stage 2: with WithCholesky, try Cholesky on the symmetric view of a.
//   - Stage 3: otherwise, or when Cholesky is rejected, LU on the dense copy.
//   - Stage 4: an infinite condition number, a short or non-finite
//     solution is reported as Singular.
//
// Complexity: O(n³) time, O(n²) memory.
func (d *Dense) Solve(a *matrix.Sparse, b, x0 []float64) ([]float64, ExitCode, error) {
	if a == nil {
		return nil, InvalidInput, solverErrorf("Dense.Solve", ErrNilMatrix)
	}
	n := a.Order()
	if len(b) != n {
		return nil, InvalidInput, solverErrorf("Dense.Solve",
			fmt.Errorf("%w: len(b)=%d, n=%d", ErrDimensionMismatch, len(b), n))
	}
	if x0 != nil && len(x0) != n {
		return nil, InvalidInput, solverErrorf("Dense.Solve",
			fmt.Errorf("%w: len(x0)=%d, n=%d", ErrDimensionMismatch, len(x0), n))
	}
	if n == 0 {
		return []float64{}, Success, nil
	}

	rhs := mat.NewVecDense(n, append([]float64(nil), b...))
	if d.opts.cholesky {
		if x, ok := d.cholesky(a, rhs); ok {
			return x, Success, nil
		}
	}

	var lu mat.LU
	lu.Factorize(a.ToDense())
	var x mat.VecDense
	err := lu.SolveVecTo(&x, false, rhs)
	out, ok := solution(&x, n, err)
	if !ok {
		d.opts.logger.Debug("LU solve failed", slog.Int("n", n), slog.Any("error", err))
		return nil, Singular, nil
	}
	if err != nil {
		d.opts.logger.Warn("ill-conditioned system", slog.Int("n", n), slog.Any("condition", err))
	}

	return out, Success, nil
}

func (d *Dense) cholesky(a *matrix.Sparse, rhs *mat.VecDense) ([]float64, bool) {
	sym, err := a.ToSymDense(d.opts.symTol)
	if err != nil {
		d.opts.logger.Debug("system not symmetric, using LU")
		return nil, false
	}
	var ch mat.Cholesky
	if ok := ch.Factorize(sym); !ok {
		d.opts.logger.Debug("system not positive definite, using LU")
		return nil, false
	}
	var x mat.VecDense
	err = ch.SolveVecTo(&x, rhs)

	return solution(&x, rhs.Len(), err)
}

// solution accepts x only when the solve produced n finite values and err
// is at most a finite condition warning.
func solution(x *mat.VecDense, n int, err error) ([]float64, bool) {
	if err != nil {
		var c mat.Condition
		if !errors.As(err, &c) || math.IsInf(float64(c), 1) || math.IsNaN(float64(c)) {
			return nil, false
		}
	}
	if x.Len() != n {
		return nil, false
	}
	out := append([]float64(nil), x.RawVector().Data[:n]...)
	if !finite(out) {
		return nil, false
	}

	return out, true
}

func finite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

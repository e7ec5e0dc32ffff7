package transport

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/poreflow/health"
	"github.com/katalvlaran/poreflow/solver"
)

// Run assembles, checks and solves the system once.
//
// Implementation:
//   - Stage 1: settings must name a phase, quantity and conductance.
//   - Stage 2: topology; every cluster needs a boundary pore.
//   - Stage 3: x = x0 (zeros when nil), also kept as the initial guess,
//     and pushed into the phase when it regenerates models.
//   - Stage 4: re-assemble A and b and require them finite; otherwise
//     health.Diagnose explains where the NaNs come from.
//   - Stage 5: solve; a non-success exit code is a *SolverError.
//   - Stage 6: store x, push it into the phase and re-assemble once.
//
// A nil s selects solver.NewDense(). On failure the previous solution is
// kept and the state is not Solved.
func (t *Transport) Run(s solver.Solver, x0 []float64) error {
	if err := t.settings.validate(); err != nil {
		return transportErrorf("Run", err)
	}
	if t.phase == nil {
		return transportErrorf("Run", fmt.Errorf("%w: phase object is nil", ErrIncompleteConfiguration))
	}
	if err := health.CheckTopology(t.net, t.bcs.Pores()); err != nil {
		return transportErrorf("Run", err)
	}

	np := t.net.Np()
	switch {
	case x0 == nil:
		x0 = make([]float64, np)
	case len(x0) != np:
		return transportErrorf("Run", fmt.Errorf("%w: len(x0)=%d, Np=%d", ErrDimensionMismatch, len(x0), np))
	default:
		x0 = cloneVec(x0)
	}
	if s == nil {
		s = solver.NewDense(solver.WithLogger(t.logger))
	}
	t.logger.Info("transport run started",
		slog.String("phase", t.settings.Phase),
		slog.String("quantity", t.settings.Quantity),
		slog.Int("np", np),
		slog.Int("bc_pores", t.bcs.Len()))

	if err := t.pushQuantity(x0); err != nil {
		return transportErrorf("Run", err)
	}
	t.initialGuess = cloneVec(x0)
	t.invalidate()
	if err := t.ensureBuilt(); err != nil {
		return transportErrorf("Run", err)
	}
	if !health.CheckSystem(t.a, t.b) {
		return transportErrorf("Run", health.Diagnose(t.diagnosisUpstream()))
	}

	x, code, err := s.Solve(t.a, t.b, x0)
	if err != nil || code != solver.Success {
		t.logger.Warn("solver failed", slog.String("exit_code", code.String()), slog.Any("error", err))
		return transportErrorf("Run", &SolverError{Code: code, Err: err})
	}
	if len(x) != np {
		return transportErrorf("Run", fmt.Errorf("%w: solver returned %d values, Np=%d", ErrDimensionMismatch, len(x), np))
	}

	t.x = cloneVec(x)
	if err = t.pushQuantity(t.x); err != nil {
		return transportErrorf("Run", err)
	}
	t.invalidate()
	if err = t.ensureBuilt(); err != nil {
		return transportErrorf("Run", err)
	}
	t.state = Solved
	t.logger.Info("transport run finished", slog.String("quantity", t.settings.Quantity))

	return nil
}

// pushQuantity hands x to the phase when it regenerates models from it.
func (t *Transport) pushQuantity(x []float64) error {
	u, ok := t.phase.(QuantityUpdater)
	if !ok {
		return nil
	}

	return u.UpdateQuantity(t.settings.Quantity, x)
}

// diagnosisUpstream falls back to the phase alone when no upstream was
// configured and the phase can describe itself.
func (t *Transport) diagnosisUpstream() health.Upstream {
	if t.upstream != nil {
		return t.upstream
	}
	if obj, ok := t.phase.(health.Object); ok {
		return phaseUpstream{obj: obj}
	}

	return nil
}

// phaseUpstream is a single-object upstream.
type phaseUpstream struct {
	obj health.Object
}

func (p phaseUpstream) GeometryHealth() map[string][]int { return nil }

func (p phaseUpstream) Triplets() [][]health.Object { return [][]health.Object{{p.obj}} }

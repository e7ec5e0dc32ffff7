package transport

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/poreflow/matrix"
)

// A returns the assembled coefficient matrix, assembling on demand.
// The matrix is owned by the Transport; callers must not modify it.
func (t *Transport) A() (*matrix.Sparse, error) {
	if err := t.ensureBuilt(); err != nil {
		return nil, err
	}

	return t.a, nil
}

// B returns a copy of the assembled right-hand side.
func (t *Transport) B() ([]float64, error) {
	if err := t.ensureBuilt(); err != nil {
		return nil, err
	}

	return cloneVec(t.b), nil
}

// invalidate forces the next access to re-assemble A and b.
func (t *Transport) invalidate() {
	t.built = false
	t.a, t.b = nil, nil
	t.state = Unbuilt
}

// ensureBuilt assembles A and b unless they are current.
func (t *Transport) ensureBuilt() error {
	if t.built {
		return nil
	}
	a, err := t.buildA()
	if err != nil {
		return err
	}
	b := t.buildB()
	if err = t.applyBCs(a, b); err != nil {
		return err
	}
	t.a, t.b, t.built = a, b, true
	if t.state == Unbuilt {
		t.state = Assembled
	}

	return nil
}

// cacheable reports whether the pure Laplacian may be reused.
func (t *Transport) cacheable() bool {
	if !t.settings.Cache {
		return false
	}
	for _, p := range t.IterativeProps() {
		if p == t.settings.Conductance {
			return false
		}
	}

	return true
}

// buildA returns a working copy of the pure Laplacian, rebuilding it from
// the phase conductance unless a cached one may be reused.
func (t *Transport) buildA() (*matrix.Sparse, error) {
	if t.pureA != nil && t.cacheable() {
		t.logger.Debug("reusing cached A", slog.String("conductance", t.settings.Conductance))
		return t.pureA.Clone(), nil
	}
	if t.phase == nil || t.settings.Conductance == "" {
		return nil, transportErrorf("buildA", fmt.Errorf("%w: phase and conductance are required to build A", ErrIncompleteConfiguration))
	}
	g, err := t.phase.Get(t.settings.Conductance)
	if err != nil {
		return nil, transportErrorf("buildA", err)
	}
	g, err = throatConductance(g, t.net.Nt())
	if err != nil {
		return nil, transportErrorf("buildA", err)
	}
	pure, err := matrix.Laplacian(t.net.Np(), t.net.Conns(), g, t.laplacianOptions()...)
	if err != nil {
		return nil, transportErrorf("buildA", err)
	}
	t.logger.Debug("built A", slog.Int("np", t.net.Np()), slog.Int("nnz", pure.NNZ()),
		slog.Bool("cached", t.cacheable()))
	if t.cacheable() {
		t.pureA = pure
	} else {
		t.pureA = nil
	}

	return pure.Clone(), nil
}

// laplacianOptions mirrors the network's topology policy so a network
// that accepted loops or duplicates also assembles.
func (t *Transport) laplacianOptions() []matrix.Option {
	h := t.net.CheckHealth()
	var opts []matrix.Option
	if len(h.LoopThroats) > 0 {
		opts = append(opts, matrix.WithAllowLoops())
	}
	if len(h.DuplicateThroats) > 0 {
		opts = append(opts, matrix.WithAllowDuplicates())
	}

	return opts
}

// throatConductance reduces a conductance array to one value per throat.
// A directional array (2·Nt, row-major pairs) is averaged per throat.
func throatConductance(g []float64, nt int) ([]float64, error) {
	switch len(g) {
	case nt:
		return g, nil
	case 2 * nt:
		out := make([]float64, nt)
		for i := range out {
			out[i] = (g[2*i] + g[2*i+1]) / 2
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: conductance has %d entries for %d throats", ErrDimensionMismatch, len(g), nt)
}

func (t *Transport) buildB() []float64 {
	return make([]float64, t.net.Np())
}

// applyBCs folds the boundary conditions into a and b in place.
//
// Implementation:
//   - Stage 1: b[p] = rate for every rate pore.
//   - Stage 2: f = mean(diag(a)); b[p] = value·f for every value pore.
//   - Stage 3: b[i] -= (a·x_bc)[i] for every other pore, x_bc holding the
//     values on value pores and zero elsewhere.
//   - Stage 4: zero value rows and columns, set their diagonal to f and
//     drop the explicit zeros.
//
// a stays symmetric. Off the value block it is unchanged.
// Complexity: O(nnz + Np).
func (t *Transport) applyBCs(a *matrix.Sparse, b []float64) error {
	for i, r := range t.bcs.Rates() {
		if !math.IsNaN(r) {
			b[i] = r
		}
	}

	values := t.bcs.Values()
	mask := make([]bool, len(values))
	xbc := make([]float64, len(values))
	var hasValue bool
	for i, v := range values {
		if !math.IsNaN(v) {
			mask[i], xbc[i], hasValue = true, v, true
		}
	}
	if !hasValue {
		return nil
	}

	f := mean(a.Diagonal())
	ax, err := a.MulVec(xbc)
	if err != nil {
		return transportErrorf("applyBCs", err)
	}
	for i := range b {
		if mask[i] {
			b[i] = xbc[i] * f
		} else {
			b[i] -= ax[i]
		}
	}
	if err = a.ZeroRowsCols(mask); err != nil {
		return transportErrorf("applyBCs", err)
	}
	for i, m := range mask {
		if m {
			if err = a.SetDiag(i, f); err != nil {
				return transportErrorf("applyBCs", err)
			}
		}
	}
	a.EliminateZeros()

	return nil
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var s float64
	for _, x := range v {
		s += x
	}

	return s / float64(len(v))
}

package transport

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/poreflow/boundary"
	"github.com/katalvlaran/poreflow/depgraph"
	"github.com/katalvlaran/poreflow/health"
	"github.com/katalvlaran/poreflow/matrix"
	"github.com/katalvlaran/poreflow/network"
)

// Phase provides props by name, most importantly the conductance.
type Phase interface {
	Name() string
	Get(prop string) ([]float64, error)
}

// QuantityUpdater is implemented by phases that regenerate models when
// the solved quantity changes.
type QuantityUpdater interface {
	UpdateQuantity(prop string, x []float64) error
}

// DependencyProvider is implemented by phases that expose their model
// graph, so props downstream of the quantity are known to be iterative.
type DependencyProvider interface {
	DependencyGraph() *depgraph.Graph
}

// State is the assembly/solve stage of a Transport.
type State int

const (
	// Unbuilt means A and b must be assembled before use.
	Unbuilt State = iota
	// Assembled means A and b reflect the current conditions.
	Assembled
	// Solved means Run completed and A, b were refreshed from x.
	Solved
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unbuilt:
		return "unbuilt"
	case Assembled:
		return "assembled"
	case Solved:
		return "solved"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Transport is a steady-state transport algorithm on one network.
type Transport struct {
	net      *network.Network
	phase    Phase
	settings Settings
	bcs      *boundary.Store
	upstream health.Upstream
	logger   *slog.Logger

	pureA *matrix.Sparse // cached Laplacian, before boundary conditions
	a     *matrix.Sparse
	b     []float64
	built bool
	state State

	x            []float64
	initialGuess []float64
}

// New returns an Unbuilt Transport. phase may be nil; Run then fails with
// ErrIncompleteConfiguration.
// Errors: ErrNilNetwork, ErrConflictingArguments (Settings.Phase names a
// different phase).
func New(net *network.Network, phase Phase, opts ...Option) (*Transport, error) {
	if net == nil {
		return nil, transportErrorf("New", ErrNilNetwork)
	}
	t := &Transport{
		net:      net,
		phase:    phase,
		settings: DefaultSettings(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if phase != nil {
		switch {
		case t.settings.Phase == "":
			t.settings.Phase = phase.Name()
		case t.settings.Phase != phase.Name():
			return nil, transportErrorf("New", fmt.Errorf("%w: settings name phase %q, got %q",
				ErrConflictingArguments, t.settings.Phase, phase.Name()))
		}
	}

	bcs, err := boundary.NewStore(net.Np(), boundary.WithLogger(t.logger))
	if err != nil {
		return nil, transportErrorf("New", err)
	}
	t.bcs = bcs

	return t, nil
}

// Network returns the network.
func (t *Transport) Network() *network.Network { return t.net }

// Settings returns a copy of the settings.
func (t *Transport) Settings() Settings { return t.settings.clone() }

// State returns the current stage.
func (t *Transport) State() State { return t.state }

// BCs returns the boundary store. Writes through it bypass invalidation;
// use SetValueBC, SetRateBC and RemoveBC instead.
func (t *Transport) BCs() *boundary.Store { return t.bcs }

// SetValueBC applies value conditions and invalidates the system.
// See boundary.Store.Set for the skip list.
func (t *Transport) SetValueBC(pores []int, values []float64, mode boundary.Mode) ([]int, error) {
	skipped, err := t.bcs.SetValue(pores, values, mode)
	if err != nil {
		return nil, transportErrorf("SetValueBC", err)
	}
	t.invalidate()

	return skipped, nil
}

// SetRateBC applies rate conditions and invalidates the system.
func (t *Transport) SetRateBC(pores []int, opts ...boundary.RateOption) ([]int, error) {
	skipped, err := t.bcs.SetRate(pores, opts...)
	if err != nil {
		return nil, transportErrorf("SetRateBC", err)
	}
	t.invalidate()

	return skipped, nil
}

// RemoveBC clears conditions of kind on pores (nil = every pore).
func (t *Transport) RemoveBC(pores []int, kind boundary.Kind) error {
	if err := t.bcs.Remove(pores, kind); err != nil {
		return transportErrorf("RemoveBC", err)
	}
	t.invalidate()

	return nil
}

// SetVariableProps records props recomputed from the solution. Merge
// appends new names; Overwrite replaces the list. Duplicates are dropped.
func (t *Transport) SetVariableProps(props []string, mode boundary.Mode) error {
	switch mode {
	case boundary.Merge:
		props = append(append([]string(nil), t.settings.VariableProps...), props...)
	case boundary.Overwrite:
	default:
		return transportErrorf("SetVariableProps", boundary.ErrInvalidMode)
	}
	seen := make(map[string]bool, len(props))
	out := make([]string, 0, len(props))
	for _, p := range props {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	t.settings.VariableProps = out
	t.pureA = nil
	t.invalidate()

	return nil
}

// IterativeProps returns the variable props plus every prop downstream
// of the quantity in the phase model graph, deduplicated.
func (t *Transport) IterativeProps() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range t.settings.VariableProps {
		add(p)
	}
	if dp, ok := t.phase.(DependencyProvider); ok && t.settings.Quantity != "" {
		if g := dp.DependencyGraph(); g != nil && g.HasNode(t.settings.Quantity) {
			down, err := g.Descendants(t.settings.Quantity)
			if err == nil {
				for _, p := range down {
					add(p)
				}
			}
		}
	}

	return out
}

// Reset returns to Unbuilt and drops the cached Laplacian. By default the
// solution is dropped and boundary conditions are kept.
func (t *Transport) Reset(opts ...ResetOption) {
	o := resetOptions{bcs: false, results: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.bcs {
		t.bcs.Clear()
	}
	if o.results {
		t.x = nil
		t.initialGuess = nil
	}
	t.pureA = nil
	t.invalidate()
}

// X returns a copy of the current solution, or nil before Run.
func (t *Transport) X() []float64 { return cloneVec(t.x) }

// InitialGuess returns the x0 used by the last Run, or nil.
func (t *Transport) InitialGuess() []float64 { return cloneVec(t.initialGuess) }

// Results maps the quantity name to a copy of the solution.
// Errors: ErrNotSolved.
func (t *Transport) Results() (map[string][]float64, error) {
	if t.x == nil {
		return nil, transportErrorf("Results", ErrNotSolved)
	}

	return map[string][]float64{t.settings.Quantity: cloneVec(t.x)}, nil
}

func cloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

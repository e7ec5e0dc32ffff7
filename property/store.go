package property

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/poreflow/depgraph"
)

// ModelFunc computes a prop from the current contents of its store.
// The returned slice is length-checked like any other write.
type ModelFunc func(s *Store) ([]float64, error)

type model struct {
	deps []string
	fn   ModelFunc
}

// Store is a named bag of typed props with optional models.
// A Store is not safe for concurrent use.
type Store struct {
	name   string
	np, nt int
	data   map[Key][]float64
	models map[Key]model
	graph  *depgraph.Graph
	logger *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger routes model regeneration messages to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore returns an empty store for np pores and nt throats.
func NewStore(name string, np, nt int, opts ...StoreOption) (*Store, error) {
	if np < 0 || nt < 0 {
		return nil, propertyErrorf(fmt.Sprintf("NewStore(%q)", name), ErrBadShape)
	}
	s := &Store{
		name:   name,
		np:     np,
		nt:     nt,
		data:   make(map[Key][]float64),
		models: make(map[Key]model),
		graph:  depgraph.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Name returns the object name.
func (s *Store) Name() string { return s.name }

// Np returns the pore count.
func (s *Store) Np() int { return s.np }

// Nt returns the throat count.
func (s *Store) Nt() int { return s.nt }

// Set stores a copy of vals under prop ("pore.x" / "throat.x").
func (s *Store) Set(prop string, vals []float64) error {
	k, err := ParseKey(prop)
	if err != nil {
		return propertyErrorf(fmt.Sprintf("%s.Set", s.name), err)
	}

	return s.SetKey(k, vals)
}

// SetKey stores a copy of vals under k.
func (s *Store) SetKey(k Key, vals []float64) error {
	if err := s.checkLen(k, len(vals)); err != nil {
		return propertyErrorf(fmt.Sprintf("%s.Set(%s)", s.name, k), err)
	}
	cp := make([]float64, len(vals))
	copy(cp, vals)
	s.data[k] = cp

	return nil
}

// Fill stores v on every element of prop.
func (s *Store) Fill(prop string, v float64) error {
	k, err := ParseKey(prop)
	if err != nil {
		return propertyErrorf(fmt.Sprintf("%s.Fill", s.name), err)
	}
	vals := make([]float64, s.count(k.Element))
	for i := range vals {
		vals[i] = v
	}

	return s.SetKey(k, vals)
}

// Get returns a copy of prop.
// Errors: ErrInvalidKey, ErrNotFound.
func (s *Store) Get(prop string) ([]float64, error) {
	k, err := ParseKey(prop)
	if err != nil {
		return nil, propertyErrorf(fmt.Sprintf("%s.Get", s.name), err)
	}
	v, ok := s.data[k]
	if !ok {
		return nil, propertyErrorf(fmt.Sprintf("%s.Get(%s)", s.name, k), ErrNotFound)
	}
	cp := make([]float64, len(v))
	copy(cp, v)

	return cp, nil
}

// Has reports whether prop is stored.
func (s *Store) Has(prop string) bool {
	k, err := ParseKey(prop)
	if err != nil {
		return false
	}
	_, ok := s.data[k]

	return ok
}

// Delete removes prop and its model. Dependency edges are kept so the
// graph still records how the prop would be produced.
func (s *Store) Delete(prop string) {
	k, err := ParseKey(prop)
	if err != nil {
		return
	}
	delete(s.data, k)
	delete(s.models, k)
}

// Keys returns every stored prop name, ascending.
func (s *Store) Keys() []string {
	out := make([]string, 0, len(s.data))
	for k := range s.data {
		out = append(out, k.String())
	}
	sort.Strings(out)

	return out
}

// AddModel attaches fn as the producer of prop, reading deps. The prop is
// not computed until Regenerate or UpdateQuantity runs.
func (s *Store) AddModel(prop string, deps []string, fn ModelFunc) error {
	tag := fmt.Sprintf("%s.AddModel(%s)", s.name, prop)
	if fn == nil {
		return propertyErrorf(tag, ErrNilModel)
	}
	k, err := ParseKey(prop)
	if err != nil {
		return propertyErrorf(tag, err)
	}
	for _, d := range deps {
		if _, err = ParseKey(d); err != nil {
			return propertyErrorf(tag, err)
		}
	}
	if err = s.graph.AddNode(k.String()); err != nil {
		return propertyErrorf(tag, err)
	}
	for _, d := range deps {
		if err = s.graph.AddEdge(d, k.String()); err != nil {
			return propertyErrorf(tag, err)
		}
	}
	s.models[k] = model{deps: append([]string(nil), deps...), fn: fn}

	return nil
}

// Models returns the props that have a model, ascending.
func (s *Store) Models() []string {
	out := make([]string, 0, len(s.models))
	for k := range s.models {
		out = append(out, k.String())
	}
	sort.Strings(out)

	return out
}

// Regenerate runs the models of props (all models when none are named)
// in dependency order.
func (s *Store) Regenerate(props ...string) error {
	tag := fmt.Sprintf("%s.Regenerate", s.name)
	order, err := s.graph.TopologicalSort()
	if err != nil {
		return propertyErrorf(tag, err)
	}
	var want map[string]bool
	if len(props) > 0 {
		want = make(map[string]bool, len(props))
		for _, p := range props {
			want[p] = true
		}
	}

	return s.runModels(tag, order, want)
}

// UpdateQuantity stores x under prop and regenerates every modelled prop
// downstream of it.
func (s *Store) UpdateQuantity(prop string, x []float64) error {
	tag := fmt.Sprintf("%s.UpdateQuantity(%s)", s.name, prop)
	if err := s.Set(prop, x); err != nil {
		return err
	}
	if !s.graph.HasNode(prop) {
		return nil
	}
	down, err := s.graph.Descendants(prop)
	if err != nil {
		return propertyErrorf(tag, err)
	}
	if len(down) == 0 {
		return nil
	}
	want := make(map[string]bool, len(down))
	for _, d := range down {
		want[d] = true
	}
	order, err := s.graph.TopologicalSort()
	if err != nil {
		return propertyErrorf(tag, err)
	}

	return s.runModels(tag, order, want)
}

func (s *Store) runModels(tag string, order []string, want map[string]bool) error {
	for _, name := range order {
		if want != nil && !want[name] {
			continue
		}
		k, err := ParseKey(name)
		if err != nil {
			return propertyErrorf(tag, err)
		}
		m, ok := s.models[k]
		if !ok {
			continue
		}
		vals, err := m.fn(s)
		if err != nil {
			return propertyErrorf(fmt.Sprintf("%s: model %s", tag, name), err)
		}
		if err = s.SetKey(k, vals); err != nil {
			return err
		}
		s.logger.Debug("model regenerated", slog.String("object", s.name), slog.String("prop", name))
	}

	return nil
}

// DependencyGraph returns a copy of the store's dependency graph: every
// modelled prop and the props its model reads. Plain stored props that no
// model touches are not part of it.
func (s *Store) DependencyGraph() *depgraph.Graph { return s.graph.Clone() }

// InvalidProps returns the stored props containing at least one NaN,
// ascending.
func (s *Store) InvalidProps() []string {
	var out []string
	for k, v := range s.data {
		for _, x := range v {
			if math.IsNaN(x) {
				out = append(out, k.String())
				break
			}
		}
	}
	sort.Strings(out)

	return out
}

func (s *Store) count(e Element) int {
	if e == Pore {
		return s.np
	}

	return s.nt
}

func (s *Store) checkLen(k Key, n int) error {
	want := s.count(k.Element)
	if n == want || (k.Element == Throat && n == 2*want) {
		return nil
	}

	return fmt.Errorf("%w: %s has %d entries, want %d", ErrSizeMismatch, k, n, want)
}

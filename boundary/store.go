package boundary

import (
	"fmt"
	"log/slog"
	"math"
)

// Store holds at most one boundary condition per pore.
// A Store is not safe for concurrent use.
type Store struct {
	np     int
	value  []float64 // NaN = unset
	rate   []float64 // NaN = unset
	logger *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger routes skip warnings to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore returns an empty store for np pores.
func NewStore(np int, opts ...StoreOption) (*Store, error) {
	if np <= 0 {
		return nil, boundaryErrorf("NewStore", fmt.Errorf("%w: np=%d", ErrUnknownPore, np))
	}
	s := &Store{
		np:     np,
		value:  nanSlice(np),
		rate:   nanSlice(np),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Np returns the number of pores covered by the store.
func (s *Store) Np() int { return s.np }

// SetValue applies value conditions. See Set.
func (s *Store) SetValue(pores []int, values []float64, mode Mode) ([]int, error) {
	return s.Set(pores, Value, values, mode)
}

// Set writes conditions of kind on pores.
//
// values either holds one number, broadcast to every pore, or exactly one
// number per pore. Pores already carrying the other kind are skipped and
// returned (ascending, unique); this is not an error. In Overwrite mode all
// existing conditions of kind are removed before writing.
//
// Errors (store untouched): ErrInvalidKind, ErrInvalidMode, ErrUnknownPore,
// ErrSizeMismatch, ErrNonFinite.
func (s *Store) Set(pores []int, kind Kind, values []float64, mode Mode) ([]int, error) {
	tag := fmt.Sprintf("Set(%s, %s)", kind, mode)
	if kind != Value && kind != Rate {
		return nil, boundaryErrorf(tag, ErrInvalidKind)
	}
	if mode != Merge && mode != Overwrite {
		return nil, boundaryErrorf(tag, ErrInvalidMode)
	}
	if err := s.validatePores(pores); err != nil {
		return nil, boundaryErrorf(tag, err)
	}
	if len(values) != 1 && len(values) != len(pores) {
		return nil, boundaryErrorf(tag, fmt.Errorf("%w: %d values for %d pores", ErrSizeMismatch, len(values), len(pores)))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, boundaryErrorf(tag, fmt.Errorf("%w: values[%d]=%v", ErrNonFinite, i, v))
		}
	}

	target, other := s.slot(kind), s.slot(kind.other())
	if mode == Overwrite {
		fillNaN(target)
	}

	blocked := make(map[int]bool)
	for _, p := range pores {
		if !math.IsNaN(other[p]) {
			blocked[p] = true
		}
	}
	for i, p := range pores {
		if blocked[p] {
			continue
		}
		if len(values) == 1 {
			target[p] = values[0]
		} else {
			target[p] = values[i]
		}
	}

	skipped := sortedKeys(blocked)
	if len(skipped) > 0 {
		s.logger.Warn("boundary conditions already specified on pores, skipping",
			slog.String("kind", kind.String()),
			slog.String("existing", kind.other().String()),
			slog.Any("pores", skipped))
	}

	return skipped, nil
}

// Remove clears conditions of kind (Value, Rate or All) on pores.
// A nil pores slice means every pore. Pores without conditions are fine.
// Errors: ErrInvalidKind, ErrUnknownPore.
func (s *Store) Remove(pores []int, kind Kind) error {
	tag := fmt.Sprintf("Remove(%s)", kind)
	if kind != Value && kind != Rate && kind != All {
		return boundaryErrorf(tag, ErrInvalidKind)
	}
	if err := s.validatePores(pores); err != nil {
		return boundaryErrorf(tag, err)
	}

	var slots [][]float64
	switch kind {
	case Value:
		slots = [][]float64{s.value}
	case Rate:
		slots = [][]float64{s.rate}
	default:
		slots = [][]float64{s.value, s.rate}
	}
	for _, slot := range slots {
		if pores == nil {
			fillNaN(slot)
			continue
		}
		for _, p := range pores {
			slot[p] = math.NaN()
		}
	}

	return nil
}

// Clear removes every condition.
func (s *Store) Clear() {
	fillNaN(s.value)
	fillNaN(s.rate)
}

// Kind returns the condition held by pore p and its number.
// Pores without a condition (or out of range) report None and NaN.
func (s *Store) Kind(p int) (Kind, float64) {
	if p < 0 || p >= s.np {
		return None, math.NaN()
	}
	if !math.IsNaN(s.value[p]) {
		return Value, s.value[p]
	}
	if !math.IsNaN(s.rate[p]) {
		return Rate, s.rate[p]
	}

	return None, math.NaN()
}

// Values returns a copy of the value column (NaN where unset).
func (s *Store) Values() []float64 { return cloneSlice(s.value) }

// Rates returns a copy of the rate column (NaN where unset).
func (s *Store) Rates() []float64 { return cloneSlice(s.rate) }

// ValuePores returns the pores holding a value condition, ascending.
func (s *Store) ValuePores() []int { return setIndices(s.value) }

// RatePores returns the pores holding a rate condition, ascending.
func (s *Store) RatePores() []int { return setIndices(s.rate) }

// Pores returns every pore holding any condition, ascending.
func (s *Store) Pores() []int {
	var out []int
	for p := 0; p < s.np; p++ {
		if !math.IsNaN(s.value[p]) || !math.IsNaN(s.rate[p]) {
			out = append(out, p)
		}
	}

	return out
}

// Len returns the number of pores holding a condition.
func (s *Store) Len() int { return len(s.Pores()) }

func (s *Store) slot(k Kind) []float64 {
	if k == Value {
		return s.value
	}

	return s.rate
}

func (s *Store) validatePores(pores []int) error {
	for _, p := range pores {
		if p < 0 || p >= s.np {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrUnknownPore, p, s.np)
		}
	}

	return nil
}

package boundary

import (
	"fmt"
	"math"
)

// RateOption configures SetRate.
type RateOption func(*rateArgs)

type rateArgs struct {
	rates    []float64
	hasRates bool
	total    float64
	hasTotal bool
	mode     Mode
}

// WithRates supplies one rate for all pores or one rate per pore.
func WithRates(rates ...float64) RateOption {
	return func(a *rateArgs) {
		a.rates = rates
		a.hasRates = true
	}
}

// WithTotalRate supplies a total rate divided evenly among the pores.
func WithTotalRate(total float64) RateOption {
	return func(a *rateArgs) {
		a.total = total
		a.hasTotal = true
	}
}

// WithMode selects Merge (default) or Overwrite.
func WithMode(m Mode) RateOption {
	return func(a *rateArgs) { a.mode = m }
}

// SetRate applies rate conditions, positive meaning injection into the
// pore. Exactly one of WithRates / WithTotalRate must be given; otherwise
// ErrConflictingArguments. A total rate is split as total/len(pores),
// counting pores that end up skipped. Remaining semantics follow Set.
func (s *Store) SetRate(pores []int, opts ...RateOption) ([]int, error) {
	var a rateArgs
	for _, opt := range opts {
		opt(&a)
	}

	switch {
	case a.hasRates && a.hasTotal:
		return nil, boundaryErrorf("SetRate", fmt.Errorf("%w: cannot specify both rates and total rate", ErrConflictingArguments))
	case !a.hasRates && !a.hasTotal:
		return nil, boundaryErrorf("SetRate", fmt.Errorf("%w: one of rates or total rate is required", ErrConflictingArguments))
	case a.hasRates:
		return s.Set(pores, Rate, a.rates, a.mode)
	}

	if math.IsNaN(a.total) || math.IsInf(a.total, 0) {
		return nil, boundaryErrorf("SetRate", fmt.Errorf("%w: total rate %v", ErrNonFinite, a.total))
	}
	if len(pores) == 0 {
		// Nothing to receive the total; still validate the mode.
		if a.mode != Merge && a.mode != Overwrite {
			return nil, boundaryErrorf("SetRate", ErrInvalidMode)
		}
		return nil, nil
	}

	return s.Set(pores, Rate, []float64{a.total / float64(len(pores))}, a.mode)
}

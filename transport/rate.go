package transport

import (
	"fmt"
	"math"
)

// RateMode selects per-element or summed rates.
type RateMode int

const (
	// Group sums the rates into a single value.
	Group RateMode = iota
	// Single returns one rate per requested element.
	Single
)

// String implements fmt.Stringer.
func (m RateMode) String() string {
	switch m {
	case Group:
		return "group"
	case Single:
		return "single"
	default:
		return fmt.Sprintf("RateMode(%d)", int(m))
	}
}

// Rate evaluates flow from the current solution and conductance.
//
// Exactly one of pores and throats must be non-empty. For throats the
// result is |Qt| per throat. For pores it is the net balance with
// out-flow positive: each throat subtracts Qt at its first pore and adds
// it at its second. Group sums the selection into one value.
//
// Errors: ErrConflictingArguments, ErrInvalidMode, ErrNotSolved,
// ErrDimensionMismatch, network.ErrUnknownPore / ErrUnknownThroat.
func (t *Transport) Rate(pores, throats []int, mode RateMode) ([]float64, error) {
	if (len(pores) > 0) == (len(throats) > 0) {
		return nil, transportErrorf("Rate", fmt.Errorf("%w: exactly one of pores or throats must be given", ErrConflictingArguments))
	}
	if mode != Group && mode != Single {
		return nil, transportErrorf("Rate", ErrInvalidMode)
	}
	if t.x == nil {
		return nil, transportErrorf("Rate", ErrNotSolved)
	}
	if t.phase == nil {
		return nil, transportErrorf("Rate", ErrIncompleteConfiguration)
	}
	g, err := t.phase.Get(t.settings.Conductance)
	if err != nil {
		return nil, transportErrorf("Rate", err)
	}
	qt, err := ThroatFlux(t.net.Conns(), g, t.x)
	if err != nil {
		return nil, transportErrorf("Rate", err)
	}

	var out []float64
	if len(throats) > 0 {
		if err = t.net.ValidateThroats(throats); err != nil {
			return nil, transportErrorf("Rate", err)
		}
		out = make([]float64, len(throats))
		for i, th := range throats {
			out[i] = math.Abs(qt[th])
		}
	} else {
		if err = t.net.ValidatePores(pores); err != nil {
			return nil, transportErrorf("Rate", err)
		}
		qp := make([]float64, t.net.Np())
		for th, c := range t.net.Conns() {
			qp[c[0]] -= qt[th]
			qp[c[1]] += qt[th]
		}
		out = make([]float64, len(pores))
		for i, p := range pores {
			out[i] = qp[p]
		}
	}

	if mode == Group {
		var sum float64
		for _, v := range out {
			sum += v
		}
		return []float64{sum}, nil
	}

	return out, nil
}

// ThroatFlux returns the signed flux through every throat:
//
//	Qt = g₀·x[c₁] − g₁·x[c₀]
//
// where (c₀, c₁) are the throat endpoints and (g₀, g₁) its conductance in
// each direction. g holds either one value per throat, used both ways, or
// 2·Nt values stored as row-major pairs.
// Errors: ErrDimensionMismatch.
func ThroatFlux(conns [][2]int, g, x []float64) ([]float64, error) {
	nt := len(conns)
	var pair func(t int) (float64, float64)
	switch len(g) {
	case nt:
		pair = func(t int) (float64, float64) { return g[t], g[t] }
	case 2 * nt:
		pair = func(t int) (float64, float64) { return g[2*t], g[2*t+1] }
	default:
		return nil, fmt.Errorf("%w: conductance has %d entries for %d throats", ErrDimensionMismatch, len(g), nt)
	}
	qt := make([]float64, nt)
	for t, c := range conns {
		if c[0] < 0 || c[0] >= len(x) || c[1] < 0 || c[1] >= len(x) {
			return nil, fmt.Errorf("%w: throat %d joins %v, len(x)=%d", ErrDimensionMismatch, t, c, len(x))
		}
		g0, g1 := pair(t)
		qt[t] = g0*x[c[1]] - g1*x[c[0]]
	}

	return qt, nil
}

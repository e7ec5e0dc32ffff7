package network

import "github.com/katalvlaran/poreflow/matrix"

// Option configures topology policy for New.
type Option func(*options)

// options holds the topology policy; defaults reject loops and duplicates.
type options struct {
	allowLoops      bool
	allowDuplicates bool
}

// WithAllowLoops accepts throats whose two ends are the same pore.
// Such throats carry no flux and are reported by CheckHealth.
func WithAllowLoops() Option {
	return func(o *options) { o.allowLoops = true }
}

// WithAllowDuplicates accepts several throats joining the same pair of
// pores; they act as parallel conductances and are reported by CheckHealth.
func WithAllowDuplicates() Option {
	return func(o *options) { o.allowDuplicates = true }
}

// matrixOptions translates the topology policy for the matrix builders.
func (o options) matrixOptions() []matrix.Option {
	var out []matrix.Option
	if o.allowLoops {
		out = append(out, matrix.WithAllowLoops())
	}
	if o.allowDuplicates {
		out = append(out, matrix.WithAllowDuplicates())
	}

	return out
}

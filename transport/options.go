package transport

import (
	"log/slog"

	"github.com/katalvlaran/poreflow/health"
)

// Option configures a Transport.
type Option func(*Transport)

// WithSettings replaces the whole settings block.
func WithSettings(s Settings) Option {
	return func(t *Transport) { t.settings = s.clone() }
}

// WithQuantity sets the solved prop.
func WithQuantity(prop string) Option {
	return func(t *Transport) { t.settings.Quantity = prop }
}

// WithConductance sets the conductance prop.
func WithConductance(prop string) Option {
	return func(t *Transport) { t.settings.Conductance = prop }
}

// WithCache toggles caching of the pure Laplacian.
func WithCache(on bool) Option {
	return func(t *Transport) { t.settings.Cache = on }
}

// WithLogger routes run and assembly messages to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(t *Transport) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithUpstream supplies the objects consulted when the assembled system
// holds NaNs.
func WithUpstream(up health.Upstream) Option {
	return func(t *Transport) { t.upstream = up }
}

// ResetOption configures Reset.
type ResetOption func(*resetOptions)

type resetOptions struct {
	bcs     bool
	results bool
}

// WithResetBCs also clears every boundary condition (default false).
func WithResetBCs(on bool) ResetOption {
	return func(o *resetOptions) { o.bcs = on }
}

// WithResetResults drops the solution and initial guess (default true).
func WithResetResults(on bool) ResetOption {
	return func(o *resetOptions) { o.results = on }
}

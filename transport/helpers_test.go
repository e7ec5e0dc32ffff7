package transport_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poreflow/network"
	"github.com/katalvlaran/poreflow/property"
	"github.com/katalvlaran/poreflow/transport"
)

const (
	quantity    = "pore.pressure"
	conductance = "throat.hydraulic_conductance"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// gridConns returns the throats of an nx×ny square lattice, pore index
// x + nx·y.
func gridConns(nx, ny int) [][2]int {
	var conns [][2]int
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			p := x + nx*y
			if x+1 < nx {
				conns = append(conns, [2]int{p, p + 1})
			}
			if y+1 < ny {
				conns = append(conns, [2]int{p, p + nx})
			}
		}
	}

	return conns
}

// setup builds a network, a phase holding g as the conductance, and a
// Transport on them.
func setup(t testing.TB, np int, conns [][2]int, g []float64, opts ...transport.Option) (*transport.Transport, *property.Store) {
	t.Helper()
	net, err := network.New(np, conns)
	require.NoError(t, err)
	phase, err := property.NewStore("water", np, len(conns), property.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, phase.Set(conductance, g))

	base := []transport.Option{
		transport.WithQuantity(quantity),
		transport.WithConductance(conductance),
		transport.WithLogger(quietLogger()),
	}
	tr, err := transport.New(net, phase, append(base, opts...)...)
	require.NoError(t, err)

	return tr, phase
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}

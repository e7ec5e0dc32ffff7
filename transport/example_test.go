package transport_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/poreflow/boundary"
	"github.com/katalvlaran/poreflow/network"
	"github.com/katalvlaran/poreflow/property"
	"github.com/katalvlaran/poreflow/transport"
)

// ExampleTransport_Run injects 5 units at one end of a three-pore path and
// holds the other end at zero.
//
//	(0) ──1── (1) ──1── (2)
//	 +5                  x=0
func ExampleTransport_Run() {
	net, _ := network.New(3, [][2]int{{0, 1}, {1, 2}})
	water, _ := property.NewStore("water", 3, 2)
	_ = water.Set("throat.diffusive_conductance", []float64{1, 1})

	fick, _ := transport.New(net, water,
		transport.WithQuantity("pore.concentration"),
		transport.WithConductance("throat.diffusive_conductance"),
		transport.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	_, _ = fick.SetRateBC([]int{0}, boundary.WithRates(5))
	_, _ = fick.SetValueBC([]int{2}, []float64{0}, boundary.Merge)

	if err := fick.Run(nil, nil); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f\n", fick.X())
	out, _ := fick.Rate([]int{2}, nil, transport.Group)
	fmt.Printf("outflow at pore 2: %.3f\n", out[0])
	// Output:
	// [10.000 5.000 0.000]
	// outflow at pore 2: -5.000
}

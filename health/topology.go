package health

import (
	"github.com/katalvlaran/poreflow/network"
)

// CheckTopology returns nil when net is one cluster, or when every
// cluster holds at least one of bcPores. Otherwise it returns a
// *TopologyError.
func CheckTopology(net *network.Network, bcPores []int) error {
	if net == nil {
		return ErrNilNetwork
	}
	if net.IsFullyConnected(bcPores) {
		return nil
	}
	report := net.CheckHealth()

	return &TopologyError{
		Clusters:   len(net.Components()),
		Unanchored: net.UnanchoredClusters(bcPores),
		TrimPores:  report.TrimPores,
	}
}

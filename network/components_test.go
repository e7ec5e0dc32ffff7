package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poreflow/network"
)

// twoClusters returns 0-1-2 plus a separate 3-4 stub and a lone pore 5.
func twoClusters(t *testing.T) *network.Network {
	t.Helper()
	net, err := network.New(6, [][2]int{{0, 1}, {1, 2}, {3, 4}})
	require.NoError(t, err)

	return net
}

// TestComponents_Ordering checks deterministic cluster ids and contents.
func TestComponents_Ordering(t *testing.T) {
	comps := twoClusters(t).Components()
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}, {5}}, comps)
}

// TestIsFullyConnected covers both forms of the connectivity test.
func TestIsFullyConnected(t *testing.T) {
	path, err := network.New(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	assert.True(t, path.IsFullyConnected(nil))

	net := twoClusters(t)
	assert.False(t, net.IsFullyConnected(nil))
	assert.False(t, net.IsFullyConnected([]int{0, 3}))   // lone pore 5 unanchored
	assert.True(t, net.IsFullyConnected([]int{0, 4, 5})) // every cluster pinned
	assert.Equal(t, [][]int{{5}}, net.UnanchoredClusters([]int{2, 3}))
	assert.Equal(t, [][]int{{3, 4}, {5}}, net.UnanchoredClusters(nil))
}

// TestCheckHealth reports isolated pores, trim pores, loops and duplicates.
func TestCheckHealth(t *testing.T) {
	h := twoClusters(t).CheckHealth()
	assert.False(t, h.Healthy())
	assert.Equal(t, []int{5}, h.IsolatedPores)
	assert.Equal(t, []int{3, 4, 5}, h.TrimPores)
	assert.Len(t, h.DisconnectedClusters, 3)

	net, err := network.New(3, [][2]int{{0, 1}, {1, 0}, {2, 2}, {1, 2}},
		network.WithAllowDuplicates(), network.WithAllowLoops())
	require.NoError(t, err)
	h = net.CheckHealth()
	assert.Equal(t, [][]int{{0, 1}}, h.DuplicateThroats)
	assert.Equal(t, []int{2}, h.LoopThroats)
	assert.Empty(t, h.TrimPores)

	clean, err := network.New(2, [][2]int{{0, 1}})
	require.NoError(t, err)
	assert.True(t, clean.CheckHealth().Healthy())
}

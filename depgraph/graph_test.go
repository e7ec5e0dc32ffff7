package depgraph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poreflow/depgraph"
)

// position returns index of v in order or -1 if absent.
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// chain builds pore.diameter → throat.diameter → throat.conductance plus an
// independent pore.temperature → throat.conductance.
func chain(t *testing.T) *depgraph.Graph {
	t.Helper()
	g := depgraph.New()
	require.NoError(t, g.AddEdge("pore.diameter", "throat.diameter"))
	require.NoError(t, g.AddEdge("throat.diameter", "throat.conductance"))
	require.NoError(t, g.AddEdge("pore.temperature", "throat.conductance"))

	return g
}

func TestAddEdge_Errors(t *testing.T) {
	g := depgraph.New()
	assert.ErrorIs(t, g.AddEdge("a", "a"), depgraph.ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge("", "a"), depgraph.ErrEmptyName)
	assert.ErrorIs(t, g.AddNode(""), depgraph.ErrEmptyName)
	assert.Zero(t, g.Len())
}

func TestAddEdge_Dedup(t *testing.T) {
	g := depgraph.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddNode("a"))
	succ, err := g.Successors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, succ)
	assert.Equal(t, 2, g.Len())
	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))
}

func TestAncestorsDescendants(t *testing.T) {
	g := chain(t)

	anc, err := g.Ancestors("throat.conductance")
	require.NoError(t, err)
	assert.Equal(t, []string{"pore.diameter", "pore.temperature", "throat.diameter"}, anc)

	desc, err := g.Descendants("pore.diameter")
	require.NoError(t, err)
	assert.Equal(t, []string{"throat.conductance", "throat.diameter"}, desc)

	pred, err := g.Predecessors("throat.diameter")
	require.NoError(t, err)
	assert.Equal(t, []string{"pore.diameter"}, pred)

	_, err = g.Ancestors("nope")
	assert.ErrorIs(t, err, depgraph.ErrUnknownNode)
	_, err = g.Descendants("nope")
	assert.ErrorIs(t, err, depgraph.ErrUnknownNode)
	_, err = g.Successors("nope")
	assert.ErrorIs(t, err, depgraph.ErrUnknownNode)
}

func TestRoots(t *testing.T) {
	g := chain(t)
	assert.Equal(t, []string{"pore.diameter", "pore.temperature"}, g.Roots())
	assert.Empty(t, depgraph.New().Roots())
}

// TestSubgraph_RootsOfBrokenProps checks that cutting a graph to a set of
// nodes keeps only the internal edges, so a node whose deps were cut away
// becomes a root.
func TestSubgraph_RootsOfBrokenProps(t *testing.T) {
	g := chain(t)

	sub := g.Subgraph([]string{"throat.diameter", "throat.conductance", "missing"})
	assert.Equal(t, 2, sub.Len())
	assert.False(t, sub.HasNode("missing"))
	assert.True(t, sub.HasEdge("throat.diameter", "throat.conductance"))
	assert.Equal(t, []string{"throat.diameter"}, sub.Roots())

	// the source graph is untouched
	assert.Equal(t, 4, g.Len())
}

func TestCompose(t *testing.T) {
	a := depgraph.New()
	require.NoError(t, a.AddEdge("x", "y"))
	b := depgraph.New()
	require.NoError(t, b.AddEdge("y", "z"))
	require.NoError(t, b.AddNode("w"))

	c := depgraph.Compose(a, nil, b)
	assert.Equal(t, []string{"w", "x", "y", "z"}, c.Nodes())
	desc, err := c.Descendants("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "z"}, desc)

	// the result does not alias its inputs
	require.NoError(t, c.AddEdge("z", "q"))
	assert.False(t, b.HasNode("q"))

	clone := a.Clone()
	assert.Equal(t, a.Nodes(), clone.Nodes())
}

func TestTopologicalSort_Empty(t *testing.T) {
	order, err := depgraph.New().TopologicalSort()
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopologicalSort_RespectsEdges(t *testing.T) {
	g := chain(t)
	order, err := g.TopologicalSort()
	require.NoError(t, err)
	require.Len(t, order, 4)
	for _, e := range [][2]string{
		{"pore.diameter", "throat.diameter"},
		{"throat.diameter", "throat.conductance"},
		{"pore.temperature", "throat.conductance"},
	} {
		assert.Lessf(t, position(order, e[0]), position(order, e[1]), "%s before %s", e[0], e[1])
	}
}

func TestTopologicalSort_Deterministic(t *testing.T) {
	g := depgraph.New()
	for _, e := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	first, err := g.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, first)
	for i := 0; i < 10; i++ {
		again, err := g.TopologicalSort()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestTopologicalSort_Cycle(t *testing.T) {
	g := depgraph.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("c", "a"))
	_, err := g.TopologicalSort()
	assert.ErrorIs(t, err, depgraph.ErrCycleDetected)
}

func TestTopologicalSort_Cancelled(t *testing.T) {
	g := chain(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.TopologicalSort(depgraph.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

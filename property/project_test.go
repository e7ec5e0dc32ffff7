package property_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poreflow/network"
	"github.com/katalvlaran/poreflow/property"
)

// fourPorePath returns 0-1-2-3 with throats 0,1,2.
func fourPorePath(t *testing.T) *network.Network {
	t.Helper()
	net, err := network.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	return net
}

func mustStore(t *testing.T, name string, np, nt int) *property.Store {
	t.Helper()
	s, err := property.NewStore(name, np, nt)
	require.NoError(t, err)

	return s
}

func TestNewProject_PhaseMustSpanNetwork(t *testing.T) {
	net := fourPorePath(t)
	_, err := property.NewProject(net, mustStore(t, "air", 3, 3))
	assert.ErrorIs(t, err, property.ErrSizeMismatch)
}

func TestProject_GeometryHealth(t *testing.T) {
	net := fourPorePath(t)
	prj, err := property.NewProject(net, mustStore(t, "air", 4, 3))
	require.NoError(t, err)

	assert.Empty(t, prj.GeometryHealth(), "no geometries, nothing to check")

	require.NoError(t, prj.AddGeometry(mustStore(t, "geo1", 2, 2), []int{0, 1}, []int{0, 1}))
	require.NoError(t, prj.AddGeometry(mustStore(t, "geo2", 1, 2), []int{1}, []int{1, 2}))

	h := prj.GeometryHealth()
	assert.Equal(t, []int{2, 3}, h[property.IssueUndefinedPores])
	assert.Equal(t, []int{1}, h[property.IssueOverlappingPores])
	assert.Empty(t, h[property.IssueUndefinedThroats])
	assert.Equal(t, []int{1}, h[property.IssueOverlappingThroats])
}

func TestProject_AddErrors(t *testing.T) {
	net := fourPorePath(t)
	prj, err := property.NewProject(net, mustStore(t, "air", 4, 3))
	require.NoError(t, err)

	assert.ErrorIs(t, prj.AddGeometry(mustStore(t, "air", 0, 0), nil, nil), property.ErrDuplicateObject)
	assert.ErrorIs(t, prj.AddGeometry(mustStore(t, "g", 2, 0), []int{0}, nil), property.ErrSizeMismatch)
	err = prj.AddGeometry(mustStore(t, "g", 1, 0), []int{9}, nil)
	assert.ErrorIs(t, err, property.ErrOutOfRange)
	assert.ErrorIs(t, err, network.ErrUnknownPore)

	require.NoError(t, prj.AddGeometry(mustStore(t, "g", 4, 3), []int{0, 1, 2, 3}, []int{0, 1, 2}))
	assert.ErrorIs(t, prj.AddPhysics(mustStore(t, "p", 4, 3), "nope"), property.ErrUnknownObject)
	assert.ErrorIs(t, prj.AddPhysics(mustStore(t, "p", 1, 1), "g"), property.ErrSizeMismatch)
	require.NoError(t, prj.AddPhysics(mustStore(t, "p", 4, 3), "g"))
	assert.Equal(t, []string{"air", "g", "p"}, prj.Objects())
}

func TestProject_Triplets(t *testing.T) {
	net := fourPorePath(t)
	phase := mustStore(t, "air", 4, 3)
	prj, err := property.NewProject(net, phase)
	require.NoError(t, err)

	trip := prj.Triplets()
	require.Len(t, trip, 1)
	assert.Equal(t, "air", trip[0][0].Name())

	require.NoError(t, prj.AddGeometry(mustStore(t, "g1", 2, 1), []int{0, 1}, []int{0}))
	require.NoError(t, prj.AddGeometry(mustStore(t, "g2", 2, 2), []int{2, 3}, []int{1, 2}))
	require.NoError(t, prj.AddPhysics(mustStore(t, "phys1", 2, 1), "g1"))

	trip = prj.Triplets()
	require.Len(t, trip, 2)
	names := func(i int) []string {
		var out []string
		for _, o := range trip[i] {
			out = append(out, o.Name())
		}
		return out
	}
	assert.Equal(t, []string{"air", "g1", "phys1"}, names(0))
	assert.Equal(t, []string{"air", "g2"}, names(1))
	assert.Same(t, phase, prj.Phase())
	assert.Same(t, net, prj.Network())
}

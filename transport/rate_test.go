package transport_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poreflow/boundary"
	"github.com/katalvlaran/poreflow/network"
	"github.com/katalvlaran/poreflow/transport"
)

func TestRate_ArgumentErrors(t *testing.T) {
	tr, _ := setup(t, 2, [][2]int{{0, 1}}, []float64{1})

	_, err := tr.Rate([]int{0}, nil, transport.Group)
	assert.ErrorIs(t, err, transport.ErrNotSolved)

	_, err = tr.SetValueBC([]int{0, 1}, []float64{1, 0}, boundary.Merge)
	require.NoError(t, err)
	require.NoError(t, tr.Run(nil, nil))

	_, err = tr.Rate([]int{0}, []int{0}, transport.Group)
	assert.ErrorIs(t, err, transport.ErrConflictingArguments)
	_, err = tr.Rate(nil, nil, transport.Group)
	assert.ErrorIs(t, err, transport.ErrConflictingArguments)
	_, err = tr.Rate([]int{}, []int{}, transport.Single)
	assert.ErrorIs(t, err, transport.ErrConflictingArguments)

	_, err = tr.SetRateBC([]int{0}, boundary.WithRates(1), boundary.WithTotalRate(1))
	assert.ErrorIs(t, err, transport.ErrConflictingArguments)
	_, err = tr.SetRateBC([]int{0})
	assert.ErrorIs(t, err, transport.ErrConflictingArguments)

	_, err = tr.Rate([]int{0}, nil, transport.RateMode(5))
	assert.ErrorIs(t, err, transport.ErrInvalidMode)
	_, err = tr.Rate([]int{7}, nil, transport.Single)
	assert.ErrorIs(t, err, network.ErrUnknownPore)
	_, err = tr.Rate(nil, []int{3}, transport.Single)
	assert.ErrorIs(t, err, network.ErrUnknownThroat)
}

func TestRate_ThroatsSingleAndGroup(t *testing.T) {
	tr, _ := setup(t, 3, [][2]int{{0, 1}, {1, 2}}, []float64{1, 3})
	_, err := tr.SetValueBC([]int{0, 2}, []float64{4, 0}, boundary.Merge)
	require.NoError(t, err)
	require.NoError(t, tr.Run(nil, nil))

	// series conductance 0.75 carries Q = 3 through both throats
	single, err := tr.Rate(nil, []int{0, 1}, transport.Single)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{3, 3}, single, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("throat rates (-want +got):\n%s", diff)
	}

	group, err := tr.Rate(nil, []int{0, 1}, transport.Group)
	require.NoError(t, err)
	require.Len(t, group, 1)
	assert.InDelta(t, 6, group[0], 1e-9)
}

func TestThroatFlux(t *testing.T) {
	conns := [][2]int{{0, 1}, {2, 1}}
	x := []float64{3, 1, 0}

	qt, err := transport.ThroatFlux(conns, []float64{2, 1}, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{2 * (1 - 3), 1 * (1 - 0)}, qt)

	// directional pairs: Qt = g0·x[c1] − g1·x[c0]
	qt, err = transport.ThroatFlux(conns, []float64{1, 2, 4, 8}, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{1*1 - 2*3, 4*1 - 8*0}, qt)

	_, err = transport.ThroatFlux(conns, []float64{1, 2, 3}, x)
	assert.ErrorIs(t, err, transport.ErrDimensionMismatch)
	_, err = transport.ThroatFlux([][2]int{{0, 9}}, []float64{1}, x)
	assert.ErrorIs(t, err, transport.ErrDimensionMismatch)
}

func TestModeAndStateStrings(t *testing.T) {
	assert.Equal(t, "group", transport.Group.String())
	assert.Equal(t, "single", transport.Single.String())
	assert.Equal(t, "solved", transport.Solved.String())
	assert.Equal(t, "unbuilt", transport.Unbuilt.String())
}

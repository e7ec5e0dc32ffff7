package health

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/poreflow/matrix"
)

var (
	// ErrInvalidTopology is the shared topology sentinel.
	ErrInvalidTopology = matrix.ErrInvalidTopology

	// ErrDisconnectedTopology indicates a cluster with no boundary pore.
	// It matches ErrInvalidTopology under errors.Is.
	ErrDisconnectedTopology = fmt.Errorf("health: network is clustered: %w", ErrInvalidTopology)

	// ErrNumericalHealth indicates NaN or Inf in the assembled system.
	ErrNumericalHealth = errors.New("health: found NaNs in A matrix")

	// ErrGeometryHealth indicates pores or throats covered by no geometry
	// or by more than one. It matches ErrNumericalHealth under errors.Is.
	ErrGeometryHealth = fmt.Errorf("health: critical geometry issues: %w", ErrNumericalHealth)

	// ErrNilNetwork indicates CheckTopology was given no network.
	ErrNilNetwork = errors.New("health: network is nil")
)

// TopologyError describes a clustered network.
type TopologyError struct {
	// Clusters is the total number of clusters.
	Clusters int
	// Unanchored lists the clusters that contain no boundary pore.
	Unanchored [][]int
	// TrimPores are the pores outside the largest cluster.
	TrimPores []int
}

// Error implements error.
func (e *TopologyError) Error() string {
	return fmt.Sprintf("%v: %d clusters, %d without boundary conditions; trim pores %v to make the network fully connected",
		ErrDisconnectedTopology, e.Clusters, len(e.Unanchored), e.TrimPores)
}

// Unwrap returns ErrDisconnectedTopology.
func (e *TopologyError) Unwrap() error { return ErrDisconnectedTopology }

// GeometryHealthError lists the non-empty coverage issues.
type GeometryHealthError struct {
	// Issues holds the names of the failing checks, ascending.
	Issues []string
	// Details maps each issue to the offending pore or throat indices.
	Details map[string][]int
}

// Error implements error.
func (e *GeometryHealthError) Error() string {
	return fmt.Sprintf("%v: %s", ErrGeometryHealth, strings.Join(e.Issues, ", "))
}

// Unwrap returns ErrGeometryHealth.
func (e *GeometryHealthError) Unwrap() error { return ErrGeometryHealth }

// NaNError explains where NaNs in the system come from. Exactly one of
// the three forms is filled:
//
//   - RootProps/Objects: the props where NaNs start and the objects whose
//     models should be regenerated, in dependency order;
//   - Unaccounted: NaN props that no dependency graph knows about;
//   - Hint: no root found at all.
type NaNError struct {
	RootProps   []string
	Objects     []string
	Unaccounted []string
	Hint        string
}

// HintDisableCache is the advice given when no root cause is found.
const HintDisableCache = "couldn't locate the root cause; disabling caching of the A matrix (Settings.Cache = false) likely fixes the problem"

// Error implements error.
func (e *NaNError) Error() string {
	switch {
	case len(e.RootProps) > 0:
		return fmt.Sprintf("%v, possibly caused by NaNs in %s; regenerate models on: %s",
			ErrNumericalHealth, strings.Join(e.RootProps, ", "), strings.Join(e.Objects, ", "))
	case len(e.Unaccounted) > 0:
		return fmt.Sprintf("%v, possibly caused by NaNs in %s", ErrNumericalHealth, strings.Join(e.Unaccounted, ", "))
	default:
		return fmt.Sprintf("%v but %s", ErrNumericalHealth, e.Hint)
	}
}

// Unwrap returns ErrNumericalHealth.
func (e *NaNError) Unwrap() error { return ErrNumericalHealth }

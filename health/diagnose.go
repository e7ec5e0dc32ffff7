package health

import (
	"sort"
	"strings"

	"github.com/katalvlaran/poreflow/depgraph"
)

// Object is anything that owns props: a phase, geometry or physics.
type Object interface {
	Name() string
	// DependencyGraph returns the object's model graph (may be nil).
	DependencyGraph() *depgraph.Graph
	// InvalidProps returns the props holding NaNs.
	InvalidProps() []string
}

// Upstream exposes the objects feeding a transport algorithm.
type Upstream interface {
	// GeometryHealth maps a coverage issue name to the offending indices.
	// Empty entries mean the check passed.
	GeometryHealth() map[string][]int
	// Triplets groups the objects that jointly define one region of the
	// network, typically {phase, geometry, physics}.
	Triplets() [][]Object
}

// Diagnose locates the origin of NaNs in an assembled system. It is meant
// to run after CheckSystem failed and never returns nil.
//
// Implementation:
//   - Stage 1: geometry coverage; any non-empty issue → *GeometryHealthError.
//   - Stage 2: per triplet, compose the dependency graphs; map every NaN
//     prop (reduced to its "<element>.<name>" base) to its owning object,
//     or to the unaccounted list when no graph knows it.
//   - Stage 3: restrict the composed graph to the mapped props; nodes
//     without predecessors there are the roots. The first triplet with
//     roots yields *NaNError{RootProps, Objects}, objects in dependency
//     order.
//   - Stage 4: unaccounted props → *NaNError{Unaccounted}.
//   - Stage 5: *NaNError{Hint: HintDisableCache}.
//
// A nil up skips straight to Stage 5.
func Diagnose(up Upstream) error {
	if up == nil {
		return &NaNError{Hint: HintDisableCache}
	}

	if err := geometryIssues(up.GeometryHealth()); err != nil {
		return err
	}

	var unaccounted []string
	seenUnaccounted := make(map[string]bool)
	for _, objs := range up.Triplets() {
		graphs := make([]*depgraph.Graph, 0, len(objs))
		for _, o := range objs {
			if o != nil {
				graphs = append(graphs, o.DependencyGraph())
			}
		}
		dg := depgraph.Compose(graphs...)

		owner := make(map[string]string)
		for _, o := range objs {
			if o == nil {
				continue
			}
			for _, prop := range o.InvalidProps() {
				base := BaseProp(prop)
				if dg.HasNode(base) {
					owner[base] = o.Name()
					continue
				}
				if !seenUnaccounted[base] {
					seenUnaccounted[base] = true
					unaccounted = append(unaccounted, base)
				}
			}
		}
		if len(owner) == 0 {
			continue
		}

		broken := make([]string, 0, len(owner))
		for p := range owner {
			broken = append(broken, p)
		}
		sub := dg.Subgraph(broken)
		order, err := sub.TopologicalSort()
		if err != nil {
			// A cyclic model graph cannot be ordered; fall back to names.
			order = sub.Nodes()
		}
		roots := make(map[string]bool)
		for _, r := range sub.Roots() {
			roots[r] = true
		}

		var rootProps, objects []string
		seenObj := make(map[string]bool)
		for _, p := range order {
			if roots[p] {
				rootProps = append(rootProps, p)
			}
			if name := owner[p]; !seenObj[name] {
				seenObj[name] = true
				objects = append(objects, name)
			}
		}
		if len(rootProps) > 0 {
			return &NaNError{RootProps: rootProps, Objects: objects}
		}
	}

	if len(unaccounted) > 0 {
		return &NaNError{Unaccounted: unaccounted}
	}

	return &NaNError{Hint: HintDisableCache}
}

// BaseProp keeps the first two dot-separated segments of prop, so
// "throat.conductance.x" and "throat.conductance" share one base.
func BaseProp(prop string) string {
	parts := strings.SplitN(prop, ".", 3)
	if len(parts) < 3 {
		return prop
	}

	return parts[0] + "." + parts[1]
}

func geometryIssues(h map[string][]int) error {
	var issues []string
	details := make(map[string][]int)
	for name, idx := range h {
		if len(idx) > 0 {
			issues = append(issues, name)
			details[name] = append([]int(nil), idx...)
		}
	}
	if len(issues) == 0 {
		return nil
	}
	sort.Strings(issues)

	return &GeometryHealthError{Issues: issues, Details: details}
}

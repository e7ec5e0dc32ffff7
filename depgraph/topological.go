package depgraph

import (
	"context"
	"fmt"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext makes TopologicalSort honor ctx. A nil ctx has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter carries the traversal state of one TopologicalSort call.
type topoSorter struct {
	succ  map[string]map[string]struct{}
	opts  topoOptions
	state map[string]int
	order []string
}

// TopologicalSort orders every node so that each dep precedes the props
// computed from it.
//
// Implementation:
//   - Stage 1: snapshot the adjacency under the read lock.
//   - Stage 2: DFS from every White node in ascending name order, visiting
//     successors in ascending order; a Gray hit is a back edge.
//   - Stage 3: reverse the post-order.
//
// Errors: ErrCycleDetected, or ctx.Err() on cancellation.
// Complexity: O(V log V + E log E) with the sorting of ties.
func (g *Graph) TopologicalSort(options ...TopoOption) ([]string, error) {
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	g.mu.RLock()
	snapshot := make(map[string]map[string]struct{}, len(g.succ))
	for from, tos := range g.succ {
		cp := make(map[string]struct{}, len(tos))
		for to := range tos {
			cp[to] = struct{}{}
		}
		snapshot[from] = cp
	}
	g.mu.RUnlock()

	s := &topoSorter{
		succ:  snapshot,
		opts:  opts,
		state: make(map[string]int, len(snapshot)),
		order: make([]string, 0, len(snapshot)),
	}
	// Visiting in descending order and reversing the post-order yields the
	// smallest-name-first ordering among independent nodes.
	verts := sortedSet(snapshot)
	for i := len(verts) - 1; i >= 0; i-- {
		if s.state[verts[i]] == White {
			if err := s.visit(verts[i]); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

func (s *topoSorter) visit(id string) error {
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}
	if s.state[id] == Gray {
		return graphErrorf(fmt.Sprintf("TopologicalSort at %q", id), ErrCycleDetected)
	}
	if s.state[id] == Black {
		return nil
	}
	s.state[id] = Gray

	next := sortedKeys(s.succ[id])
	for i := len(next) - 1; i >= 0; i-- {
		if err := s.visit(next[i]); err != nil {
			return err
		}
	}

	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}

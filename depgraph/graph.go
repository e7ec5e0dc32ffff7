package depgraph

import (
	"fmt"
	"sort"
	"sync"
)

// Graph is a set of named nodes and dependency edges.
// All methods are safe for concurrent use.
type Graph struct {
	mu   sync.RWMutex
	succ map[string]map[string]struct{} // dep → props computed from it
	pred map[string]map[string]struct{} // prop → its deps
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		succ: make(map[string]map[string]struct{}),
		pred: make(map[string]map[string]struct{}),
	}
}

// AddNode inserts id. Adding an existing node is a no-op.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return graphErrorf("AddNode", ErrEmptyName)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(id)

	return nil
}

func (g *Graph) addNodeLocked(id string) {
	if _, ok := g.succ[id]; ok {
		return
	}
	g.succ[id] = make(map[string]struct{})
	g.pred[id] = make(map[string]struct{})
}

// AddEdge records that to is computed from from. Missing endpoints are
// added. Edges are deduplicated. Cycles are not rejected here; they
// surface from TopologicalSort.
func (g *Graph) AddEdge(from, to string) error {
	tag := fmt.Sprintf("AddEdge(%q, %q)", from, to)
	if from == "" || to == "" {
		return graphErrorf(tag, ErrEmptyName)
	}
	if from == to {
		return graphErrorf(tag, ErrSelfLoop)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(from)
	g.addNodeLocked(to)
	g.succ[from][to] = struct{}{}
	g.pred[to][from] = struct{}{}

	return nil
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.succ[id]

	return ok
}

// HasEdge reports whether the edge from → to is present.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.succ[from][to]

	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.succ)
}

// Nodes returns every node, ascending.
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedSet(g.succ)
}

// Predecessors returns the direct deps of id, ascending.
func (g *Graph) Predecessors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	p, ok := g.pred[id]
	if !ok {
		return nil, graphErrorf(fmt.Sprintf("Predecessors(%q)", id), ErrUnknownNode)
	}

	return sortedKeys(p), nil
}

// Successors returns the props computed directly from id, ascending.
func (g *Graph) Successors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s, ok := g.succ[id]
	if !ok {
		return nil, graphErrorf(fmt.Sprintf("Successors(%q)", id), ErrUnknownNode)
	}

	return sortedKeys(s), nil
}

// Ancestors returns every node id transitively depends on, ascending.
func (g *Graph) Ancestors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.pred[id]; !ok {
		return nil, graphErrorf(fmt.Sprintf("Ancestors(%q)", id), ErrUnknownNode)
	}

	return reach(g.pred, id), nil
}

// Descendants returns every node transitively computed from id, ascending.
func (g *Graph) Descendants(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.succ[id]; !ok {
		return nil, graphErrorf(fmt.Sprintf("Descendants(%q)", id), ErrUnknownNode)
	}

	return reach(g.succ, id), nil
}

// Roots returns the nodes without predecessors, ascending.
func (g *Graph) Roots() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []string
	for id, p := range g.pred {
		if len(p) == 0 {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// Subgraph returns the graph induced by ids: those nodes present in g and
// every edge of g joining two of them. Unknown ids are ignored.
func (g *Graph) Subgraph(ids []string) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := g.succ[id]; ok {
			keep[id] = struct{}{}
		}
	}
	out := New()
	for id := range keep {
		out.addNodeLocked(id)
	}
	for from := range keep {
		for to := range g.succ[from] {
			if _, ok := keep[to]; ok {
				out.succ[from][to] = struct{}{}
				out.pred[to][from] = struct{}{}
			}
		}
	}

	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	return Compose(g)
}

// Compose returns the union of the given graphs. Nil graphs are skipped.
func Compose(graphs ...*Graph) *Graph {
	out := New()
	for _, g := range graphs {
		if g == nil {
			continue
		}
		g.mu.RLock()
		for from, tos := range g.succ {
			out.addNodeLocked(from)
			for to := range tos {
				out.addNodeLocked(to)
				out.succ[from][to] = struct{}{}
				out.pred[to][from] = struct{}{}
			}
		}
		g.mu.RUnlock()
	}

	return out
}

// reach collects every node reachable from start along adj, excluding
// start itself unless it lies on a cycle.
func reach(adj map[string]map[string]struct{}, start string) []string {
	seen := make(map[string]struct{})
	stack := []string{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for w := range adj[v] {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			stack = append(stack, w)
		}
	}

	return sortedKeys(seen)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

func sortedSet(m map[string]map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

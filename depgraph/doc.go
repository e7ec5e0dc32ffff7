// Package depgraph is a small directed acyclic graph of property names.
//
// An edge dep → prop records that prop is computed from dep. Models
// register such edges when they are attached to an object; the health
// diagnostics compose the graphs of several objects, cut them down to the
// props holding NaNs, and read the roots off the result: a root is a
// broken prop whose own inputs are all healthy, so it is where a repair
// has to start.
//
// Every listing (Nodes, Roots, TopologicalSort, ...) is deterministic:
// ties are broken by ascending node name.
//
// Complexity:
//
//   - AddNode / AddEdge: O(1) amortized
//   - Ancestors / Descendants / TopologicalSort: O(V + E)
//   - Compose / Subgraph: O(V + E) of the result
package depgraph

// SPDX-License-Identifier: MIT
// Package matrix - edge-list builders (adjacency and Laplacian).
//
// Deliverables:
//   1) Undirected mirroring: every throat (u,v,w) writes (u,v) and (v,u).
//   2) Laplacian: off-diagonal -w, diagonal Σw of incident throats, so
//      every row sums to zero before boundary conditions are applied.
//   3) Topology policy: out-of-range endpoints always fail; self-loops and
//      duplicated pairs fail unless allowed (then loops are dropped and
//      duplicates are summed as parallel conductances).
//   4) Deterministic: entries are emitted in throat order and folded by a
//      stable sort, so repeated builds are bit-for-bit identical.
//
// AI-Hints:
//   - weights == nil means unit weights (pure structural Laplacian).
//   - NaN weights pass through by default; the transport health check is
//     responsible for reporting them. Use WithValidateNaNInf to fail fast.

package matrix

import "fmt"

const (
	ctxLaplacian = "Laplacian"
	ctxAdjacency = "Adjacency"
)

// Laplacian builds the weighted graph Laplacian L = D - W of an undirected
// network with n nodes and throats conns.
// Implementation:
//   - Stage 1: ingest edges (shape, topology, weight checks).
//   - Stage 2: emit four triplets per throat.
//   - Stage 3: fold into CSR via NewSparse.
//
// Inputs:
//   - n: number of nodes (> 0).
//   - conns: throat endpoints, one [2]int per throat.
//   - weights: nil or one weight per throat.
//
// Errors:
//   - ErrBadShape, ErrInvalidTopology, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(n + m log m), Space O(n + m).
func Laplacian(n int, conns [][2]int, weights []float64, opts ...Option) (*Sparse, error) {
	o := gatherOptions(opts...)
	edges, err := ingestEdges(ctxLaplacian, n, conns, weights, o)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, 4*len(edges))
	for _, e := range edges {
		entries = append(entries,
			Entry{Row: e.u, Col: e.v, Val: -e.w},
			Entry{Row: e.v, Col: e.u, Val: -e.w},
			Entry{Row: e.u, Col: e.u, Val: e.w},
			Entry{Row: e.v, Col: e.v, Val: e.w},
		)
	}

	return NewSparse(n, entries)
}

// Adjacency builds the symmetric weighted adjacency W of an undirected
// network (zero diagonal). Same inputs and errors as Laplacian.
func Adjacency(n int, conns [][2]int, weights []float64, opts ...Option) (*Sparse, error) {
	o := gatherOptions(opts...)
	edges, err := ingestEdges(ctxAdjacency, n, conns, weights, o)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, 2*len(edges))
	for _, e := range edges {
		entries = append(entries,
			Entry{Row: e.u, Col: e.v, Val: e.w},
			Entry{Row: e.v, Col: e.u, Val: e.w},
		)
	}

	return NewSparse(n, entries)
}

// weightedEdge is one accepted throat after ingestion.
type weightedEdge struct {
	u, v int
	w    float64
}

// ingestEdges validates conns/weights against the policy in o and returns
// the accepted edges (loops removed when allowed).
// ERROR PRIORITY: shape -> topology -> weights length -> NaN/Inf.
func ingestEdges(tag string, n int, conns [][2]int, weights []float64, o Options) ([]weightedEdge, error) {
	if n <= 0 {
		return nil, matrixErrorf(tag, ErrBadShape)
	}

	seen := make(map[pairKey]struct{}, len(conns))
	for k, c := range conns {
		u, v := c[0], c[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, edgeErrorf(tag, k, u, v, fmt.Errorf("%w: endpoint outside [0,%d)", ErrInvalidTopology, n))
		}
		if u == v {
			if !o.allowLoops {
				return nil, edgeErrorf(tag, k, u, v, fmt.Errorf("%w: self-loop", ErrInvalidTopology))
			}
			continue
		}
		key := newPairKey(u, v)
		if _, dup := seen[key]; dup && !o.allowDuplicates {
			return nil, edgeErrorf(tag, k, u, v, fmt.Errorf("%w: duplicate throat", ErrInvalidTopology))
		}
		seen[key] = struct{}{}
	}

	if weights != nil && len(weights) != len(conns) {
		return nil, fmt.Errorf("%s: %d weights for %d throats: %w", tag, len(weights), len(conns), ErrDimensionMismatch)
	}
	if o.validateNaNInf {
		for k, w := range weights {
			if isNonFinite(w) {
				return nil, edgeErrorf(tag, k, conns[k][0], conns[k][1], ErrNaNInf)
			}
		}
	}

	edges := make([]weightedEdge, 0, len(conns))
	for k, c := range conns {
		if c[0] == c[1] {
			continue
		}
		w := 1.0
		if weights != nil {
			w = weights[k]
		}
		edges = append(edges, weightedEdge{u: c[0], v: c[1], w: w})
	}

	return edges, nil
}

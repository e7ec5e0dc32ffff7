package network

import "sort"

// Components finds all clusters of pores joined by throats.
// Clusters are ordered by their smallest pore; pores inside a cluster are
// ascending.
//
// Time:   O(Np + Nt).
// Memory: O(Np) for labels and output.
func (n *Network) Components() [][]int {
	labels, count := n.labels()
	comps := make([][]int, count)
	for p, c := range labels {
		comps[c] = append(comps[c], p)
	}

	return comps
}

// labels assigns a cluster id to every pore with a queue-driven BFS.
// Seeds are visited in ascending order, so ids are deterministic.
func (n *Network) labels() ([]int, int) {
	labels := make([]int, n.np)
	for i := range labels {
		labels[i] = -1
	}
	count := 0
	queue := make([]int, 0, n.np)
	for seed := 0; seed < n.np; seed++ {
		if labels[seed] >= 0 {
			continue
		}
		queue = append(queue[:0], seed)
		labels[seed] = count
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range n.neighbors[u] {
				if labels[v] < 0 {
					labels[v] = count
					queue = append(queue, v)
				}
			}
		}
		count++
	}

	return labels, count
}

// IsFullyConnected reports whether the network forms one cluster, or, when
// anchors are given, whether every cluster contains at least one anchor.
// The second form is equivalent to joining all anchors to one virtual pore
// and asking for a single cluster: isolated stubs are acceptable as long as
// a boundary pore pins their value.
//
// Out-of-range anchors are ignored.
func (n *Network) IsFullyConnected(anchors []int) bool {
	return len(n.unanchored(anchors)) == 0
}

// UnanchoredClusters returns the clusters that contain no anchor pore.
// With no anchors, a single-cluster network returns nil; otherwise every
// cluster but the largest is returned (the largest is taken as the body).
func (n *Network) UnanchoredClusters(anchors []int) [][]int {
	return n.unanchored(anchors)
}

func (n *Network) unanchored(anchors []int) [][]int {
	comps := n.Components()
	if len(comps) <= 1 {
		return nil
	}

	labels, _ := n.labels()
	anchored := make([]bool, len(comps))
	hasAnchor := false
	for _, p := range anchors {
		if p < 0 || p >= n.np {
			continue
		}
		anchored[labels[p]] = true
		hasAnchor = true
	}
	if !hasAnchor {
		anchored[largest(comps)] = true
	}

	var out [][]int
	for c, comp := range comps {
		if !anchored[c] {
			out = append(out, comp)
		}
	}

	return out
}

// largest returns the index of the biggest cluster (first on ties).
func largest(comps [][]int) int {
	best := 0
	for i, c := range comps {
		if len(c) > len(comps[best]) {
			best = i
		}
	}

	return best
}

// HealthReport summarizes structural problems that make a network
// unsuitable for transport.
type HealthReport struct {
	// IsolatedPores have no throats at all.
	IsolatedPores []int
	// DisconnectedClusters lists every cluster when there is more than one.
	DisconnectedClusters [][]int
	// TrimPores are the pores outside the largest cluster; removing them
	// leaves a fully connected network.
	TrimPores []int
	// DuplicateThroats groups throats joining the same pair of pores.
	DuplicateThroats [][]int
	// LoopThroats join a pore to itself.
	LoopThroats []int
}

// Healthy reports whether the report lists no problem.
func (h HealthReport) Healthy() bool {
	return len(h.IsolatedPores) == 0 &&
		len(h.DisconnectedClusters) == 0 &&
		len(h.TrimPores) == 0 &&
		len(h.DuplicateThroats) == 0 &&
		len(h.LoopThroats) == 0
}

// CheckHealth inspects the network and returns a HealthReport.
// Time: O(Np + Nt log Nt).
func (n *Network) CheckHealth() HealthReport {
	var h HealthReport
	for p := 0; p < n.np; p++ {
		if len(n.neighbors[p]) == 0 {
			h.IsolatedPores = append(h.IsolatedPores, p)
		}
	}

	comps := n.Components()
	if len(comps) > 1 {
		h.DisconnectedClusters = comps
		keep := largest(comps)
		for c, comp := range comps {
			if c != keep {
				h.TrimPores = append(h.TrimPores, comp...)
			}
		}
		sort.Ints(h.TrimPores)
	}

	groups := make(map[[2]int][]int, len(n.conns))
	var order [][2]int
	for t, c := range n.conns {
		if c[0] == c[1] {
			h.LoopThroats = append(h.LoopThroats, t)
			continue
		}
		key := c
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], t)
	}
	for _, key := range order {
		if ts := groups[key]; len(ts) > 1 {
			h.DuplicateThroats = append(h.DuplicateThroats, ts)
		}
	}

	return h
}

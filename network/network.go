// Package network holds the read-only pore/throat graph consumed by the
// transport core: Np pores, Nt throats, and the two pore indices each
// throat joins.
//
// A Network is validated once at construction (endpoint range, loops,
// duplicates) and never mutated afterwards, so one value can be shared by
// any number of algorithms.
package network

import (
	"fmt"

	"github.com/katalvlaran/poreflow/matrix"
)

// Network is an undirected pore network.
type Network struct {
	np        int
	conns     [][2]int
	neighbors [][]int // sorted adjacent pores per pore
	opts      options
}

// New validates conns against np and returns a Network.
// Stage 1: np > 0.
// Stage 2: build the structural adjacency (range, loop and duplicate checks
// live in matrix.Adjacency).
// Stage 3: cache neighbor lists for traversal.
//
// The conns slice is copied; later edits by the caller have no effect.
// Errors: ErrNoPores, ErrInvalidTopology.
// Complexity: O(Np + Nt log Nt).
func New(np int, conns [][2]int, opts ...Option) (*Network, error) {
	if np <= 0 {
		return nil, networkErrorf("New", ErrNoPores)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	adj, err := matrix.Adjacency(np, conns, nil, o.matrixOptions()...)
	if err != nil {
		return nil, networkErrorf("New", err)
	}

	own := make([][2]int, len(conns))
	copy(own, conns)

	nb := make([][]int, np)
	adj.DoNonZero(func(i, j int, _ float64) {
		nb[i] = append(nb[i], j) // DoNonZero visits columns in ascending order
	})

	return &Network{np: np, conns: own, neighbors: nb, opts: o}, nil
}

// Np returns the number of pores.
func (n *Network) Np() int { return n.np }

// Nt returns the number of throats.
func (n *Network) Nt() int { return len(n.conns) }

// Conns returns the throat endpoint list. The slice is shared; callers
// must treat it as read-only.
func (n *Network) Conns() [][2]int { return n.conns }

// Conn returns the endpoints of throat t.
func (n *Network) Conn(t int) ([2]int, error) {
	if t < 0 || t >= len(n.conns) {
		return [2]int{}, networkErrorf(fmt.Sprintf("Conn(%d)", t), ErrUnknownThroat)
	}

	return n.conns[t], nil
}

// Neighbors returns the pores sharing a throat with p, ascending.
func (n *Network) Neighbors(p int) ([]int, error) {
	if p < 0 || p >= n.np {
		return nil, networkErrorf(fmt.Sprintf("Neighbors(%d)", p), ErrUnknownPore)
	}
	out := make([]int, len(n.neighbors[p]))
	copy(out, n.neighbors[p])

	return out, nil
}

// Pores returns 0..Np-1.
func (n *Network) Pores() []int {
	ps := make([]int, n.np)
	for i := range ps {
		ps[i] = i
	}

	return ps
}

// Throats returns 0..Nt-1.
func (n *Network) Throats() []int {
	ts := make([]int, len(n.conns))
	for i := range ts {
		ts[i] = i
	}

	return ts
}

// ValidatePores checks that every index lies in [0, Np).
func (n *Network) ValidatePores(pores []int) error {
	for _, p := range pores {
		if p < 0 || p >= n.np {
			return networkErrorf(fmt.Sprintf("pore %d", p), ErrUnknownPore)
		}
	}

	return nil
}

// ValidateThroats checks that every index lies in [0, Nt).
func (n *Network) ValidateThroats(throats []int) error {
	for _, t := range throats {
		if t < 0 || t >= len(n.conns) {
			return networkErrorf(fmt.Sprintf("throat %d", t), ErrUnknownThroat)
		}
	}

	return nil
}

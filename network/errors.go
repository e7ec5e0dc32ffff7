package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/poreflow/matrix"
)

var (
	// ErrInvalidTopology indicates a throat list that cannot describe a
	// pore network. It aliases the matrix sentinel so a single errors.Is
	// check covers failures raised by either package.
	ErrInvalidTopology = matrix.ErrInvalidTopology

	// ErrNoPores indicates a network constructed with Np <= 0.
	ErrNoPores = errors.New("network: pore count must be > 0")

	// ErrUnknownPore indicates a pore index outside [0, Np).
	ErrUnknownPore = errors.New("network: pore index out of range")

	// ErrUnknownThroat indicates a throat index outside [0, Nt).
	ErrUnknownThroat = errors.New("network: throat index out of range")
)

// networkErrorf wraps err with a call-site tag.
func networkErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

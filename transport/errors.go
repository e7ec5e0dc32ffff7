package transport

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/poreflow/boundary"
	"github.com/katalvlaran/poreflow/solver"
)

var (
	// ErrNilNetwork indicates New was called without a network.
	ErrNilNetwork = errors.New("transport: network is nil")

	// ErrIncompleteConfiguration indicates a missing phase, quantity or
	// conductance.
	ErrIncompleteConfiguration = errors.New("transport: incomplete configuration")

	// ErrConflictingArguments indicates mutually exclusive arguments, such
	// as both pores and throats (or neither) given to Rate, or both rates
	// and a total given to SetRateBC. It is boundary.ErrConflictingArguments.
	ErrConflictingArguments = boundary.ErrConflictingArguments

	// ErrDimensionMismatch indicates x0 or a property array of the wrong
	// length.
	ErrDimensionMismatch = errors.New("transport: dimension mismatch")

	// ErrNotSolved indicates a result was requested before Run succeeded.
	ErrNotSolved = errors.New("transport: no solution available, call Run first")

	// ErrSolverFailed indicates a solver returned a non-success exit code.
	ErrSolverFailed = errors.New("transport: solver failed")

	// ErrInvalidMode indicates an unknown RateMode.
	ErrInvalidMode = errors.New("transport: invalid rate mode")
)

// SolverError carries the exit code of a failed solve.
type SolverError struct {
	Code solver.ExitCode
	Err  error // error returned by the solver, if any
}

// Error implements error.
func (e *SolverError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v (%s): %v", ErrSolverFailed, e.Code, e.Err)
	}

	return fmt.Sprintf("%v (%s)", ErrSolverFailed, e.Code)
}

// Unwrap exposes ErrSolverFailed and the solver's own error.
func (e *SolverError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrSolverFailed, e.Err}
	}

	return []error{ErrSolverFailed}
}

// transportErrorf wraps err with a call-site tag.
func transportErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

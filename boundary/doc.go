// Package boundary stores per-pore boundary conditions for a transport
// algorithm.
//
// Each pore carries at most one condition:
//
//	Value: a fixed quantity (Dirichlet), e.g. an inlet pressure.
//	Rate:  a fixed injection (Neumann/source), positive into the pore.
//
// Writes come in two modes. Merge adds to what is already there and
// overwrites conditions of the same kind, but leaves pores holding the
// other kind untouched: they are skipped, logged at Warn level and returned
// to the caller. Overwrite first clears every condition of the targeted
// kind and then applies the same skip rule against the other kind.
//
// Every write validates pores and values before touching the store, so a
// failed call leaves it unchanged.
//
// Unset entries are NaN internally; Values and Rates expose that layout so
// the assembler can scan with math.IsNaN.
package boundary

package boundary

import (
	"fmt"
	"strings"
)

// Kind names a boundary-condition type.
type Kind int

const (
	// None marks a pore without a condition (returned by Store.Kind only).
	None Kind = iota
	// Value is a fixed-quantity (Dirichlet) condition.
	Value
	// Rate is a fixed-injection (Neumann) condition.
	Rate
	// All selects both kinds; valid for Remove only.
	All
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Value:
		return "value"
	case Rate:
		return "rate"
	case All:
		return "all"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// other returns the complementary kind of Value or Rate.
func (k Kind) other() Kind {
	if k == Value {
		return Rate
	}

	return Value
}

// ParseKind converts "value", "rate" or "all" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "value":
		return Value, nil
	case "rate":
		return Rate, nil
	case "all", "":
		return All, nil
	}

	return None, boundaryErrorf(fmt.Sprintf("ParseKind(%q)", s), ErrInvalidKind)
}

// Mode controls how a write interacts with existing conditions.
type Mode int

const (
	// Merge keeps existing conditions and overwrites same-kind pores.
	Merge Mode = iota
	// Overwrite clears every condition of the targeted kind first.
	Overwrite
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Merge:
		return "merge"
	case Overwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "merge" or "overwrite" (case-insensitive); "" is Merge.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "merge", "":
		return Merge, nil
	case "overwrite":
		return Overwrite, nil
	}

	return Merge, boundaryErrorf(fmt.Sprintf("ParseMode(%q)", s), ErrInvalidMode)
}

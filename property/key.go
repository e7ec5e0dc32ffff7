package property

import (
	"fmt"
	"strings"
)

// Element is the network element a prop is defined on.
type Element int

const (
	// Pore props hold one entry per pore.
	Pore Element = iota
	// Throat props hold one entry per throat (or two, directionally).
	Throat
)

// String implements fmt.Stringer.
func (e Element) String() string {
	switch e {
	case Pore:
		return "pore"
	case Throat:
		return "throat"
	default:
		return fmt.Sprintf("Element(%d)", int(e))
	}
}

// Key names a prop.
type Key struct {
	Element Element
	Name    string
}

// PoreKey returns Key{Pore, name}.
func PoreKey(name string) Key { return Key{Element: Pore, Name: name} }

// ThroatKey returns Key{Throat, name}.
func ThroatKey(name string) Key { return Key{Element: Throat, Name: name} }

// String renders "pore.<name>" or "throat.<name>".
func (k Key) String() string { return k.Element.String() + "." + k.Name }

// Base returns the key reduced to its first name segment, so
// "throat.conductance.x" and "throat.conductance" share one base.
func (k Key) Base() Key {
	if i := strings.IndexByte(k.Name, '.'); i >= 0 {
		return Key{Element: k.Element, Name: k.Name[:i]}
	}

	return k
}

// ParseKey converts "pore.<name>" / "throat.<name>" into a Key.
func ParseKey(s string) (Key, error) {
	prefix, name, ok := strings.Cut(s, ".")
	if !ok || name == "" {
		return Key{}, propertyErrorf(fmt.Sprintf("ParseKey(%q)", s), ErrInvalidKey)
	}
	switch prefix {
	case "pore":
		return PoreKey(name), nil
	case "throat":
		return ThroatKey(name), nil
	}

	return Key{}, propertyErrorf(fmt.Sprintf("ParseKey(%q)", s), ErrInvalidKey)
}

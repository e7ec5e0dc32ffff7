// Package property stores named per-pore and per-throat arrays for the
// objects that feed a transport algorithm: the phase, geometries and
// physics.
//
// Keys are typed (Key{Element, Name}) and rendered as "pore.<name>" or
// "throat.<name>". Every write is length-checked against the owning
// object: pore arrays hold Np entries, throat arrays Nt (or 2·Nt for
// directional throat values stored row-major).
//
// A prop may be produced by a model. Models declare the props they read,
// which builds the object's dependency graph; Regenerate runs models in
// dependency order and UpdateQuantity refreshes everything downstream of
// a changed prop.
//
// Project ties a phase to the geometries and physics that cover the
// network and answers the questions the health diagnostics ask: which
// pores and throats are covered by no geometry or by more than one, and
// which objects belong together.
package property

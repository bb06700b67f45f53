// Package netlist defines the gate-level netlist model the placement and
// routing engine operates on, and ingests it from a synthesized JSON
// document.
//
// A Netlist is immutable once built: Gates is a dense, 0-based sequence
// (the index IS the gate id), NetToGates maps a net id to the ordered
// sequence of gate ids that reference it as an input, output, or clock
// terminal, and GateToNets is the reverse mapping, derived by inversion.
//
// Ingestion performs one additional, one-time transformation: NOR-input
// equivalence folding. The two inputs of every NOR cell are, in the
// target technology, a single physical inverter input, so their net ids
// are unioned into equivalence classes and every occurrence of a net id
// is rewritten to its class's minimum id before a Netlist is ever
// returned to a caller.
package netlist

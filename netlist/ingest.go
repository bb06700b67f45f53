package netlist

import (
	"encoding/json"
	"fmt"
	"sort"
)

// rawDocument mirrors the external synthesized-JSON shape (spec §6):
//
//	{"modules": {"<mod>": {"cells": {...}, "ports": {...}}}}
//
// encoding/json is the only JSON decoder used anywhere in this engine;
// no JSON library appears in the retrieved corpus for this concern (see
// DESIGN.md), so the standard library is the grounded choice here.
type rawDocument struct {
	Modules map[string]rawModule `json:"modules"`
}

type rawModule struct {
	Cells map[string]rawCell `json:"cells"`
	Ports map[string]rawPort `json:"ports"`
}

type rawCell struct {
	Type        string         `json:"type"`
	Connections map[string][]int `json:"connections"`
}

type rawPort struct {
	Direction string `json:"direction"`
	Bits      []int  `json:"bits"`
}

// Ingest parses a synthesized-netlist JSON document and returns the
// Netlist for the named module, with NOR-input equivalence folding
// already applied. Any malformed input, unknown cell type, or missing
// expected pin field is a fatal, typed error; no partial Netlist is ever
// returned alongside a non-nil error.
func Ingest(data []byte, module string) (*Netlist, error) {
	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	mod, ok := doc.Modules[module]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, module)
	}

	cellNames := sortedKeys(mod.Cells)
	portNames := sortedKeys(mod.Ports)

	// Pass 1: collect NOR (A[0], B[0]) pairs and union them. This must
	// run before any net id is rewritten, since it operates on the raw
	// connection lists.
	uf := newNetUnionFind()
	for _, name := range cellNames {
		cell := mod.Cells[name]
		if cell.Type != "NOR" {
			continue
		}
		a, ok := cell.Connections["A"]
		if !ok || len(a) == 0 {
			return nil, fmt.Errorf("%w: cell %q missing pin A", ErrMissingPin, name)
		}
		b, ok := cell.Connections["B"]
		if !ok || len(b) == 0 {
			return nil, fmt.Errorf("%w: cell %q missing pin B", ErrMissingPin, name)
		}
		uf.union(a[0], b[0])
	}

	canon := func(net int) int { return uf.find(net) }

	gates := make([]Gate, 0, len(cellNames)+len(portNames))
	netToGates := make(map[int][]int)

	addNetRefs := func(gateID int, nets []int) {
		seen := make(map[int]bool, len(nets))
		for _, net := range nets {
			if seen[net] {
				continue
			}
			seen[net] = true
			netToGates[net] = append(netToGates[net], gateID)
		}
	}

	// Pass 2: extract gates from cells, rewriting every net id to its
	// canonical (minimum) class representative.
	for _, name := range cellNames {
		cell := mod.Cells[name]

		gateType, err := cellType(cell.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: cell %q has type %q", ErrUnknownCellType, name, cell.Type)
		}

		var inputs, outputs, clkInputs []int
		if gateType == DFF {
			d, ok := cell.Connections["D"]
			if !ok {
				return nil, fmt.Errorf("%w: cell %q missing pin D", ErrMissingPin, name)
			}
			q, ok := cell.Connections["Q"]
			if !ok {
				return nil, fmt.Errorf("%w: cell %q missing pin Q", ErrMissingPin, name)
			}
			c, ok := cell.Connections["C"]
			if !ok {
				return nil, fmt.Errorf("%w: cell %q missing pin C", ErrMissingPin, name)
			}
			inputs = canonicalize(d, canon)
			outputs = canonicalize(q, canon)
			clkInputs = canonicalize(c, canon)
		} else {
			a, ok := cell.Connections["A"]
			if !ok {
				return nil, fmt.Errorf("%w: cell %q missing pin A", ErrMissingPin, name)
			}
			y, ok := cell.Connections["Y"]
			if !ok {
				return nil, fmt.Errorf("%w: cell %q missing pin Y", ErrMissingPin, name)
			}
			if cell.Type == "NOR" {
				b, ok := cell.Connections["B"]
				if !ok {
					return nil, fmt.Errorf("%w: cell %q missing pin B", ErrMissingPin, name)
				}
				a = append(append([]int{}, a...), b...)
			}
			inputs = canonicalize(a, canon)
			outputs = canonicalize(y, canon)
		}

		gateID := len(gates)
		gates = append(gates, Gate{
			Name:      name,
			Type:      gateType,
			Inputs:    inputs,
			Outputs:   outputs,
			ClkInputs: clkInputs,
		})

		addNetRefs(gateID, inputs)
		addNetRefs(gateID, outputs)
		addNetRefs(gateID, clkInputs)
	}

	// Ports become one-terminal gates: IN publishes its bits as outputs,
	// OUT publishes its bits as inputs.
	for _, name := range portNames {
		port := mod.Ports[name]

		var gateType GateType
		switch port.Direction {
		case "input":
			gateType = IN
		case "output":
			gateType = OUT
		default:
			return nil, fmt.Errorf("%w: port %q has direction %q", ErrUnknownPortDirection, name, port.Direction)
		}

		if len(port.Bits) == 0 {
			return nil, fmt.Errorf("%w: port %q", ErrMissingPortBits, name)
		}
		bits := canonicalize(port.Bits, canon)

		g := Gate{Name: name, Type: gateType}
		if gateType == IN {
			g.Outputs = bits
		} else {
			g.Inputs = bits
		}

		gateID := len(gates)
		gates = append(gates, g)
		addNetRefs(gateID, bits)
	}

	return New(gates, netToGates), nil
}

// cellType maps a yosys-style cell type string to the internal
// GateType, collapsing NOR into NOT (spec §4.1): the two are physically
// the same inverter cell once NOR-input folding has run.
func cellType(yosysType string) (GateType, error) {
	switch yosysType {
	case "NOT", "NOR":
		return NOT, nil
	case "BUFF":
		return BUFF, nil
	case "DFF":
		return DFF, nil
	default:
		return 0, ErrUnknownCellType
	}
}

// canonicalize rewrites every net id in nets through canon, preserving
// order (first-seen order is significant for routing's source selection).
func canonicalize(nets []int, canon func(int) int) []int {
	out := make([]int, len(nets))
	for i, n := range nets {
		out[i] = canon(n)
	}
	return out
}

// sortedKeys returns the keys of a string-keyed map in ascending order,
// so gate ids are assigned deterministically regardless of Go's
// randomized map iteration order — matching the teacher's convention of
// always returning vertex/edge ids in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

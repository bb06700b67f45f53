package netlist

import "github.com/katalvlaran/roadblock/geom"

// GateType enumerates the cell kinds the engine understands. IN and OUT
// are ports (pinned to the grid perimeter by placement); the rest are
// logic gates placed in the grid interior.
type GateType int

const (
	// BUFF is a single-input, single-output buffer cell.
	BUFF GateType = iota
	// NOT is a single-input, single-output inverter. NOR cells are folded
	// into NOT during ingestion (see NOR-equivalence folding).
	NOT
	// DFF is a clocked D flip-flop with D/Q/C terminals.
	DFF
	// IN is a top-level module input port.
	IN
	// OUT is a top-level module output port.
	OUT
)

// String renders the GateType's name, matching the vocabulary used in the
// source JSON (NOT/NOR collapse to "NOT").
func (t GateType) String() string {
	switch t {
	case BUFF:
		return "BUFF"
	case NOT:
		return "NOT"
	case DFF:
		return "DFF"
	case IN:
		return "IN"
	case OUT:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// footprintNot is the only non-1x1 footprint: a NOT gate occupies a
// vertical 1x2 tile (in_coords at the top, out_coords one tile below).
var footprintNot = geom.Point2{X: 1, Y: 2}

// footprintUnit is the 1x1 footprint every other gate type occupies.
var footprintUnit = geom.Point2{X: 1, Y: 1}

// Gate is one placed element of the netlist: a logic cell or a port.
//
// Inputs, Outputs, and ClkInputs hold net ids in first-seen order (not
// deduplicated sets) because routing needs a stable "first point is the
// source" rule per net; membership, not order within a single gate's own
// list, is what the placement/routing invariants care about.
type Gate struct {
	Name      string
	Type      GateType
	Inputs    []int
	Outputs   []int
	ClkInputs []int
}

// IsPort reports whether g is a top-level IN or OUT port (pinned to the
// grid perimeter) as opposed to an interior logic gate.
func (g Gate) IsPort() bool {
	return g.Type == IN || g.Type == OUT
}

// Footprint returns the tile footprint g occupies: 1x2 for NOT, 1x1 for
// everything else.
func (g Gate) Footprint() geom.Point2 {
	if g.Type == NOT {
		return footprintNot
	}
	return footprintUnit
}

// InCoords returns the footprint-relative offset of g's input terminal.
// Every gate type has an input-side terminal at the footprint origin.
func (g Gate) InCoords() geom.Point2 {
	return geom.Point2{X: 0, Y: 0}
}

// OutCoords returns the footprint-relative offset of g's output
// terminal: one tile below the origin for NOT (its footprint is 1x2),
// at the origin for every other type.
func (g Gate) OutCoords() geom.Point2 {
	if g.Type == NOT {
		return geom.Point2{X: 0, Y: 1}
	}
	return geom.Point2{X: 0, Y: 0}
}

// ClkCoords returns the footprint-relative offset of g's clock terminal
// and whether g has one at all (only DFF does).
func (g Gate) ClkCoords() (geom.Point2, bool) {
	if g.Type != DFF {
		return geom.Point2{}, false
	}
	return geom.Point2{X: 0, Y: 0}, true
}

// HasNetAsInput reports whether net is present in g.Inputs.
func (g Gate) HasNetAsInput(net int) bool { return containsInt(g.Inputs, net) }

// HasNetAsOutput reports whether net is present in g.Outputs.
func (g Gate) HasNetAsOutput(net int) bool { return containsInt(g.Outputs, net) }

// HasNetAsClk reports whether net is present in g.ClkInputs.
func (g Gate) HasNetAsClk(net int) bool { return containsInt(g.ClkInputs, net) }

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// Netlist is the immutable, post-folding gate-level circuit description.
//
// Gates is dense and 0-based: a gate's index within Gates IS its gate id
// used everywhere else in the engine (placement, cost cache, routing).
// NetToGates and GateToNets are kept reverse-consistent at construction
// time and never mutated afterward.
type Netlist struct {
	Gates      []Gate
	NetToGates map[int][]int
	GateToNets map[int][]int
}

// New builds a Netlist from a dense gate sequence and a net-to-gates
// mapping, deriving the reverse GateToNets mapping by inversion. Callers
// are expected to have already applied NOR-equivalence folding (Ingest
// does this automatically); New itself performs no folding.
func New(gates []Gate, netToGates map[int][]int) *Netlist {
	gateToNets := make(map[int][]int, len(gates))
	for net, gateIDs := range netToGates {
		for _, gid := range gateIDs {
			gateToNets[gid] = append(gateToNets[gid], net)
		}
	}

	return &Netlist{
		Gates:      gates,
		NetToGates: netToGates,
		GateToNets: gateToNets,
	}
}

// NumGates returns the number of gates (including ports) in the netlist.
func (n *Netlist) NumGates() int { return len(n.Gates) }

// Stats summarizes gate/net/port counts, used by the CLI's progress log.
type Stats struct {
	Gates int
	Ports int
	Nets  int
}

// Stats computes a Stats summary in O(len(Gates)).
func (n *Netlist) Stats() Stats {
	s := Stats{Gates: len(n.Gates), Nets: len(n.NetToGates)}
	for _, g := range n.Gates {
		if g.IsPort() {
			s.Ports++
		}
	}
	return s
}

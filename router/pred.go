package router

import "github.com/katalvlaran/roadblock/geom"

// Pred records, for one cell of a single net's wavefront expansion,
// which neighboring direction its predecessor lies in. The zero value,
// PredUnset, marks a cell the current expansion has not reached yet —
// REDESIGN FLAGS calls for exactly this: a dense array with an UNSET
// sentinel rather than a nullable enum, which falls out naturally here
// since Go zero-values an unwritten Pred to 0.
type Pred uint8

const (
	// PredUnset marks a cell the wavefront has not yet committed a
	// predecessor for. Must be the zero value.
	PredUnset Pred = iota
	// PredRoot marks a cell that is itself a source of the current
	// wavefront (the net's true source, or a point already absorbed
	// into the growing trace).
	PredRoot
	PredN
	PredS
	PredE
	PredW
	PredUp
	PredDown
)

// delta returns the offset from a cell carrying this Pred to its
// predecessor: predecessor_loc = cell_loc + p.delta(). PredRoot and
// PredUnset have no meaningful delta and return the zero vector.
func (p Pred) delta() geom.Point3 {
	switch p {
	case PredN:
		return geom.Point3{X: 0, Y: -1, Z: 0}
	case PredS:
		return geom.Point3{X: 0, Y: 1, Z: 0}
	case PredE:
		return geom.Point3{X: 1, Y: 0, Z: 0}
	case PredW:
		return geom.Point3{X: -1, Y: 0, Z: 0}
	case PredUp:
		return geom.Point3{X: 0, Y: 0, Z: 1}
	case PredDown:
		return geom.Point3{X: 0, Y: 0, Z: -1}
	default:
		return geom.Point3{}
	}
}

// stepCost is the wavefront cost of moving in this direction: a layer
// change (PredUp/PredDown, a via) costs more than a planar step, biasing
// expansion toward fewer vias.
func (p Pred) stepCost() int {
	if p == PredUp || p == PredDown {
		return viaStepCost
	}
	return planarStepCost
}

const (
	planarStepCost = 1
	viaStepCost    = 3
)

// expansionDirs is the fixed order neighbors are considered in: each
// entry is the Pred label the NEIGHBOR will carry if admitted, chosen so
// that neighbor_loc = cell_loc - delta(label) places the neighbor such
// that stepping delta(label) from it returns to cell_loc (i.e. cell_loc
// is, correctly, the neighbor's predecessor once it is committed).
var expansionDirs = [...]Pred{PredN, PredS, PredE, PredW, PredUp, PredDown}

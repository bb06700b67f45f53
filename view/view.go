package view

import (
	"github.com/katalvlaran/roadblock/geom"
	"github.com/katalvlaran/roadblock/netlist"
	"github.com/katalvlaran/roadblock/placement"
	"github.com/katalvlaran/roadblock/router"
)

// View is a non-mutating accessor over one placement (and, once routing has
// run, one routing session). It holds no state of its own beyond the two
// borrowed pointers; every method reads through them and returns a fresh
// value, never a reference the caller could use to mutate the source.
type View struct {
	grid    *placement.GatesGrid
	session *router.Session
}

// New builds a View over grid. session may be nil if routing has not run
// yet, in which case RouteAt and NetTrace report not-found for everything.
func New(grid *placement.GatesGrid, session *router.Session) *View {
	return &View{grid: grid, session: session}
}

// GateAt reports the gate occupying pos, if any, along with that gate's
// placed footprint-origin position. Out-of-bounds or empty tiles report
// (netlist.Gate{}, geom.Point2{}, false).
func (v *View) GateAt(pos geom.Point2) (netlist.Gate, geom.Point2, bool) {
	gid, ok := v.grid.GateAt(pos)
	if !ok {
		return netlist.Gate{}, geom.Point2{}, false
	}
	origin, ok := v.grid.GetPos(gid)
	if !ok {
		return netlist.Gate{}, geom.Point2{}, false
	}
	return v.grid.Netlist().Gates[gid], origin, true
}

// PositionOf returns the footprint-origin position of gateID, or false if
// gateID is out of range or not yet placed.
func (v *View) PositionOf(gateID int) (geom.Point2, bool) {
	if gateID < 0 || gateID >= v.grid.Netlist().NumGates() {
		return geom.Point2{}, false
	}
	return v.grid.GetPos(gateID)
}

// SelectionBounds computes the axis-aligned bounding box (inclusive
// min/max corners, covering each gate's full footprint) of the given gate
// ids. Unplaced or out-of-range ids are skipped. Returns false if none of
// the given ids resolve to a placed gate.
func (v *View) SelectionBounds(gateIDs []int) (min, max geom.Point2, ok bool) {
	nl := v.grid.Netlist()
	first := true
	for _, gid := range gateIDs {
		if gid < 0 || gid >= nl.NumGates() {
			continue
		}
		origin, placed := v.grid.GetPos(gid)
		if !placed {
			continue
		}
		footprint := nl.Gates[gid].Footprint()
		corner := origin.Add(footprint).Sub(geom.Point2{X: 1, Y: 1})

		if first {
			min, max = origin, corner
			first = false
			continue
		}
		if origin.X < min.X {
			min.X = origin.X
		}
		if origin.Y < min.Y {
			min.Y = origin.Y
		}
		if corner.X > max.X {
			max.X = corner.X
		}
		if corner.Y > max.Y {
			max.Y = corner.Y
		}
	}
	return min, max, !first
}

// RouteAt returns the net id routed through p on the current routing
// session, or false if no session has run yet or p is unrouted.
func (v *View) RouteAt(p geom.Point3) (int, bool) {
	if v.session == nil {
		return 0, false
	}
	id := v.session.Grid.RouteAt(p)
	if id < 0 {
		return 0, false
	}
	return id, true
}

// NetTrace returns the full set of trace points making up net's route, or
// false if no session has run yet or net was never routed.
func (v *View) NetTrace(net int) ([]geom.Point3, bool) {
	if v.session == nil {
		return nil, false
	}
	trace, ok := v.session.Routes[net]
	return trace, ok
}

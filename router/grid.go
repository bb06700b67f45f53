package router

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadblock/geom"
)

// emptyRoute marks a router_grid tile as unrouted.
const emptyRoute = -1

// Grid is the router's 3-D state: a route-id array and a companion
// predecessor array, both max_layers × dim.x × dim.y, indexed [z][x][y].
// A Grid is created once per route session and reused across every net
// in that session; RouteNet resets the predecessor array (not the route
// array) between nets implicitly via resetPred at the start of each.
type Grid struct {
	dim       geom.Point2
	maxLayers int
	route     [][][]int
	pred      [][][]Pred
}

// NewGrid allocates a Grid sized maxLayers x dim.x x dim.y, with every
// route tile EMPTY and every predecessor tile PredUnset.
func NewGrid(dim geom.Point2, maxLayers int) (*Grid, error) {
	if maxLayers <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayers, maxLayers)
	}

	g := &Grid{dim: dim, maxLayers: maxLayers}
	g.route = make([][][]int, maxLayers)
	g.pred = make([][][]Pred, maxLayers)
	for z := 0; z < maxLayers; z++ {
		g.route[z] = make([][]int, dim.X)
		g.pred[z] = make([][]Pred, dim.X)
		for x := 0; x < dim.X; x++ {
			g.route[z][x] = make([]int, dim.Y)
			g.pred[z][x] = make([]Pred, dim.Y)
			for y := 0; y < dim.Y; y++ {
				g.route[z][x][y] = emptyRoute
			}
		}
	}
	return g, nil
}

// Dim returns the grid's (x, y) extent.
func (g *Grid) Dim() geom.Point2 { return g.dim }

// MaxLayers returns the grid's layer count.
func (g *Grid) MaxLayers() int { return g.maxLayers }

// RouteAt returns the route id occupying p, or emptyRoute if p is empty.
func (g *Grid) RouteAt(p geom.Point3) int { return g.route[p.Z][p.X][p.Y] }

// SetRoute marks p as occupied by routeID directly, bypassing wavefront
// expansion. Used to seed pre-existing obstructions (a previously
// committed route a later net must route around).
func (g *Grid) SetRoute(p geom.Point3, routeID int) { g.route[p.Z][p.X][p.Y] = routeID }

// Reset clears every route tile back to EMPTY, implementing the rip-up
// loop's global reset. Used between outer routing attempts, never
// within a single net's expansion.
func (g *Grid) Reset() {
	for z := range g.route {
		for x := range g.route[z] {
			for y := range g.route[z][x] {
				g.route[z][x][y] = emptyRoute
			}
		}
	}
}

// resetPred clears the entire predecessor array to PredUnset, then
// stamps PredRoot at every point in trace. Called once at the start of
// RouteNet and again after each target absorption, so the growing trace
// becomes a fresh multi-source root set for the cells still to reach.
func (g *Grid) resetPred(trace []geom.Point3) {
	for z := range g.pred {
		for x := range g.pred[z] {
			for y := range g.pred[z][x] {
				g.pred[z][x][y] = PredUnset
			}
		}
	}
	for _, t := range trace {
		g.pred[t.Z][t.X][t.Y] = PredRoot
	}
}

// backtrace walks from c back to a PredRoot cell, stamping every
// visited cell into the route array with routeID and collecting the
// newly-discovered trace points (the root cell itself is not
// re-collected, since it is already part of the existing trace).
func (g *Grid) backtrace(c *wavefrontItem, routeID int) []geom.Point3 {
	loc := c.loc
	pred := c.pred

	g.route[loc.Z][loc.X][loc.Y] = routeID
	newTrace := []geom.Point3{loc}

	for pred != PredRoot {
		next := loc.Add(pred.delta())
		pred = g.pred[next.Z][next.X][next.Y]
		if pred != PredRoot {
			newTrace = append(newTrace, next)
		}
		g.route[next.Z][next.X][next.Y] = routeID
		loc = next
	}

	return newTrace
}

// RouteNet routes one net's points (points[0] is the source, the rest
// are targets, absorbed in whichever order the wavefront reaches them) as
// routeID, via Lee-style wavefront
// expansion with successive-absorption Steiner growth. Returns the full
// set of trace points making up the finished route and true on success;
// on failure (wavefront exhausted with targets remaining), returns
// whatever partial trace had been committed and false — the caller is
// responsible for ripping up router_grid cells with this routeID before
// retrying.
//
// A net with fewer than two points has nothing to route and trivially
// succeeds with an empty trace (a single isolated terminal, or no
// terminal at all — both can arise from a net that only appears as one
// gate's unused pin slot).
func (g *Grid) RouteNet(routeID int, points []geom.Point3) ([]geom.Point3, bool) {
	if len(points) < 2 {
		return nil, true
	}

	source := points[0]
	targets := append([]geom.Point3(nil), points[1:]...)

	trace := []geom.Point3{source}
	g.resetPred(trace)

	pq := &wavefrontPQ{}
	heap.Init(pq)
	seq := 0
	enqueued := map[geom.Point3]bool{}
	push := func(loc geom.Point3, cost int, pred Pred) {
		heap.Push(pq, &wavefrontItem{loc: loc, cost: cost, pred: pred, seq: seq})
		seq++
		enqueued[loc] = true
	}
	reseed := func() {
		pq = &wavefrontPQ{}
		heap.Init(pq)
		enqueued = map[geom.Point3]bool{}
		for _, t := range trace {
			push(t, 0, PredRoot)
		}
	}
	push(source, 0, PredRoot)

	removeTarget := func(loc geom.Point3) bool {
		for i, t := range targets {
			if t == loc {
				targets = append(targets[:i:i], targets[i+1:]...)
				return true
			}
		}
		return false
	}

	for pq.Len() > 0 {
		c := heap.Pop(pq).(*wavefrontItem)
		delete(enqueued, c.loc)

		if removeTarget(c.loc) {
			trace = append(trace, g.backtrace(c, routeID)...)
			g.resetPred(trace)
			if len(targets) == 0 {
				return trace, true
			}
			reseed()
			continue
		}

		for _, dir := range expansionDirs {
			nloc := c.loc.Sub(dir.delta())
			if !nloc.InBounds(g.dim, g.maxLayers) {
				continue
			}
			if g.route[nloc.Z][nloc.X][nloc.Y] != emptyRoute {
				continue
			}
			if g.pred[nloc.Z][nloc.X][nloc.Y] != PredUnset {
				continue
			}
			if enqueued[nloc] {
				continue
			}
			push(nloc, c.cost+dir.stepCost(), dir)
		}
		g.pred[c.loc.Z][c.loc.X][c.loc.Y] = c.pred
	}

	return trace, false
}

package placement

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/roadblock/geom"
	"github.com/katalvlaran/roadblock/internal/rlog"
	"github.com/katalvlaran/roadblock/internal/rng"
	"github.com/katalvlaran/roadblock/netlist"
)

// posEntry records one gate's current placement: its footprint origin
// and whether it has been placed at all (ports and logic gates are all
// placed during New; this flag only goes false transiently, inside a
// single Mutate call, between freeing a gate and re-placing it).
type posEntry struct {
	pos    geom.Point2
	placed bool
}

// GatesGrid is the dense 2-D occupancy grid a Placer mutates. Port gates
// (IN/OUT) are pinned to perimeter tiles assigned in perimeterCells
// order at construction and never move again; logic gates occupy
// interior tiles and are the only gates Mutate ever touches.
//
// Grounded on grid.py's GatesGrid: dense occupancy array, gate_pos
// lookup, PLACE_RETRY_COUNT-bounded random placement, and the
// begin/end/commit/rollback coordination with its cost cache (here
// CostCache, owned but not back-referenced — see costcache.go).
type GatesGrid struct {
	nl  *netlist.Netlist
	dim geom.Point2
	rng *rand.Rand

	occupancy [][]int // occupancy[x][y] = gate id, or empty
	gatePos   []posEntry

	nonPortGateIDs []int
	retryCount     int

	cost *CostCache
	log  *rlog.Logger
}

// New builds a GatesGrid for nl sized dim, placing every port at a
// perimeter tile (in perimeterCells order) and every logic gate at a
// uniformly random free interior tile. Returns ErrInvalidDim if dim
// cannot host at least one interior tile, or ErrGridExhausted if a port
// runs out of perimeter slots or a logic gate exhausts its placement
// retry budget.
func New(nl *netlist.Netlist, dim geom.Point2, opts ...Option) (*GatesGrid, error) {
	if dim.X < 3 || dim.Y < 3 {
		return nil, fmt.Errorf("%w: %v (need >= 3x3)", ErrInvalidDim, dim)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	occupancy := make([][]int, dim.X)
	for x := range occupancy {
		occupancy[x] = make([]int, dim.Y)
		for y := range occupancy[x] {
			occupancy[x][y] = empty
		}
	}

	g := &GatesGrid{
		nl:         nl,
		dim:        dim,
		rng:        rng.FromSeed(o.seed),
		occupancy:  occupancy,
		gatePos:    make([]posEntry, len(nl.Gates)),
		retryCount: o.placeRetryCount,
		log:        o.log,
	}

	pins := perimeterCells(dim)
	pinIdx := 0

	for gid, gate := range nl.Gates {
		if gate.IsPort() {
			if pinIdx >= len(pins) {
				g.log.Error("perimeter exhausted", zap.String("port", gate.Name))
				return nil, fmt.Errorf("%w: no perimeter slot left for port %q", ErrGridExhausted, gate.Name)
			}
			g.fill(gid, pins[pinIdx])
			g.log.Debug("port placed", zap.String("name", gate.Name), zap.Int("gate_id", gid))
			pinIdx++
			continue
		}

		g.nonPortGateIDs = append(g.nonPortGateIDs, gid)
		if !g.placeRandom(gid) {
			g.log.Error("grid exhausted placing gate", zap.String("gate", gate.Name), zap.Int("attempts", g.retryCount))
			return nil, fmt.Errorf("%w: no free interior tile for gate %q after %d attempts", ErrGridExhausted, gate.Name, g.retryCount)
		}
		g.log.Debug("gate placed", zap.String("name", gate.Name), zap.Int("gate_id", gid))
	}

	g.cost = NewCostCache(nl.NetToGates, nl.GateToNets, g.GetPos)
	g.log.Info("gatesgrid constructed",
		zap.Int("gates", len(nl.Gates)),
		zap.Int("dim_x", dim.X),
		zap.Int("dim_y", dim.Y),
		zap.Float64("initial_cost", g.cost.TotalCost()),
	)
	return g, nil
}

// Dim returns the grid's width/height.
func (g *GatesGrid) Dim() geom.Point2 { return g.dim }

// Netlist returns the netlist this grid places.
func (g *GatesGrid) Netlist() *netlist.Netlist { return g.nl }

// Cost returns the grid's current total HPWL cost.
func (g *GatesGrid) Cost() float64 { return g.cost.TotalCost() }

// GetPos returns gateID's footprint origin and whether it is currently
// placed. Satisfies the CostCache getPos callback signature.
func (g *GatesGrid) GetPos(gateID int) (geom.Point2, bool) {
	e := g.gatePos[gateID]
	return e.pos, e.placed
}

// GateAt returns the id of the gate occupying pos, if any. Out-of-bounds
// positions report false.
func (g *GatesGrid) GateAt(pos geom.Point2) (int, bool) {
	if !pos.InBounds(g.dim) {
		return 0, false
	}
	id := g.occupancy[pos.X][pos.Y]
	if id == empty {
		return 0, false
	}
	return id, true
}

// fits reports whether gate gid's footprint, anchored at pos, lies
// entirely within the grid interior (never on a perimeter tile) and over
// entirely empty tiles.
func (g *GatesGrid) fits(gid int, pos geom.Point2) bool {
	fp := g.nl.Gates[gid].Footprint()
	for dx := 0; dx < fp.X; dx++ {
		for dy := 0; dy < fp.Y; dy++ {
			p := geom.Point2{X: pos.X + dx, Y: pos.Y + dy}
			if !p.InBounds(g.dim) {
				return false
			}
			if isPerimeter(p, g.dim) {
				return false
			}
			if g.occupancy[p.X][p.Y] != empty {
				return false
			}
		}
	}
	return true
}

// fill stamps gate gid's footprint into the occupancy grid at pos and
// records its position. Caller must have already verified the tiles are
// free (fits, for interior placement) or are the intended perimeter pin.
func (g *GatesGrid) fill(gid int, pos geom.Point2) {
	fp := g.nl.Gates[gid].Footprint()
	for dx := 0; dx < fp.X; dx++ {
		for dy := 0; dy < fp.Y; dy++ {
			p := geom.Point2{X: pos.X + dx, Y: pos.Y + dy}
			g.occupancy[p.X][p.Y] = gid
		}
	}
	g.gatePos[gid] = posEntry{pos: pos, placed: true}
}

// free clears gate gid's footprint from the occupancy grid and marks it
// unplaced. No-op if gid is not currently placed.
func (g *GatesGrid) free(gid int) {
	e := g.gatePos[gid]
	if !e.placed {
		return
	}
	fp := g.nl.Gates[gid].Footprint()
	for dx := 0; dx < fp.X; dx++ {
		for dy := 0; dy < fp.Y; dy++ {
			p := geom.Point2{X: e.pos.X + dx, Y: e.pos.Y + dy}
			g.occupancy[p.X][p.Y] = empty
		}
	}
	g.gatePos[gid] = posEntry{}
}

// placeRandom attempts up to g.retryCount uniformly random interior
// origins for gid, stamping the first one that fits. Returns false if
// every attempt failed.
func (g *GatesGrid) placeRandom(gid int) bool {
	for attempt := 0; attempt < g.retryCount; attempt++ {
		pos := geom.Point2{X: g.rng.Intn(g.dim.X), Y: g.rng.Intn(g.dim.Y)}
		if g.fits(gid, pos) {
			g.fill(gid, pos)
			return true
		}
	}
	return false
}

// Mutate picks two distinct non-port gates uniformly at random, frees
// both, and independently re-places each at a new random interior tile
// (either may land on the other's old tile or elsewhere). Returns the
// two gate ids and their pre-mutation positions so UndoMutate can revert
// exactly. Returns ErrCorruptState if fewer than two non-port gates
// exist or a selected gate has no recorded position, and ErrGridExhausted
// if a re-placement attempt exhausts its retry budget (in which case the
// grid is left in its pre-mutation state).
func (g *GatesGrid) Mutate() (a int, oldA geom.Point2, b int, oldB geom.Point2, err error) {
	if len(g.nonPortGateIDs) < 2 {
		return 0, geom.Point2{}, 0, geom.Point2{}, fmt.Errorf("%w: fewer than two non-port gates", ErrCorruptState)
	}

	i := g.rng.Intn(len(g.nonPortGateIDs))
	j := i
	for attempt := 0; j == i && attempt < placeRetryCountDefault; attempt++ {
		j = g.rng.Intn(len(g.nonPortGateIDs))
	}
	if j == i {
		return 0, geom.Point2{}, 0, geom.Point2{}, fmt.Errorf("%w: could not pick two distinct gates", ErrCorruptState)
	}

	a, b = g.nonPortGateIDs[i], g.nonPortGateIDs[j]

	entryA, entryB := g.gatePos[a], g.gatePos[b]
	if !entryA.placed || !entryB.placed {
		return 0, geom.Point2{}, 0, geom.Point2{}, fmt.Errorf("%w: gate expected placed has no position", ErrCorruptState)
	}
	oldA, oldB = entryA.pos, entryB.pos
	g.log.Debug("mutate begin", zap.Int("gate_a", a), zap.Int("gate_b", b))

	g.cost.BeginMutation([]int{a, b})

	for _, gid := range []int{a, b} {
		g.cost.BeginGateMove(gid)
		g.free(gid)
		if !g.placeRandom(gid) {
			// Whichever of a/b already landed at a new tile, clear it
			// before restoring both to their pre-mutation positions —
			// free is a no-op on a gate that is already unplaced.
			g.free(a)
			g.free(b)
			g.fill(a, oldA)
			g.fill(b, oldB)
			g.cost.RollbackMutation()
			g.log.Warn("mutate re-placement failed, reverted", zap.Int("gate_a", a), zap.Int("gate_b", b))
			return 0, geom.Point2{}, 0, geom.Point2{}, fmt.Errorf("%w: re-placement during mutate", ErrGridExhausted)
		}
		g.cost.EndGateMove(gid)
	}

	g.cost.CommitMutation()
	g.log.Debug("mutate committed", zap.Int("gate_a", a), zap.Int("gate_b", b), zap.Float64("cost", g.cost.TotalCost()))
	return a, oldA, b, oldB, nil
}

// UndoMutate reverts a Mutate call: frees a and b from their current
// (post-mutation) positions, restores them to oldA/oldB, and rolls the
// cost cache back to its pre-mutation snapshot. Must be called with the
// exact tuple Mutate returned, and at most once per Mutate call.
func (g *GatesGrid) UndoMutate(a int, oldA geom.Point2, b int, oldB geom.Point2) {
	g.free(a)
	g.free(b)
	g.fill(a, oldA)
	g.fill(b, oldB)
	g.cost.RollbackMutation()
	g.log.Debug("mutate undone", zap.Int("gate_a", a), zap.Int("gate_b", b), zap.Float64("cost", g.cost.TotalCost()))
}

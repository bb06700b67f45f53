package placement

import "github.com/katalvlaran/roadblock/geom"

// CostCache maintains the grid's total half-perimeter wire length (HPWL)
// incrementally: a per-net bounding-box cost plus a running sum, updated
// only for the nets a mutation actually touches rather than recomputed
// from every gate position on every move.
//
// CostCache holds no reference back to the grid that owns it (spec §9
// design note on avoiding a Grid<->CostCache cycle); it reads gate
// positions through getPos, a narrow callback supplied at construction.
//
// The mutation protocol is: BeginMutation(gateIDs) once, then for each
// moved gate BeginGateMove(gateID) before the caller frees/re-places it
// and EndGateMove(gateID) after, then CommitMutation, or RollbackMutation
// in its place to abandon the mutation. RollbackMutation may also follow
// CommitMutation to undo a committed mutation (GatesGrid.UndoMutate does
// this). A net shared by both moved gates is, by this
// protocol, added to the old-partial and new-partial sums once per
// gate that touches it — so it is counted twice on each side. This is
// intentional: the double count on the old side and the double count on
// the new side cancel in CommitMutation's totalCost += new - old, and
// RollbackMutation restores the exact pre-mutation per-net snapshot
// regardless, so correctness never depends on avoiding the double count.
type CostCache struct {
	netToGates map[int][]int
	gateToNets map[int][]int
	getPos     func(gateID int) (geom.Point2, bool)

	hpwl      map[int]float64
	totalCost float64

	undoSnapshot   map[int]float64
	undoOldPartial float64
	undoNewPartial float64
	undoCommitted  bool
}

// NewCostCache builds a CostCache and computes every net's initial HPWL
// from the positions getPos currently reports. netToGates and gateToNets
// are retained by reference and must not be mutated by the caller after
// construction; grid topology (which nets a gate touches) never changes
// once a Netlist has been ingested.
func NewCostCache(netToGates, gateToNets map[int][]int, getPos func(int) (geom.Point2, bool)) *CostCache {
	cc := &CostCache{
		netToGates: netToGates,
		gateToNets: gateToNets,
		getPos:     getPos,
		hpwl:       make(map[int]float64, len(netToGates)),
	}
	for net := range netToGates {
		h := cc.computeHPWL(net)
		cc.hpwl[net] = h
		cc.totalCost += h
	}
	return cc
}

// computeHPWL recomputes a single net's bounding-box half-perimeter
// ((maxX-minX)+(maxY-minY))/2 from scratch over its currently placed
// member gates. A net with no placed members (transient, mid-move) costs
// zero.
func (cc *CostCache) computeHPWL(net int) float64 {
	first := true
	var minX, maxX, minY, maxY int
	for _, gid := range cc.netToGates[net] {
		p, ok := cc.getPos(gid)
		if !ok {
			continue
		}
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if first {
		return 0
	}
	return float64((maxX-minX)+(maxY-minY)) / 2.0
}

// TotalCost returns the grid's current total HPWL across every net.
func (cc *CostCache) TotalCost() float64 { return cc.totalCost }

// NetCost returns a single net's current cached HPWL, used by tests to
// check per-net bookkeeping without forcing a full recompute.
func (cc *CostCache) NetCost(net int) float64 { return cc.hpwl[net] }

// BeginMutation snapshots the cached cost of every net touched by any of
// gateIDs (the union of their GateToNets), so RollbackMutation can later
// restore them verbatim. Must be called before any BeginGateMove in the
// same mutation.
func (cc *CostCache) BeginMutation(gateIDs []int) {
	cc.undoSnapshot = make(map[int]float64)
	cc.undoOldPartial = 0
	cc.undoNewPartial = 0
	cc.undoCommitted = false
	for _, gid := range gateIDs {
		for _, net := range cc.gateToNets[gid] {
			if _, ok := cc.undoSnapshot[net]; !ok {
				cc.undoSnapshot[net] = cc.hpwl[net]
			}
		}
	}
}

// BeginGateMove accumulates gateID's nets' pre-move cached cost into the
// running old-partial total. Call this before freeing/re-placing gateID.
func (cc *CostCache) BeginGateMove(gateID int) {
	for _, net := range cc.gateToNets[gateID] {
		cc.undoOldPartial += cc.hpwl[net]
	}
}

// EndGateMove recomputes gateID's nets' HPWL from gateID's new position,
// updates the cache, and accumulates the fresh values into the running
// new-partial total. Call this after gateID has been re-placed.
func (cc *CostCache) EndGateMove(gateID int) {
	for _, net := range cc.gateToNets[gateID] {
		h := cc.computeHPWL(net)
		cc.hpwl[net] = h
		cc.undoNewPartial += h
	}
}

// CommitMutation folds the accumulated old/new partials into totalCost.
// The rollback snapshot is kept until the next BeginMutation, so a
// committed mutation can still be undone with RollbackMutation.
func (cc *CostCache) CommitMutation() {
	cc.totalCost += cc.undoNewPartial - cc.undoOldPartial
	cc.undoCommitted = true
}

// RollbackMutation undoes a mutation's effect on totalCost (only a
// committed mutation has changed it) and restores every touched net's
// cached HPWL to its pre-mutation value. The caller is responsible for
// also restoring grid occupancy and gate positions before relying on any
// subsequent CostCache computation.
func (cc *CostCache) RollbackMutation() {
	if cc.undoCommitted {
		cc.totalCost -= cc.undoNewPartial - cc.undoOldPartial
	}
	for net, h := range cc.undoSnapshot {
		cc.hpwl[net] = h
	}
	cc.undoSnapshot = nil
	cc.undoCommitted = false
}

// Package placement implements GatesGrid, the dense 2-D occupancy grid
// that the placer mutates, and its companion CostCache, which maintains
// the grid's total half-perimeter wire length (HPWL) incrementally so a
// proposed mutation's cost never requires a full recompute.
//
// GatesGrid owns its CostCache (spec §9 design note: "Grid <-> CostCache
// mutual reference"): the cache has no back-pointer to the grid and is
// driven entirely through explicit BeginMutation/BeginGateMove/
// EndGateMove/CommitMutation/RollbackMutation calls, reading gate
// positions through a narrow read-only callback rather than holding a
// reference to the grid itself.
//
// Every mutation is a swap-or-relocate of two non-port gates: both are
// freed, then both are independently re-placed at random (either may, by
// chance, land on the other's old tile or somewhere else entirely).
// UndoMutate restores bit-exact occupancy, gate positions, and cost.
package placement

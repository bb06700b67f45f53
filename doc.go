// Package roadblock is the root of a two-dimensional digital-circuit
// place-and-route engine.
//
// Given a synthesized gate-level netlist, roadblock assigns each non-port
// gate a position on a bounded rectangular grid (input/output ports are
// pinned to the grid perimeter), iteratively minimizes total wire length
// under a half-perimeter wire-length (HPWL) cost via simulated annealing,
// and routes every net on a small stack of layers with a Lee-style maze
// router.
//
// Subpackages, leaves first:
//
//	geom/      — Point2 / Point3 integer vector arithmetic.
//	netlist/   — gate-level netlist model and JSON ingestion.
//	placement/ — GatesGrid occupancy grid and incremental HPWL CostCache.
//	placer/    — RandomDescent and SimulatedAnnealing optimizers.
//	router/    — layered 3-D maze router with rip-up-and-reroute.
//	view/      — read-only accessors for visualization/HUD consumers.
//
// roadblock does not parse hardware description languages, does not render
// any UI, and does not guarantee a globally optimal placement or routable
// result for arbitrary grid sizes — it is a best-effort heuristic engine
// whose stopping conditions are step budgets and temperature floors.
package roadblock

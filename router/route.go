package router

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/roadblock/geom"
	"github.com/katalvlaran/roadblock/netlist"
	"github.com/katalvlaran/roadblock/placement"
)

// Session holds a single Route call's resulting Grid and per-net traces,
// so the caller can both inspect per-net traces and dump the final
// router_grid's layers.
type Session struct {
	Grid   *Grid
	Routes map[int][]geom.Point3
}

// Route routes every net of a frozen placement.GatesGrid across a
// maxLayers-layer Grid, using a global rip-up-and-reroute loop bounded
// by maxOuterIterations dequeue attempts. Nets are queued in ascending
// net-id order for determinism; a net whose wavefront dead-ends sends
// itself and every already-created route to the *back* of the queue
// (FIFO, matching the prototype's route_queue.put(...) re-enqueue order)
// and resets the Grid, per the specification's chosen global-reset
// policy (a single-random-rip alternative exists in the prototype this
// was grounded on, commented out there and explicitly not adopted here).
func Route(grid *placement.GatesGrid, maxLayers, maxOuterIterations int, opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rg, err := NewGrid(grid.Dim(), maxLayers)
	if err != nil {
		return nil, err
	}

	nl := grid.Netlist()
	pointsByNet := collectTerminals(grid, nl)

	queue := sortedNetIDs(nl.NetToGates)
	created := make(map[int][]geom.Point3, len(queue))

	for iter := 0; iter < maxOuterIterations; iter++ {
		if len(queue) == 0 {
			cfg.log.Info("routing complete", zap.Int("nets_routed", len(created)))
			return &Session{Grid: rg, Routes: created}, nil
		}

		netID := queue[0]
		queue = queue[1:]

		trace, ok := rg.RouteNet(netID, pointsByNet[netID])
		if ok {
			created[netID] = trace
			cfg.log.Debug("route committed", zap.Int("net", netID), zap.Int("length", len(trace)))
			continue
		}

		cfg.log.Warn("rip-up triggered",
			zap.Int("net", netID),
			zap.Int("routes_ripped", len(created)),
			zap.Int("iteration", iter),
		)

		requeue := make([]int, 0, len(created)+1)
		requeue = append(requeue, netID)
		for id := range created {
			requeue = append(requeue, id)
		}
		sort.Ints(requeue[1:])
		queue = append(queue, requeue...)
		created = make(map[int][]geom.Point3, len(queue))
		rg.Reset()
	}

	if len(queue) == 0 {
		cfg.log.Info("routing complete", zap.Int("nets_routed", len(created)))
		return &Session{Grid: rg, Routes: created}, nil
	}

	cfg.log.Error("routing dead end", zap.Int("outer_iterations", maxOuterIterations), zap.Int("pending", len(queue)))
	return nil, fmt.Errorf("%w: outer iteration cap (%d) exhausted with %d net(s) still pending",
		ErrRoutingDeadEnd, maxOuterIterations, len(queue))
}

// collectTerminals gathers, for every net, the ordered list of 2-D
// terminal points (lifted to layer 0) that RouteNet should connect: for
// each gate referencing the net, its gate_pos + in_coords if the net is
// one of the gate's inputs, + out_coords if an output, + clk_coords if a
// clock input. The first point collected for a net is its source; the
// rest are targets. Construction order follows net_to_gates' own gate
// order, which is itself deterministic (assigned during ingestion).
func collectTerminals(grid *placement.GatesGrid, nl *netlist.Netlist) map[int][]geom.Point3 {
	out := make(map[int][]geom.Point3, len(nl.NetToGates))
	for net, gateIDs := range nl.NetToGates {
		var points []geom.Point3
		for _, gid := range gateIDs {
			gate := nl.Gates[gid]
			pos, ok := grid.GetPos(gid)
			if !ok {
				continue
			}
			if gate.HasNetAsInput(net) {
				points = append(points, pos.Add(gate.InCoords()).To3(0))
			}
			if gate.HasNetAsOutput(net) {
				points = append(points, pos.Add(gate.OutCoords()).To3(0))
			}
			if gate.HasNetAsClk(net) {
				if clk, ok := gate.ClkCoords(); ok {
					points = append(points, pos.Add(clk).To3(0))
				}
			}
		}
		out[net] = points
	}
	return out
}

func sortedNetIDs(netToGates map[int][]int) []int {
	ids := make([]int, 0, len(netToGates))
	for net := range netToGates {
		ids = append(ids, net)
	}
	sort.Ints(ids)
	return ids
}

package placement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadblock/geom"
	"github.com/katalvlaran/roadblock/netlist"
	"github.com/katalvlaran/roadblock/placement"
)

// buildChain returns the S1 inverter-chain netlist: IN -a-> NOT -> OUT.
func buildChain(t *testing.T) *netlist.Netlist {
	t.Helper()
	gates := []netlist.Gate{
		{Name: "n1", Type: netlist.NOT, Inputs: []int{1}, Outputs: []int{2}},
		{Name: "a", Type: netlist.IN, Outputs: []int{1}},
		{Name: "y", Type: netlist.OUT, Inputs: []int{2}},
	}
	netToGates := map[int][]int{1: {0, 1}, 2: {0, 2}}
	return netlist.New(gates, netToGates)
}

// buildFanout builds a slightly larger netlist: two inputs, three NOT
// gates, one output, enough non-port gates to exercise Mutate.
func buildFanout(t *testing.T) *netlist.Netlist {
	t.Helper()
	gates := []netlist.Gate{
		{Name: "g0", Type: netlist.NOT, Inputs: []int{1}, Outputs: []int{2}},
		{Name: "g1", Type: netlist.NOT, Inputs: []int{2}, Outputs: []int{3}},
		{Name: "g2", Type: netlist.BUFF, Inputs: []int{3}, Outputs: []int{4}},
		{Name: "in", Type: netlist.IN, Outputs: []int{1}},
		{Name: "out", Type: netlist.OUT, Inputs: []int{4}},
	}
	netToGates := map[int][]int{
		1: {0, 3},
		2: {0, 1},
		3: {1, 2},
		4: {2, 4},
	}
	return netlist.New(gates, netToGates)
}

func TestNewPlacesEveryGateWithoutOverlap(t *testing.T) {
	nl := buildFanout(t)
	g, err := placement.New(nl, geom.Point2{X: 8, Y: 8}, placement.WithSeed(7))
	require.NoError(t, err)

	occupied := map[geom.Point2]int{}
	for gid, gate := range nl.Gates {
		pos, ok := g.GetPos(gid)
		require.True(t, ok, "gate %d must be placed", gid)

		fp := gate.Footprint()
		for dx := 0; dx < fp.X; dx++ {
			for dy := 0; dy < fp.Y; dy++ {
				p := geom.Point2{X: pos.X + dx, Y: pos.Y + dy}
				prior, clash := occupied[p]
				assert.Falsef(t, clash, "tile %v occupied by both gate %d and gate %d", p, prior, gid)
				occupied[p] = gid
			}
		}
	}
}

func TestNewPinsPortsToPerimeterAndLogicGatesInterior(t *testing.T) {
	nl := buildFanout(t)
	g, err := placement.New(nl, geom.Point2{X: 8, Y: 8}, placement.WithSeed(3))
	require.NoError(t, err)
	dim := g.Dim()

	for gid, gate := range nl.Gates {
		pos, ok := g.GetPos(gid)
		require.True(t, ok)
		onPerimeter := pos.X == 0 || pos.Y == 0 || pos.X == dim.X-1 || pos.Y == dim.Y-1
		if gate.IsPort() {
			assert.True(t, onPerimeter, "port %q must sit on the perimeter", gate.Name)
		} else {
			assert.False(t, onPerimeter, "logic gate %q must never sit on the perimeter", gate.Name)
		}
	}
}

func TestNewRejectsTooSmallGrid(t *testing.T) {
	nl := buildChain(t)
	_, err := placement.New(nl, geom.Point2{X: 2, Y: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, placement.ErrInvalidDim)
}

func TestCostMatchesFreshRecompute(t *testing.T) {
	nl := buildFanout(t)
	g, err := placement.New(nl, geom.Point2{X: 8, Y: 8}, placement.WithSeed(11))
	require.NoError(t, err)

	recompute := func() float64 {
		var total float64
		for net, gids := range nl.NetToGates {
			_ = net
			first := true
			var minX, maxX, minY, maxY int
			for _, gid := range gids {
				p, ok := g.GetPos(gid)
				require.True(t, ok)
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
			total += float64((maxX-minX)+(maxY-minY)) / 2.0
		}
		return total
	}

	assert.InDelta(t, recompute(), g.Cost(), 1e-9)

	for i := 0; i < 25; i++ {
		a, oldA, b, oldB, err := g.Mutate()
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
		assert.InDelta(t, recompute(), g.Cost(), 1e-9, "iteration %d", i)
		_ = oldA
		_ = oldB
	}
}

func TestUndoMutateRestoresExactState(t *testing.T) {
	nl := buildFanout(t)
	g, err := placement.New(nl, geom.Point2{X: 8, Y: 8}, placement.WithSeed(42))
	require.NoError(t, err)

	before := map[int]geom.Point2{}
	for gid := range nl.Gates {
		pos, ok := g.GetPos(gid)
		require.True(t, ok)
		before[gid] = pos
	}
	costBefore := g.Cost()

	a, oldA, b, oldB, err := g.Mutate()
	require.NoError(t, err)

	g.UndoMutate(a, oldA, b, oldB)

	for gid := range nl.Gates {
		pos, ok := g.GetPos(gid)
		require.True(t, ok)
		assert.Equal(t, before[gid], pos, "gate %d position must be restored", gid)
	}
	assert.InDelta(t, costBefore, g.Cost(), 1e-9)
}

func TestMutateOnlyTouchesNonPortGates(t *testing.T) {
	nl := buildFanout(t)
	g, err := placement.New(nl, geom.Point2{X: 8, Y: 8}, placement.WithSeed(99))
	require.NoError(t, err)

	for i := 0; i < 40; i++ {
		a, _, b, _, err := g.Mutate()
		require.NoError(t, err)
		assert.False(t, nl.Gates[a].IsPort())
		assert.False(t, nl.Gates[b].IsPort())
	}
}

func TestGridExhaustedWhenTooManyGatesForGrid(t *testing.T) {
	// A 3x3 grid has exactly one interior tile; two NOT gates (1x2
	// footprint each) can never both fit.
	gates := []netlist.Gate{
		{Name: "g0", Type: netlist.NOT, Inputs: []int{1}, Outputs: []int{2}},
		{Name: "g1", Type: netlist.NOT, Inputs: []int{2}, Outputs: []int{3}},
	}
	nl := netlist.New(gates, map[int][]int{1: {0}, 2: {0, 1}, 3: {1}})

	_, err := placement.New(nl, geom.Point2{X: 3, Y: 3}, placement.WithPlaceRetryCount(50))
	require.Error(t, err)
	assert.ErrorIs(t, err, placement.ErrGridExhausted)
}

func TestMutateCorruptStateWithFewerThanTwoLogicGates(t *testing.T) {
	nl := buildChain(t)
	g, err := placement.New(nl, geom.Point2{X: 8, Y: 8})
	require.NoError(t, err)

	_, _, _, _, err = g.Mutate()
	require.Error(t, err)
	assert.ErrorIs(t, err, placement.ErrCorruptState)
}

func TestGateAtReflectsOccupancy(t *testing.T) {
	nl := buildChain(t)
	g, err := placement.New(nl, geom.Point2{X: 8, Y: 8}, placement.WithSeed(5))
	require.NoError(t, err)

	pos, ok := g.GetPos(0)
	require.True(t, ok)
	gid, ok := g.GateAt(pos)
	require.True(t, ok)
	assert.Equal(t, 0, gid)

	_, ok = g.GateAt(geom.Point2{X: -1, Y: 0})
	assert.False(t, ok)
}

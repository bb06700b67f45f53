package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadblock/geom"
	"github.com/katalvlaran/roadblock/netlist"
	"github.com/katalvlaran/roadblock/placement"
	"github.com/katalvlaran/roadblock/router"
	"github.com/katalvlaran/roadblock/view"
)

func buildViewNetlist() *netlist.Netlist {
	gates := []netlist.Gate{
		{Name: "n0", Type: netlist.NOT, Inputs: []int{1}, Outputs: []int{2}},
		{Name: "b0", Type: netlist.BUFF, Inputs: []int{2}, Outputs: []int{3}},
		{Name: "a", Type: netlist.IN, Outputs: []int{1}},
		{Name: "y", Type: netlist.OUT, Inputs: []int{3}},
	}
	netToGates := map[int][]int{1: {0, 2}, 2: {0, 1}, 3: {1, 3}}
	return netlist.New(gates, netToGates)
}

func TestGateAtReturnsOccupyingGateAndItsOrigin(t *testing.T) {
	nl := buildViewNetlist()
	grid, err := placement.New(nl, geom.Point2{X: 10, Y: 10}, placement.WithSeed(1))
	require.NoError(t, err)

	v := view.New(grid, nil)

	for gid := 0; gid < nl.NumGates(); gid++ {
		origin, ok := grid.GetPos(gid)
		require.True(t, ok)

		gate, gotOrigin, ok := v.GateAt(origin)
		require.True(t, ok)
		assert.Equal(t, origin, gotOrigin)
		assert.Equal(t, nl.Gates[gid].Name, gate.Name)
	}
}

func TestGateAtOnEmptyTileReportsNotFound(t *testing.T) {
	nl := buildViewNetlist()
	grid, err := placement.New(nl, geom.Point2{X: 10, Y: 10}, placement.WithSeed(1))
	require.NoError(t, err)

	v := view.New(grid, nil)

	occupied := map[geom.Point2]bool{}
	for gid := 0; gid < nl.NumGates(); gid++ {
		origin, _ := grid.GetPos(gid)
		footprint := nl.Gates[gid].Footprint()
		for dx := 0; dx < footprint.X; dx++ {
			for dy := 0; dy < footprint.Y; dy++ {
				occupied[origin.Add(geom.Point2{X: dx, Y: dy})] = true
			}
		}
	}

	found := false
	for x := 1; x < 9 && !found; x++ {
		for y := 1; y < 9 && !found; y++ {
			pos := geom.Point2{X: x, Y: y}
			if occupied[pos] {
				continue
			}
			_, _, ok := v.GateAt(pos)
			assert.False(t, ok)
			found = true
		}
	}
	require.True(t, found, "expected at least one empty interior tile")
}

func TestPositionOfRejectsOutOfRangeID(t *testing.T) {
	nl := buildViewNetlist()
	grid, err := placement.New(nl, geom.Point2{X: 10, Y: 10}, placement.WithSeed(1))
	require.NoError(t, err)

	v := view.New(grid, nil)

	_, ok := v.PositionOf(-1)
	assert.False(t, ok)
	_, ok = v.PositionOf(nl.NumGates())
	assert.False(t, ok)

	_, ok = v.PositionOf(0)
	assert.True(t, ok)
}

func TestSelectionBoundsCoversEveryGivenGateFootprint(t *testing.T) {
	nl := buildViewNetlist()
	grid, err := placement.New(nl, geom.Point2{X: 10, Y: 10}, placement.WithSeed(1))
	require.NoError(t, err)

	v := view.New(grid, nil)

	all := make([]int, nl.NumGates())
	for i := range all {
		all[i] = i
	}
	min, max, ok := v.SelectionBounds(all)
	require.True(t, ok)

	for gid := 0; gid < nl.NumGates(); gid++ {
		origin, _ := grid.GetPos(gid)
		footprint := nl.Gates[gid].Footprint()
		corner := origin.Add(footprint).Sub(geom.Point2{X: 1, Y: 1})
		assert.LessOrEqual(t, min.X, origin.X)
		assert.LessOrEqual(t, min.Y, origin.Y)
		assert.GreaterOrEqual(t, max.X, corner.X)
		assert.GreaterOrEqual(t, max.Y, corner.Y)
	}
}

func TestSelectionBoundsEmptyWhenNoneResolve(t *testing.T) {
	nl := buildViewNetlist()
	grid, err := placement.New(nl, geom.Point2{X: 10, Y: 10}, placement.WithSeed(1))
	require.NoError(t, err)

	v := view.New(grid, nil)

	_, _, ok := v.SelectionBounds([]int{99, 100})
	assert.False(t, ok)
}

func TestRouteAtAndNetTraceWithoutSessionReportNotFound(t *testing.T) {
	nl := buildViewNetlist()
	grid, err := placement.New(nl, geom.Point2{X: 10, Y: 10}, placement.WithSeed(1))
	require.NoError(t, err)

	v := view.New(grid, nil)

	_, ok := v.RouteAt(geom.Point3{})
	assert.False(t, ok)
	_, ok = v.NetTrace(1)
	assert.False(t, ok)
}

func TestRouteAtAndNetTraceReflectSession(t *testing.T) {
	nl := buildViewNetlist()
	grid, err := placement.New(nl, geom.Point2{X: 10, Y: 10}, placement.WithSeed(3))
	require.NoError(t, err)

	session, err := router.Route(grid, 4, 1000)
	require.NoError(t, err)

	v := view.New(grid, session)

	for net, trace := range session.Routes {
		_, ok := v.NetTrace(net)
		assert.True(t, ok)
		for _, pt := range trace {
			gotNet, ok := v.RouteAt(pt)
			require.True(t, ok)
			assert.Equal(t, net, gotNet)
		}
	}
}

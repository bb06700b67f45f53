package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadblock/geom"
	"github.com/katalvlaran/roadblock/netlist"
	"github.com/katalvlaran/roadblock/placement"
	"github.com/katalvlaran/roadblock/router"
)

func buildChainNetlist(t *testing.T) *netlist.Netlist {
	t.Helper()
	gates := []netlist.Gate{
		{Name: "n1", Type: netlist.NOT, Inputs: []int{1}, Outputs: []int{2}},
		{Name: "a", Type: netlist.IN, Outputs: []int{1}},
		{Name: "y", Type: netlist.OUT, Inputs: []int{2}},
	}
	netToGates := map[int][]int{1: {0, 1}, 2: {0, 2}}
	return netlist.New(gates, netToGates)
}

func TestRouteEndToEndSimpleChain(t *testing.T) {
	nl := buildChainNetlist(t)
	grid, err := placement.New(nl, geom.Point2{X: 10, Y: 10}, placement.WithSeed(4))
	require.NoError(t, err)

	session, err := router.Route(grid, 4, 1000)
	require.NoError(t, err)
	assert.Len(t, session.Routes, len(nl.NetToGates))

	for net, trace := range session.Routes {
		for _, pt := range trace {
			assert.Equal(t, net, session.Grid.RouteAt(pt))
		}
	}
}

func TestRouteReturnsDeadEndWhenCapTooLow(t *testing.T) {
	nl := buildChainNetlist(t)
	grid, err := placement.New(nl, geom.Point2{X: 10, Y: 10}, placement.WithSeed(4))
	require.NoError(t, err)

	// A single-layer, zero-iteration budget can never even attempt the
	// first net.
	_, err = router.Route(grid, 1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, router.ErrRoutingDeadEnd)
}

func TestRouteDistinctRoutesNeverShareATile(t *testing.T) {
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
	nl := netlist.New(gates, netToGates)

	grid, err := placement.New(nl, geom.Point2{X: 12, Y: 12}, placement.WithSeed(17))
	require.NoError(t, err)

	session, err := router.Route(grid, 6, 2000)
	require.NoError(t, err)

	seen := map[geom.Point3]int{}
	for net, trace := range session.Routes {
		for _, pt := range trace {
			if owner, ok := seen[pt]; ok {
				assert.Equal(t, net, owner, "tile %v claimed by both net %d and net %d", pt, owner, net)
			} else {
				seen[pt] = net
			}
		}
	}
}

func TestLayerTextFormatsEmptyGridAsAllNegativeOne(t *testing.T) {
	g, err := router.NewGrid(geom.Point2{X: 2, Y: 2}, 1)
	require.NoError(t, err)
	assert.Equal(t, "-1 -1\n-1 -1\n", g.LayerText(0))
}

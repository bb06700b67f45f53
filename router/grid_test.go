package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadblock/geom"
	"github.com/katalvlaran/roadblock/router"
)

func p3(x, y, z int) geom.Point3 { return geom.Point3{X: x, Y: y, Z: z} }

// adjacent reports whether a and b differ by exactly one unit step in
// exactly one axis (a 4-/6-neighborhood move).
func adjacent(a, b geom.Point3) bool {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	total := abs(dx) + abs(dy) + abs(dz)
	return total == 1
}

func TestRouteTwoPointNoVias(t *testing.T) {
	// S5: 8x8 grid, 2 layers, source (1,1) -> target (5,5). Manhattan
	// distance is 8, so a shortest all-planar route costs exactly 8 with
	// no layer changes.
	g, err := router.NewGrid(geom.Point2{X: 8, Y: 8}, 2)
	require.NoError(t, err)

	trace, ok := g.RouteNet(1, []geom.Point3{p3(1, 1, 0), p3(5, 5, 0)})
	require.True(t, ok)
	require.NotEmpty(t, trace)

	for _, pt := range trace {
		assert.Equal(t, 1, g.RouteAt(pt))
		assert.Equal(t, 0, pt.Z, "no via should be needed for an unobstructed 8-step route")
	}

	// Every trace cell must chain into a connected path: each cell has at
	// least one other trace cell exactly one step away (true for any
	// non-trivial backtraced path, start and end included).
	for i, pt := range trace {
		connected := false
		for j, other := range trace {
			if i != j && adjacent(pt, other) {
				connected = true
				break
			}
		}
		assert.True(t, connected, "trace cell %v must be adjacent to another trace cell", pt)
	}
}

func TestRouteViaWhenLayerZeroBlocked(t *testing.T) {
	// S6: a prior route occupies every layer-0 cell on the direct path
	// between source and target, forcing the new net to detour via a
	// layer change (UP then DOWN, cost +6 over the blocked planar path).
	g, err := router.NewGrid(geom.Point2{X: 8, Y: 8}, 2)
	require.NoError(t, err)

	for x := 0; x < 8; x++ {
		g.SetRoute(p3(x, 3, 0), 99)
	}

	trace, ok := g.RouteNet(1, []geom.Point3{p3(1, 1, 0), p3(1, 5, 0)})
	require.True(t, ok)

	sawVia := false
	for _, pt := range trace {
		if pt.Z != 0 {
			sawVia = true
		}
	}
	assert.True(t, sawVia, "route must cross to layer 1 and back to get past the layer-0 blockage")
}

func TestRouteMultiTerminalAbsorption(t *testing.T) {
	g, err := router.NewGrid(geom.Point2{X: 10, Y: 10}, 2)
	require.NoError(t, err)

	trace, ok := g.RouteNet(1, []geom.Point3{p3(0, 0, 0), p3(3, 0, 0), p3(0, 3, 0)})
	require.True(t, ok)

	for _, target := range []geom.Point3{p3(0, 0, 0), p3(3, 0, 0), p3(0, 3, 0)} {
		assert.Equal(t, 1, g.RouteAt(target))
	}
	_ = trace
}

func TestRouteNetNoOverlapAcrossDistinctNets(t *testing.T) {
	// Invariant 9: distinct route ids never share a non-EMPTY cell.
	g, err := router.NewGrid(geom.Point2{X: 8, Y: 8}, 1)
	require.NoError(t, err)

	trace1, ok := g.RouteNet(1, []geom.Point3{p3(0, 0, 0), p3(7, 0, 0)})
	require.True(t, ok)

	trace2, ok := g.RouteNet(2, []geom.Point3{p3(0, 7, 0), p3(7, 7, 0)})
	require.True(t, ok)

	for _, pt := range trace1 {
		assert.Equal(t, 1, g.RouteAt(pt))
	}
	for _, pt := range trace2 {
		assert.Equal(t, 2, g.RouteAt(pt))
		assert.NotEqual(t, 1, g.RouteAt(pt))
	}
}

func TestRouteDeadEndWhenFullyBoxedIn(t *testing.T) {
	g, err := router.NewGrid(geom.Point2{X: 4, Y: 4}, 1)
	require.NoError(t, err)

	// Box the target (2,2) in on all four sides on the only layer.
	for _, pt := range []geom.Point3{p3(1, 2, 0), p3(3, 2, 0), p3(2, 1, 0), p3(2, 3, 0)} {
		g.SetRoute(pt, 99)
	}

	_, ok := g.RouteNet(1, []geom.Point3{p3(0, 0, 0), p3(2, 2, 0)})
	assert.False(t, ok)
}

func TestNewGridRejectsNonPositiveLayers(t *testing.T) {
	_, err := router.NewGrid(geom.Point2{X: 4, Y: 4}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, router.ErrInvalidLayers)
}

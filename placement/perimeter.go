package placement

import "github.com/katalvlaran/roadblock/geom"

// perimeterCells returns every tile on the grid's outer ring exactly
// once, in a deterministic walk starting at (0,0) and heading right:
// top row left-to-right, right column top-to-bottom, bottom row
// right-to-left, left column bottom-to-top — each side skipping the
// corner tile the previous side already emitted. Ports are assigned
// these cells in this order as they are placed; logic gates may never
// occupy one.
func perimeterCells(dim geom.Point2) []geom.Point2 {
	if dim.X < 2 || dim.Y < 2 {
		// Degenerate strip: every tile is perimeter.
		cells := make([]geom.Point2, 0, dim.X*dim.Y)
		for y := 0; y < dim.Y; y++ {
			for x := 0; x < dim.X; x++ {
				cells = append(cells, geom.Point2{X: x, Y: y})
			}
		}
		return cells
	}

	cells := make([]geom.Point2, 0, 2*dim.X+2*dim.Y-4)

	// Top row: y=0, x=0..dim.X-1, left to right.
	for x := 0; x < dim.X; x++ {
		cells = append(cells, geom.Point2{X: x, Y: 0})
	}
	// Right column: x=dim.X-1, y=1..dim.Y-1, skipping the top-right
	// corner already emitted above.
	for y := 1; y < dim.Y; y++ {
		cells = append(cells, geom.Point2{X: dim.X - 1, Y: y})
	}
	// Bottom row: y=dim.Y-1, x=dim.X-2..0, skipping the bottom-right
	// corner already emitted above.
	for x := dim.X - 2; x >= 0; x-- {
		cells = append(cells, geom.Point2{X: x, Y: dim.Y - 1})
	}
	// Left column: x=0, y=dim.Y-2..1, skipping both corners already
	// emitted (top-left by the top row, bottom-left by the bottom row).
	for y := dim.Y - 2; y >= 1; y-- {
		cells = append(cells, geom.Point2{X: 0, Y: y})
	}

	return cells
}

// isPerimeter reports whether pos lies on dim's outer ring.
func isPerimeter(pos, dim geom.Point2) bool {
	return pos.X == 0 || pos.Y == 0 || pos.X == dim.X-1 || pos.Y == dim.Y-1
}

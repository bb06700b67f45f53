// Package geom provides small integer vector types used throughout the
// placement and routing engine: Point2 for grid coordinates and Point3 for
// layered (x, y, layer) routing coordinates.
//
// Both types are plain comparable structs (usable as map keys) with the
// handful of arithmetic operations the engine needs: Add, Sub, MulScalar,
// MulComponent, and FloorDiv. Coordinates are expected to stay
// non-negative once placed, but intermediate values during neighbor
// expansion may go negative; callers must bounds-check before indexing a
// grid with them.
package geom

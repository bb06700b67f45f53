package geom

import "fmt"

// Point2 is an integer 2-D coordinate (x, y). Values may be negative
// transiently (e.g. while probing a neighbor outside grid bounds); callers
// must validate before using a Point2 to index a grid.
type Point2 struct {
	X, Y int
}

// String renders Point2 as "x=.. y=..", matching the prototype's Dim repr.
func (p Point2) String() string {
	return fmt.Sprintf("x=%d y=%d", p.X, p.Y)
}

// Add returns the component-wise sum p + q.
func (p Point2) Add(q Point2) Point2 {
	return Point2{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Point2) Sub(q Point2) Point2 {
	return Point2{X: p.X - q.X, Y: p.Y - q.Y}
}

// MulScalar returns p scaled by k in both components.
func (p Point2) MulScalar(k int) Point2 {
	return Point2{X: p.X * k, Y: p.Y * k}
}

// MulComponent returns the component-wise product p * q.
func (p Point2) MulComponent(q Point2) Point2 {
	return Point2{X: p.X * q.X, Y: p.Y * q.Y}
}

// FloorDiv returns the component-wise floor division p // q. Behavior is
// undefined if either component of q is zero.
func (p Point2) FloorDiv(q Point2) Point2 {
	return Point2{X: floorDiv(p.X, q.X), Y: floorDiv(p.Y, q.Y)}
}

// InBounds reports whether p lies within a grid of the given dim, i.e.
// 0 <= p.X < dim.X and 0 <= p.Y < dim.Y.
func (p Point2) InBounds(dim Point2) bool {
	return p.X >= 0 && p.X < dim.X && p.Y >= 0 && p.Y < dim.Y
}

// To3 lifts p to a Point3 at the given layer z.
func (p Point2) To3(z int) Point3 {
	return Point3{X: p.X, Y: p.Y, Z: z}
}

// Point3 is an integer 3-D coordinate (x, y, z), where z indexes a routing
// layer.
type Point3 struct {
	X, Y, Z int
}

// String renders Point3 as "x=.. y=.. z=..".
func (p Point3) String() string {
	return fmt.Sprintf("x=%d y=%d z=%d", p.X, p.Y, p.Z)
}

// Add returns the component-wise sum p + q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the component-wise difference p - q.
func (p Point3) Sub(q Point3) Point3 {
	return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// MulScalar returns p scaled by k in all three components.
func (p Point3) MulScalar(k int) Point3 {
	return Point3{X: p.X * k, Y: p.Y * k, Z: p.Z * k}
}

// MulComponent returns the component-wise product p * q.
func (p Point3) MulComponent(q Point3) Point3 {
	return Point3{X: p.X * q.X, Y: p.Y * q.Y, Z: p.Z * q.Z}
}

// FloorDiv returns the component-wise floor division p // q. Behavior is
// undefined if any component of q is zero.
func (p Point3) FloorDiv(q Point3) Point3 {
	return Point3{X: floorDiv(p.X, q.X), Y: floorDiv(p.Y, q.Y), Z: floorDiv(p.Z, q.Z)}
}

// InBounds reports whether p lies within a layered grid of the given dim
// (x, y extents) and layer count max.
func (p Point3) InBounds(dim Point2, maxLayers int) bool {
	return p.X >= 0 && p.X < dim.X && p.Y >= 0 && p.Y < dim.Y && p.Z >= 0 && p.Z < maxLayers
}

// XY projects p down to its (x, y) components, dropping the layer.
func (p Point3) XY() Point2 {
	return Point2{X: p.X, Y: p.Y}
}

// floorDiv performs integer floor division (rounds toward negative
// infinity), unlike Go's native truncating "/" operator.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

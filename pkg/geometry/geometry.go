// Package geometry provides the integer value types the widget tree is
// measured in: points, sizes, and origin/size rectangles.
package geometry

// Point is a location in pixel coordinates.
type Point struct {
	X int
	Y int
}

// Add returns the point translated by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the point translated by the negation of other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Size is the width and height of an object in pixels.
type Size struct {
	Width  int
	Height int
}

// IsEmpty returns true if the size has zero or negative area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is a rectangle described by its origin and size.
//
// A widget's frame is a Rect whose origin is relative to its parent; its
// bounds are the same size with a zero origin.
type Rect struct {
	Origin Point
	Size   Size
}

// RectMake constructs a Rect from origin and size components.
func RectMake(x, y, width, height int) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// Bounds returns a rectangle of the same size with a zero origin.
func (r Rect) Bounds() Rect {
	return Rect{Size: r.Size}
}

// Inset shrinks the rectangle by dx horizontally and dy vertically on each
// edge: the origin shifts by (dx, dy) and the size shrinks by (2dx, 2dy).
//
// No clamping is performed; insetting past the rectangle's extent yields a
// degenerate (negative) size that callers must tolerate.
func (r Rect) Inset(dx, dy int) Rect {
	return Rect{
		Origin: Point{X: r.Origin.X + dx, Y: r.Origin.Y + dy},
		Size:   Size{Width: r.Size.Width - 2*dx, Height: r.Size.Height - 2*dy},
	}
}

// Contains reports whether the point lies within the rectangle. The test is
// inclusive on all edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X <= r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y <= r.Origin.Y+r.Size.Height
}

// Translate returns the rectangle with its origin shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{
		Origin: Point{X: r.Origin.X + dx, Y: r.Origin.Y + dy},
		Size:   r.Size,
	}
}

// MaxX returns the right edge coordinate.
func (r Rect) MaxX() int {
	return r.Origin.X + r.Size.Width
}

// MaxY returns the bottom edge coordinate.
func (r Rect) MaxY() int {
	return r.Origin.Y + r.Size.Height
}

// Intersect returns the overlapping region of two rectangles, or a Rect with
// an empty size if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.Origin.X, other.Origin.X)
	y0 := max(r.Origin.Y, other.Origin.Y)
	x1 := min(r.MaxX(), other.MaxX())
	y1 := min(r.MaxY(), other.MaxY())
	if x0 >= x1 || y0 >= y1 {
		return Rect{}
	}
	return RectMake(x0, y0, x1-x0, y1-y0)
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Size.IsEmpty()
}

// pkg/physics/bounds.go
package physics

import "math"

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles are colliding
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// ContainsPoint checks if a point lies inside the circle
func (c Circle) ContainsPoint(point Vector2D) bool {
	return c.Center.Distance(point) < c.Radius
}

// Rect represents a rectangular area centered on a point
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// Contains checks if a point lies inside the rectangle
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Center.X-r.Width/2 &&
		point.X < r.Center.X+r.Width/2 &&
		point.Y >= r.Center.Y-r.Height/2 &&
		point.Y < r.Center.Y+r.Height/2
}

// Exceeds reports whether a point lies strictly outside the rectangle.
// A point exactly on the edge is still inside.
func (r Rect) Exceeds(point Vector2D) bool {
	return math.Abs(point.X-r.Center.X) > r.Width/2 ||
		math.Abs(point.Y-r.Center.Y) > r.Height/2
}

// Bounds returns a play-area rectangle centered on the origin with the
// given half extents.
func Bounds(halfWidth, halfHeight float64) Rect {
	return Rect{
		Center: Vector2D{},
		Width:  halfWidth * 2,
		Height: halfHeight * 2,
	}
}

// pkg/physics/gravity.go
package physics

// Gravity field tuning. G and Softening are gameplay constants, not
// physical ones: the softening term is added to the distance before
// squaring, which keeps the force finite and gentle near a body's
// surface instead of diverging.
const (
	G         = 8.0
	Softening = 10.0
)

// GoalRadius is the radius of a level's goal portal in world units.
const GoalRadius = 2.5

// Body is a gravitating source with mass and a solid radius.
// Bodies are immutable for the lifetime of a level.
type Body struct {
	Position Vector2D
	Mass     float64
	Radius   float64
}

// Collider returns the body's collision circle.
func (b Body) Collider() Circle {
	return Circle{Center: b.Position, Radius: b.Radius}
}

// AccelerationAt computes the net gravitational acceleration at a point.
// It is a pure function: contributions are accumulated in body list
// order, which callers rely on for reproducible trajectories. Proximity
// to a body's surface is the caller's concern; this function never
// signals collision.
func AccelerationAt(point Vector2D, bodies []Body) Vector2D {
	var accel Vector2D
	for _, body := range bodies {
		d := body.Position.Sub(point)
		r := d.Length()
		softened := r + Softening
		accel = accel.Add(d.Normalize().Scale(G * body.Mass / (softened * softened)))
	}
	return accel
}

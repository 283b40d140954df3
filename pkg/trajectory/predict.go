// Package trajectory produces launch previews: the same softened-gravity
// field the live flight uses, run forward with a coarser step so it can
// be recomputed on every pointer move.
package trajectory

import (
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

const (
	// Step is three times the live flight step; the preview trades
	// accuracy for per-frame recomputation cost.
	Step = 0.048

	// MaxPoints bounds the preview polyline.
	MaxPoints = 100

	// GoalCaptureFactor widens the goal stop check so the preview ends
	// visibly inside the portal.
	GoalCaptureFactor = 1.5
)

// previewBounds is wider than the flight bounds so the preview keeps
// drawing a little past the live failure line.
var previewBounds = physics.Bounds(60, 50)

// Predict simulates a launch from start with the given velocity and
// returns the predicted path as a polyline of at most MaxPoints points.
// The simulation stops early when the path hits a body (nothing appended
// for the colliding step), enters the goal portal, or leaves the preview
// bounds. The inputs are never mutated.
func Predict(start, velocity physics.Vector2D, bodies []physics.Body, goal physics.Vector2D) []physics.Vector2D {
	points := make([]physics.Vector2D, 0, MaxPoints)
	pos := start
	vel := velocity

	for i := 0; i < MaxPoints; i++ {
		accel := physics.AccelerationAt(pos, bodies)

		if hitsBody(pos, bodies) {
			return points
		}
		if pos.Distance(goal) < GoalCaptureFactor*physics.GoalRadius {
			return points
		}

		vel = vel.Add(accel.Scale(Step))
		pos = pos.Add(vel.Scale(Step))
		points = append(points, pos)

		if previewBounds.Exceeds(pos) {
			return points
		}
	}

	return points
}

// hitsBody reports whether the simulated point is inside any body. The
// preview point has no size of its own, unlike the live craft.
func hitsBody(pos physics.Vector2D, bodies []physics.Body) bool {
	for _, body := range bodies {
		if pos.Distance(body.Position) < body.Radius {
			return true
		}
	}
	return false
}

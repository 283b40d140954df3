// pkg/trajectory/predict_test.go
package trajectory

import (
	"testing"

	"github.com/opd-ai/go-slingshot/pkg/physics"
)

func TestPredict_StraightLineWithoutBodies(t *testing.T) {
	start := physics.Vector2D{X: -20, Y: 0}
	vel := physics.Vector2D{X: 5, Y: 0}
	goal := physics.Vector2D{X: 500, Y: 500} // far away, never captured

	points := Predict(start, vel, nil, goal)

	if len(points) == 0 {
		t.Fatal("expected a non-empty preview")
	}
	for i, p := range points {
		if p.Y != 0 {
			t.Fatalf("point %d has y = %v, expected straight line on the x axis", i, p.Y)
		}
		want := start.X + 5*Step*float64(i+1)
		if diff := p.X - want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("point %d x = %v, expected %v", i, p.X, want)
		}
	}
}

func TestPredict_LengthBound(t *testing.T) {
	// Slow launch far from everything: no truncation fires before the cap.
	points := Predict(physics.Vector2D{}, physics.Vector2D{X: 0.1, Y: 0}, nil, physics.Vector2D{X: 500, Y: 0})
	if len(points) != MaxPoints {
		t.Errorf("len(points) = %d, expected %d", len(points), MaxPoints)
	}
}

func TestPredict_CollisionTruncation(t *testing.T) {
	bodies := []physics.Body{
		{Position: physics.Vector2D{X: 10, Y: 0}, Mass: 0.001, Radius: 3},
	}
	points := Predict(physics.Vector2D{X: 0, Y: 0}, physics.Vector2D{X: 20, Y: 0}, bodies, physics.Vector2D{X: 500, Y: 500})

	if len(points) == 0 {
		t.Fatal("expected some points before the collision")
	}
	if len(points) == MaxPoints {
		t.Fatalf("expected collision truncation, got full %d points", MaxPoints)
	}
	// No appended point may be inside the body: the colliding step stops
	// before appending.
	last := points[len(points)-1]
	if last.Distance(bodies[0].Position) >= bodies[0].Radius {
		// The point before entry stays outside; only the check on the
		// following step observes penetration. Walk all points to be sure
		// none were appended from inside.
		for i, p := range points[:len(points)-1] {
			if p.Distance(bodies[0].Position) < bodies[0].Radius {
				t.Fatalf("point %d appended inside body", i)
			}
		}
	}
}

func TestPredict_GoalTruncation(t *testing.T) {
	goal := physics.Vector2D{X: 10, Y: 0}
	points := Predict(physics.Vector2D{}, physics.Vector2D{X: 20, Y: 0}, nil, goal)

	if len(points) == 0 || len(points) == MaxPoints {
		t.Fatalf("expected goal truncation, got %d points", len(points))
	}
	// Once a point is within the widened goal radius the next step stops.
	last := points[len(points)-1]
	if last.Distance(goal) >= GoalCaptureFactor*physics.GoalRadius {
		t.Errorf("last point %v at distance %v from goal, expected inside %v",
			last, last.Distance(goal), GoalCaptureFactor*physics.GoalRadius)
	}
}

func TestPredict_BoundsTruncation(t *testing.T) {
	points := Predict(physics.Vector2D{X: 0, Y: 0}, physics.Vector2D{X: 100, Y: 0}, nil, physics.Vector2D{X: 0, Y: 500})

	if len(points) == 0 {
		t.Fatal("expected points before leaving bounds")
	}
	last := points[len(points)-1]
	if last.X <= 60 {
		t.Errorf("last point x = %v, expected the out-of-bounds point to be kept as final segment end", last.X)
	}
	for _, p := range points[:len(points)-1] {
		if p.X > 60 || p.Y > 50 || p.X < -60 || p.Y < -50 {
			t.Errorf("intermediate point %v outside preview bounds", p)
		}
	}
}

func TestPredict_DoesNotMutateInputs(t *testing.T) {
	bodies := []physics.Body{
		{Position: physics.Vector2D{X: 5, Y: 5}, Mass: 100, Radius: 2},
	}
	before := bodies[0]
	start := physics.Vector2D{X: -20, Y: 0}
	vel := physics.Vector2D{X: 10, Y: 3}

	Predict(start, vel, bodies, physics.Vector2D{X: 20, Y: 0})

	if bodies[0] != before {
		t.Error("Predict mutated the body list")
	}
	if (start != physics.Vector2D{X: -20, Y: 0}) || (vel != physics.Vector2D{X: 10, Y: 3}) {
		t.Error("Predict mutated its value inputs")
	}
}

func TestPredict_Deterministic(t *testing.T) {
	bodies := []physics.Body{
		{Position: physics.Vector2D{X: 8, Y: 2}, Mass: 300, Radius: 3},
		{Position: physics.Vector2D{X: -6, Y: -9}, Mass: 120, Radius: 2},
	}
	first := Predict(physics.Vector2D{X: -20, Y: 0}, physics.Vector2D{X: 9, Y: 4}, bodies, physics.Vector2D{X: 20, Y: 0})
	for i := 0; i < 10; i++ {
		again := Predict(physics.Vector2D{X: -20, Y: 0}, physics.Vector2D{X: 9, Y: 4}, bodies, physics.Vector2D{X: 20, Y: 0})
		if len(again) != len(first) {
			t.Fatalf("run %d produced %d points, expected %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d point %d = %v, expected bit-identical %v", i, j, again[j], first[j])
			}
		}
	}
}

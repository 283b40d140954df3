// pkg/physics/gravity_test.go
package physics

import (
	"math"
	"testing"
)

func TestAccelerationAt_NoBodies(t *testing.T) {
	a := AccelerationAt(Vector2D{X: 12, Y: -7}, nil)
	if a.X != 0 || a.Y != 0 {
		t.Errorf("AccelerationAt() with no bodies = %v, expected zero vector", a)
	}
}

func TestAccelerationAt_PointsTowardBody(t *testing.T) {
	body := Body{Position: Vector2D{X: 10, Y: 0}, Mass: 100, Radius: 3}
	a := AccelerationAt(Vector2D{X: 0, Y: 0}, []Body{body})

	if a.X <= 0 {
		t.Errorf("acceleration x = %v, expected positive (toward body)", a.X)
	}
	if a.Y != 0 {
		t.Errorf("acceleration y = %v, expected 0 on the axis", a.Y)
	}

	want := G * body.Mass / ((10 + Softening) * (10 + Softening))
	if math.Abs(a.Length()-want) > 1e-12 {
		t.Errorf("|acceleration| = %v, expected %v", a.Length(), want)
	}
}

func TestAccelerationAt_SoftenedMagnitude(t *testing.T) {
	// The softening term is added to the raw distance before squaring.
	// (r + 10)^2, not r^2 + 100: at r = 10 those differ by a factor of 2.
	body := Body{Position: Vector2D{X: 10, Y: 0}, Mass: 50, Radius: 1}
	a := AccelerationAt(Vector2D{}, []Body{body})

	correct := G * 50 / math.Pow(10+Softening, 2)
	wrong := G * 50 / (10*10 + Softening*Softening)
	if math.Abs(a.Length()-correct) > 1e-12 {
		t.Errorf("|acceleration| = %v, expected %v", a.Length(), correct)
	}
	if math.Abs(a.Length()-wrong) < 1e-12 {
		t.Error("acceleration matches the unsoftened-sum form, expected (r+s)^2 form")
	}
}

func TestAccelerationAt_FiniteAtZeroDistance(t *testing.T) {
	body := Body{Position: Vector2D{X: 5, Y: 5}, Mass: 1000, Radius: 2}
	a := AccelerationAt(Vector2D{X: 5, Y: 5}, []Body{body})

	if math.IsNaN(a.X) || math.IsNaN(a.Y) || math.IsInf(a.X, 0) || math.IsInf(a.Y, 0) {
		t.Errorf("acceleration at body center = %v, expected finite", a)
	}
	// Zero displacement normalizes to the zero vector, so the force
	// degenerates to zero rather than diverging.
	if a.X != 0 || a.Y != 0 {
		t.Errorf("acceleration at body center = %v, expected zero", a)
	}
}

func TestAccelerationAt_MonotonicallyDecreasing(t *testing.T) {
	body := Body{Position: Vector2D{}, Mass: 200, Radius: 4}
	prev := math.Inf(1)
	for r := 0.5; r < 100; r += 0.5 {
		a := AccelerationAt(Vector2D{X: r, Y: 0}, []Body{body})
		mag := a.Length()
		if mag >= prev {
			t.Fatalf("|acceleration| at r=%v is %v, expected < %v (monotonic decrease)", r, mag, prev)
		}
		prev = mag
	}
}

func TestAccelerationAt_SummationOrderPreserved(t *testing.T) {
	// Floating point addition is not associative; the field sums in body
	// list order so that repeated evaluation is bit-identical.
	bodies := []Body{
		{Position: Vector2D{X: 17.3, Y: -4.1}, Mass: 123.456, Radius: 2},
		{Position: Vector2D{X: -9.9, Y: 31.2}, Mass: 0.001, Radius: 1},
		{Position: Vector2D{X: 3.3, Y: 3.3}, Mass: 9999.9, Radius: 5},
	}
	point := Vector2D{X: 1.5, Y: -2.5}

	first := AccelerationAt(point, bodies)
	for i := 0; i < 100; i++ {
		again := AccelerationAt(point, bodies)
		if again != first {
			t.Fatalf("AccelerationAt() not reproducible: %v vs %v", again, first)
		}
	}
}

func TestRect_Exceeds(t *testing.T) {
	bounds := Bounds(55, 45)
	tests := []struct {
		name    string
		point   Vector2D
		exceeds bool
	}{
		{name: "origin", point: Vector2D{}, exceeds: false},
		{name: "on_x_edge", point: Vector2D{X: 55, Y: 0}, exceeds: false},
		{name: "past_x_edge", point: Vector2D{X: 55.01, Y: 0}, exceeds: true},
		{name: "past_negative_y", point: Vector2D{X: 0, Y: -45.01}, exceeds: true},
		{name: "corner_inside", point: Vector2D{X: -55, Y: 45}, exceeds: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bounds.Exceeds(tt.point); got != tt.exceeds {
				t.Errorf("Exceeds(%v) = %v, expected %v", tt.point, got, tt.exceeds)
			}
		})
	}
}

func TestCircle_Collides(t *testing.T) {
	a := Circle{Center: Vector2D{}, Radius: 2}
	b := Circle{Center: Vector2D{X: 3, Y: 0}, Radius: 2}
	c := Circle{Center: Vector2D{X: 10, Y: 0}, Radius: 2}

	if !a.Collides(b) {
		t.Error("expected overlapping circles to collide")
	}
	if a.Collides(c) {
		t.Error("expected distant circles not to collide")
	}
}

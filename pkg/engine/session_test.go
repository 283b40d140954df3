// pkg/engine/session_test.go
package engine

import (
	"testing"

	"github.com/opd-ai/go-slingshot/pkg/physics"
)

func testVec(x, y float64) physics.Vector2D {
	return physics.Vector2D{X: x, Y: y}
}

func TestSession_AttemptsLifecycle(t *testing.T) {
	s := NewSession()
	if s.Attempts() != 0 {
		t.Fatalf("fresh session attempts = %d, expected 0", s.Attempts())
	}

	s.RecordEntry()
	s.RecordEntry()
	if s.Attempts() != 2 {
		t.Errorf("attempts = %d, expected 2", s.Attempts())
	}

	s.ResetAttempts()
	if s.Attempts() != 0 {
		t.Errorf("attempts after reset = %d, expected 0", s.Attempts())
	}
}

func TestSession_CompletedSet(t *testing.T) {
	s := NewSession()

	s.Complete(3)
	s.Complete(1)
	s.Complete(3) // idempotent

	if !s.IsCompleted(3) || !s.IsCompleted(1) {
		t.Error("completed levels not reported as completed")
	}
	if s.IsCompleted(0) {
		t.Error("unplayed level reported as completed")
	}

	got := s.Completed()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Completed() = %v, expected [1 3]", got)
	}
}

func TestRun_TrailEviction(t *testing.T) {
	r := newRun(testVec(0, 0))
	for i := 0; i < TrailLimit+25; i++ {
		r.Position = testVec(float64(i), 0)
		r.recordTrail()
	}

	trail := r.Trail()
	if len(trail) != TrailLimit {
		t.Fatalf("trail length = %d, expected %d", len(trail), TrailLimit)
	}
	// Oldest entries evicted first: the trail holds the most recent
	// TrailLimit positions in order.
	if trail[0].X != 25 {
		t.Errorf("oldest trail point x = %v, expected 25", trail[0].X)
	}
	if trail[len(trail)-1].X != float64(TrailLimit+24) {
		t.Errorf("newest trail point x = %v, expected %d", trail[len(trail)-1].X, TrailLimit+24)
	}
}

func TestRun_TrailReturnsCopy(t *testing.T) {
	r := newRun(testVec(0, 0))
	r.Position = testVec(1, 1)
	r.recordTrail()

	out := r.Trail()
	out[0] = testVec(-99, -99)

	if r.Trail()[0] != testVec(1, 1) {
		t.Error("mutating the returned trail changed run state")
	}
}

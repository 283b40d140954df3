// pkg/engine/run.go
package engine

import (
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// Phase is the current stage of a run. Physics integration happens only
// in PhaseFlying; aiming and previews only in PhaseAiming.
type Phase int

const (
	PhaseAiming Phase = iota
	PhaseFlying
	PhaseSuccess
	PhaseFailed
)

// String returns the phase name for logs and UI.
func (p Phase) String() string {
	switch p {
	case PhaseAiming:
		return "aiming"
	case PhaseFlying:
		return "flying"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended.
func (p Phase) Terminal() bool {
	return p == PhaseSuccess || p == PhaseFailed
}

// AimState is the transient aim while the pointer is held down.
// Discarded on release.
type AimState struct {
	Power float64 // pull distance, clamped to [0, MaxPower]
	Angle float64 // radians, pointer toward craft (slingshot pull)
}

// Run is the mutable state of one attempt at a level, from entry or
// retry to a terminal phase. Exactly one run is authoritative at a time.
type Run struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Phase    Phase
	Ticks    uint64
	trail    []physics.Vector2D
}

// newRun creates a fresh run with the craft resting at the start point.
func newRun(start physics.Vector2D) *Run {
	return &Run{
		Position: start,
		Phase:    PhaseAiming,
		trail:    make([]physics.Vector2D, 0, TrailLimit),
	}
}

// recordTrail appends the current position, evicting the oldest point
// once the trail is full.
func (r *Run) recordTrail() {
	if len(r.trail) == TrailLimit {
		copy(r.trail, r.trail[1:])
		r.trail = r.trail[:TrailLimit-1]
	}
	r.trail = append(r.trail, r.Position)
}

// Trail returns the recent craft positions in chronological order.
func (r *Run) Trail() []physics.Vector2D {
	out := make([]physics.Vector2D, len(r.trail))
	copy(out, r.trail)
	return out
}

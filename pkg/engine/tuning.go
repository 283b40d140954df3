// pkg/engine/tuning.go
package engine

import "github.com/opd-ai/go-slingshot/pkg/physics"

// Gameplay tuning. These are fixed by feel, not configuration: the
// flight step is the authoritative simulation rate, and the launch
// multiplier maps drawn pull distance to launch speed.
const (
	FlightStep            = 0.016 // seconds per flight tick (~60 Hz)
	MaxPower              = 30.0  // aim pull clamp
	MinLaunchPower        = 2.0   // pulls at or below this are cancelled gestures
	LaunchPowerMultiplier = 0.5   // pull distance to launch speed
	CraftRadius           = 0.5   // collision margin: the live craft has size
	GoalCaptureFactor     = 1.2   // capture distance as a multiple of the goal radius
	TrailLimit            = 100   // most recent craft positions kept for display
)

// flightBounds is the live play area. Narrower than the preview bounds:
// a flight fails where the preview merely stops drawing.
var flightBounds = physics.Bounds(55, 45)

// pkg/engine/game.go
package engine

import (
	"context"

	"github.com/opd-ai/go-slingshot/pkg/event"
	"github.com/opd-ai/go-slingshot/pkg/level"
	"github.com/opd-ai/go-slingshot/pkg/logging"
	"github.com/opd-ai/go-slingshot/pkg/physics"
	"github.com/opd-ai/go-slingshot/pkg/trajectory"
)

// Game sequences aiming, flight, success and failure for one player
// working through a level catalog. All methods are synchronous and the
// struct is not safe for concurrent use: one goroutine owns the tick
// loop and the pointer events, matching the single-threaded cooperative
// model of the original game loop.
type Game struct {
	EventBus *event.Bus

	catalog *level.Catalog
	logger  *logging.Logger
	ctx     context.Context

	levelIndex int
	current    level.Level
	run        *Run
	session    *Session

	tracking  bool
	aim       *AimState
	predicted []physics.Vector2D
}

// NewGame creates a game over the given catalog. Call StartGame to
// enter the first level.
func NewGame(catalog *level.Catalog) *Game {
	logger := logging.NewLogger()
	return &Game{
		EventBus: event.NewEventBus(),
		catalog:  catalog,
		logger:   logger,
		ctx:      logging.WithCorrelationID(context.Background(), ""),
		session:  NewSession(),
	}
}

// StartGame enters the first level with a fresh run.
func (g *Game) StartGame() {
	g.enterLevel(0, true)
}

// SelectLevel jumps directly to the chosen level with a fresh run and
// resets the attempts counter for that level. The index must be in
// range; presentation validates indices before calling.
func (g *Game) SelectLevel(index int) {
	g.enterLevel(index, true)
}

// Retry restarts the current level with a fresh run. The attempts
// counter keeps counting: a retry is another entry of the same level.
func (g *Game) Retry() {
	g.enterLevel(g.levelIndex, false)
}

// NextLevel advances past a completed level. It returns false when the
// current level is the last one, leaving the caller to exit to its menu
// context; the run is unchanged in that case.
func (g *Game) NextLevel() bool {
	if g.run == nil || g.run.Phase != PhaseSuccess {
		return true
	}
	if g.levelIndex+1 >= g.catalog.Count() {
		g.EventBus.Publish(&event.BaseEvent{EventType: event.GameFinished, Source: g})
		return false
	}
	g.enterLevel(g.levelIndex+1, true)
	return true
}

// enterLevel replaces the authoritative run. Any aim state and preview
// from the previous run are discarded outright.
func (g *Game) enterLevel(index int, freshLevel bool) {
	g.current = g.catalog.Level(index)
	g.levelIndex = index
	g.run = newRun(g.current.Start)
	g.tracking = false
	g.aim = nil
	g.predicted = nil

	if freshLevel {
		g.session.ResetAttempts()
	}
	g.session.RecordEntry()

	g.logger.Debug(g.ctx, "level entered",
		"level", index,
		"name", g.current.Name,
		"attempts", g.session.Attempts(),
	)
	g.EventBus.Publish(event.NewLevelEvent(
		event.LevelStarted, g, index, g.current.Name, g.session.Attempts(),
	))
}

// PointerDown begins aim tracking. Only meaningful while aiming.
func (g *Game) PointerDown() {
	if g.run == nil || g.run.Phase != PhaseAiming {
		return
	}
	g.tracking = true
}

// PointerMove updates the aim from the pointer's world position and
// recomputes the trajectory preview. The pull works like a slingshot:
// the launch points from the pointer back toward the craft.
func (g *Game) PointerMove(world physics.Vector2D) {
	if g.run == nil || g.run.Phase != PhaseAiming || !g.tracking {
		return
	}

	pull := g.run.Position.Sub(world)
	power := pull.Length()
	if power > MaxPower {
		power = MaxPower
	}
	g.aim = &AimState{Power: power, Angle: pull.Angle()}

	vel := physics.FromAngle(g.aim.Angle, g.aim.Power*LaunchPowerMultiplier)
	g.predicted = trajectory.Predict(g.run.Position, vel, g.current.Bodies, g.current.Goal)
}

// PointerUp releases the aim. A pull above the launch threshold becomes
// a flight; anything weaker is a cancelled gesture and the run stays in
// the aiming phase. The aim state is discarded either way.
func (g *Game) PointerUp() {
	if g.run == nil || !g.tracking {
		return
	}
	g.tracking = false
	aim := g.aim
	g.aim = nil
	g.predicted = nil

	if aim == nil || aim.Power <= MinLaunchPower {
		g.EventBus.Publish(&event.BaseEvent{EventType: event.LaunchCanceled, Source: g})
		return
	}

	g.run.Velocity = physics.FromAngle(aim.Angle, aim.Power*LaunchPowerMultiplier)
	g.run.Phase = PhaseFlying

	g.logger.Debug(g.ctx, "craft launched",
		"power", aim.Power,
		"angle", aim.Angle,
	)
	g.EventBus.Publish(event.NewLaunchEvent(g, aim.Power, aim.Angle))
}

// Update advances the authoritative run by one fixed flight tick.
// Outside the flying phase it is a no-op, so once a run terminates no
// further physics applies until the next entry or retry. Collision,
// goal and bounds checks run in that priority order; at most one phase
// transition happens per tick.
func (g *Game) Update() {
	if g.run == nil || g.run.Phase != PhaseFlying {
		return
	}
	run := g.run

	// Collision first, against the craft's own radius. A colliding tick
	// applies no position or velocity update.
	for _, body := range g.current.Bodies {
		if run.Position.Distance(body.Position) < body.Radius+CraftRadius {
			g.endFlight(PhaseFailed, event.OutcomeCollision)
			return
		}
	}

	accel := physics.AccelerationAt(run.Position, g.current.Bodies)
	run.Velocity = run.Velocity.Add(accel.Scale(FlightStep))
	run.Position = run.Position.Add(run.Velocity.Scale(FlightStep))
	run.recordTrail()
	run.Ticks++

	if run.Position.Distance(g.current.Goal) < GoalCaptureFactor*physics.GoalRadius {
		g.session.Complete(g.levelIndex)
		g.endFlight(PhaseSuccess, event.OutcomeGoal)
		return
	}

	if flightBounds.Exceeds(run.Position) {
		g.endFlight(PhaseFailed, event.OutcomeLost)
	}
}

// endFlight applies the terminal phase and publishes the outcome.
func (g *Game) endFlight(phase Phase, outcome event.FlightOutcome) {
	g.run.Phase = phase

	g.logger.Debug(g.ctx, "flight ended",
		"level", g.levelIndex,
		"outcome", string(outcome),
		"ticks", g.run.Ticks,
	)
	g.EventBus.Publish(event.NewFlightEvent(g, g.levelIndex, outcome, g.run.Ticks))
	if phase == PhaseSuccess {
		g.EventBus.Publish(event.NewLevelEvent(
			event.LevelCompleted, g, g.levelIndex, g.current.Name, g.session.Attempts(),
		))
	}
}

// Read-only state polled by the presentation layer each frame.

// Phase returns the current run phase.
func (g *Game) Phase() Phase {
	return g.run.Phase
}

// CraftPosition returns the craft's current position.
func (g *Game) CraftPosition() physics.Vector2D {
	return g.run.Position
}

// CraftVelocity returns the craft's current velocity.
func (g *Game) CraftVelocity() physics.Vector2D {
	return g.run.Velocity
}

// Trail returns the recent craft positions, oldest first.
func (g *Game) Trail() []physics.Vector2D {
	return g.run.Trail()
}

// Aim returns the current aim state, or false when no drag is active.
func (g *Game) Aim() (AimState, bool) {
	if g.aim == nil {
		return AimState{}, false
	}
	return *g.aim, true
}

// PredictedTrajectory returns the preview polyline for the active drag,
// or nil outside an aiming drag.
func (g *Game) PredictedTrajectory() []physics.Vector2D {
	return g.predicted
}

// CurrentLevel returns a copy of the level being played.
func (g *Game) CurrentLevel() level.Level {
	return g.current.Clone()
}

// LevelIndex returns the index of the level being played.
func (g *Game) LevelIndex() int {
	return g.levelIndex
}

// LevelCount returns the number of levels in the catalog.
func (g *Game) LevelCount() int {
	return g.catalog.Count()
}

// Attempts returns the entry count for the current level.
func (g *Game) Attempts() int {
	return g.session.Attempts()
}

// CompletedLevels returns the completed level indices in ascending order.
func (g *Game) CompletedLevels() []int {
	return g.session.Completed()
}

// IsCompleted reports whether the given level has been completed this
// session.
func (g *Game) IsCompleted(index int) bool {
	return g.session.IsCompleted(index)
}

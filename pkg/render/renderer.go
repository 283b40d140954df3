// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-slingshot/pkg/engine"
	"github.com/opd-ai/go-slingshot/pkg/logging"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// Renderer is the drawing surface the game state is mirrored onto every
// frame. The core never holds renderable handles; renderers poll typed
// state and own everything visual.
type Renderer interface {
	Clear()
	RenderBody(body physics.Body)
	RenderGoal(goal physics.Vector2D)
	RenderCraft(position, velocity physics.Vector2D)
	RenderTrail(points []physics.Vector2D)
	RenderPreview(points []physics.Vector2D)
	Present()
}

// RenderFrame draws one complete frame of the game onto a renderer.
func RenderFrame(r Renderer, g *engine.Game) {
	r.Clear()

	lvl := g.CurrentLevel()
	for _, body := range lvl.Bodies {
		r.RenderBody(body)
	}
	r.RenderGoal(lvl.Goal)
	r.RenderTrail(g.Trail())
	if preview := g.PredictedTrajectory(); preview != nil {
		r.RenderPreview(preview)
	}
	r.RenderCraft(g.CraftPosition(), g.CraftVelocity())

	r.Present()
}

// NullRenderer is a no-op Renderer that logs what it is asked to draw.
// Useful for headless runs and tests.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called")
}

// RenderBody implements Renderer.
func (d *NullRenderer) RenderBody(body physics.Body) {
	d.logger.Debug(context.Background(), "RenderBody called",
		"x", body.Position.X,
		"y", body.Position.Y,
		"radius", body.Radius,
	)
}

// RenderGoal implements Renderer.
func (d *NullRenderer) RenderGoal(goal physics.Vector2D) {
	d.logger.Debug(context.Background(), "RenderGoal called",
		"x", goal.X,
		"y", goal.Y,
	)
}

// RenderCraft implements Renderer.
func (d *NullRenderer) RenderCraft(position, velocity physics.Vector2D) {
	d.logger.Debug(context.Background(), "RenderCraft called",
		"x", position.X,
		"y", position.Y,
		"speed", velocity.Length(),
	)
}

// RenderTrail implements Renderer.
func (d *NullRenderer) RenderTrail(points []physics.Vector2D) {
	d.logger.Debug(context.Background(), "RenderTrail called", "points", len(points))
}

// RenderPreview implements Renderer.
func (d *NullRenderer) RenderPreview(points []physics.Vector2D) {
	d.logger.Debug(context.Background(), "RenderPreview called", "points", len(points))
}

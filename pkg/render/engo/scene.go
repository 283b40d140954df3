// Package engo renders the game with the Engo engine: an ECS scene
// that steps the simulation at its fixed tick and mirrors the polled
// game state onto drawable entities.
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	gameengine "github.com/opd-ai/go-slingshot/pkg/engine"
	"github.com/opd-ai/go-slingshot/pkg/event"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// GameScene is the single Engo scene: playfield, input and HUD.
type GameScene struct {
	game *gameengine.Game

	renderer *SceneRenderer
	input    *InputSystem
	hud      *HUDSystem
}

// NewGameScene creates the scene for a game. The game must not have
// been started; Setup enters the first level.
func NewGameScene(game *gameengine.Game) *GameScene {
	return &GameScene{game: game}
}

// Type returns the scene type (required by Engo).
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo).
func (scene *GameScene) Preload() {
	SetupInputBindings()
}

// Setup wires the ECS systems and enters the first level.
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)
	world.AddSystem(&common.MouseSystem{})

	scene.renderer = NewSceneRenderer(renderSystem)

	scene.input = NewInputSystem(scene.game, scene.renderer)
	world.AddSystem(scene.input)

	scene.hud = NewHUDSystem(scene.game)
	world.AddSystem(scene.hud)

	world.AddSystem(&simulationSystem{
		game:     scene.game,
		renderer: scene.renderer,
	})

	// Level geometry is rebuilt whenever a level is entered, whether
	// by start, retry or selection.
	scene.game.EventBus.Subscribe(event.LevelStarted, func(e event.Event) {
		scene.renderer.SyncLevel(scene.game.CurrentLevel())
	})

	scene.game.StartGame()
}

// Exit is called when the scene is exiting (required by Engo).
func (scene *GameScene) Exit() {}

// simulationSystem advances the game at its fixed flight tick,
// accumulating frame time, then mirrors the dynamic state onto the
// renderer.
type simulationSystem struct {
	game     *gameengine.Game
	renderer *SceneRenderer

	accumulator float32
}

// Add satisfies the ecs.System interface.
func (s *simulationSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (s *simulationSystem) Remove(basic ecs.BasicEntity) {}

// Update steps the simulation and syncs the renderer.
func (s *simulationSystem) Update(dt float32) {
	s.accumulator += dt
	step := float32(gameengine.FlightStep)
	for s.accumulator >= step {
		s.game.Update()
		s.accumulator -= step
	}

	s.renderer.SyncCraft(s.game.CraftPosition())
	s.renderer.SyncTrail(s.game.Trail())
	s.renderer.SyncPreview(s.game.PredictedTrajectory())
	s.renderer.SyncAim(aimLine(s.game))
}

// aimLine samples the pull vector as dots from the craft back toward
// the pointer, or nil when no drag is active.
func aimLine(game *gameengine.Game) []physics.Vector2D {
	aim, ok := game.Aim()
	if !ok || aim.Power == 0 {
		return nil
	}
	start := game.CraftPosition()
	pull := physics.FromAngle(aim.Angle, aim.Power)

	n := int(aim.Power) + 1
	points := make([]physics.Vector2D, 0, n)
	for i := 1; i <= n; i++ {
		points = append(points, start.Sub(pull.Scale(float64(i)/float64(n))))
	}
	return points
}

// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	gameengine "github.com/opd-ai/go-slingshot/pkg/engine"
)

// Button binding names.
const (
	buttonRetry = "retry"
	buttonNext  = "next"
	buttonQuit  = "quit"
)

var levelButtons = []string{"level1", "level2", "level3", "level4", "level5", "level6", "level7", "level8", "level9"}

// InputSystem turns Engo mouse and keyboard state into game commands.
// Dragging from anywhere on the field aims the slingshot; R retries,
// N advances after a success, number keys jump between levels.
type InputSystem struct {
	game     *gameengine.Game
	renderer *SceneRenderer

	dragging bool
}

// NewInputSystem creates an input system driving the given game.
func NewInputSystem(game *gameengine.Game, renderer *SceneRenderer) *InputSystem {
	return &InputSystem{
		game:     game,
		renderer: renderer,
	}
}

// Add satisfies the ecs.System interface.
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update processes one frame of input.
func (is *InputSystem) Update(dt float32) {
	is.handleMouse()
	is.handleKeys()
}

func (is *InputSystem) handleMouse() {
	mouse := engo.Input.Mouse
	world := is.renderer.ScreenToWorld(mouse.X, mouse.Y)

	switch mouse.Action {
	case engo.Press:
		if mouse.Button == engo.MouseButtonLeft {
			is.dragging = true
			is.game.PointerDown()
			is.game.PointerMove(world)
		}
	case engo.Move:
		if is.dragging {
			is.game.PointerMove(world)
		}
	case engo.Release:
		if mouse.Button == engo.MouseButtonLeft && is.dragging {
			is.dragging = false
			is.game.PointerMove(world)
			is.game.PointerUp()
		}
	}
}

func (is *InputSystem) handleKeys() {
	if engo.Input.Button(buttonRetry).JustPressed() {
		is.dragging = false
		is.game.Retry()
	}
	if engo.Input.Button(buttonNext).JustPressed() && is.game.Phase() == gameengine.PhaseSuccess {
		is.dragging = false
		if !is.game.NextLevel() {
			engo.Exit()
		}
	}
	if engo.Input.Button(buttonQuit).JustPressed() {
		engo.Exit()
	}
	for i, name := range levelButtons {
		if i >= is.game.LevelCount() {
			break
		}
		if engo.Input.Button(name).JustPressed() {
			is.dragging = false
			is.game.SelectLevel(i)
		}
	}
}

// SetupInputBindings registers the key bindings used by the game.
// Call once before engo.Run.
func SetupInputBindings() {
	engo.Input.RegisterButton(buttonRetry, engo.KeyR)
	engo.Input.RegisterButton(buttonNext, engo.KeyN, engo.KeyEnter)
	engo.Input.RegisterButton(buttonQuit, engo.KeyQ, engo.KeyEscape)

	keys := []engo.Key{
		engo.KeyOne, engo.KeyTwo, engo.KeyThree,
		engo.KeyFour, engo.KeyFive, engo.KeySix,
		engo.KeySeven, engo.KeyEight, engo.KeyNine,
	}
	for i, name := range levelButtons {
		engo.Input.RegisterButton(name, keys[i])
	}
}

// pkg/render/engo/hud.go
package engo

import (
	"fmt"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	gameengine "github.com/opd-ai/go-slingshot/pkg/engine"
)

// HUDSystem surfaces the game status through the window title: level
// name and position, attempts, phase, and the level hint after a
// failure. The title is only touched when the line changes.
type HUDSystem struct {
	game *gameengine.Game

	lastLine string
}

// NewHUDSystem creates a HUD bound to the given game.
func NewHUDSystem(game *gameengine.Game) *HUDSystem {
	return &HUDSystem{game: game}
}

// Add satisfies the ecs.System interface.
func (hud *HUDSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {}

// Update refreshes the status line.
func (hud *HUDSystem) Update(dt float32) {
	line := hud.statusLine()
	if line == hud.lastLine {
		return
	}
	hud.lastLine = line
	engo.SetTitle(line)
}

// statusLine composes the one-line status for the current game state.
func (hud *HUDSystem) statusLine() string {
	lvl := hud.game.CurrentLevel()
	line := fmt.Sprintf("Slingshot | %s (%d/%d) | attempts %d | %s",
		lvl.Name,
		hud.game.LevelIndex()+1,
		hud.game.LevelCount(),
		hud.game.Attempts(),
		hud.game.Phase(),
	)

	switch hud.game.Phase() {
	case gameengine.PhaseSuccess:
		if hud.game.LevelIndex()+1 < hud.game.LevelCount() {
			line += " | press N for next level"
		} else {
			line += " | all levels complete"
		}
	case gameengine.PhaseFailed:
		if lvl.Hint != "" {
			line += " | hint: " + lvl.Hint
		}
		line += " | press R to retry"
	}
	return line
}

// cmd/slingshot-term/main.go
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-slingshot/pkg/config"
	"github.com/opd-ai/go-slingshot/pkg/engine"
	"github.com/opd-ai/go-slingshot/pkg/level"
	"github.com/opd-ai/go-slingshot/pkg/render"
)

func main() {
	cfg, err := config.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to load level catalog: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	game := engine.NewGame(catalog)
	game.StartGame()

	renderer := render.NewTerminalRenderer(screen, cfg.WorldScale)
	runLoop(screen, renderer, game)
}

// loadCatalog loads the YAML catalog when a path is configured,
// falling back to the built-in levels.
func loadCatalog(cfg *config.EnvironmentConfig) (*level.Catalog, error) {
	if cfg.LevelsPath == "" {
		return level.DefaultCatalog(), nil
	}
	return level.LoadCatalog(cfg.LevelsPath)
}

// runLoop polls terminal events on one goroutine and drives the fixed
// simulation tick on the main one.
func runLoop(screen tcell.Screen, renderer *render.TerminalRenderer, game *engine.Game) {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			events <- ev
		}
	}()

	// One simulation step per frame at the flight tick rate.
	ticker := time.NewTicker(time.Duration(engine.FlightStep * float64(time.Second)))
	defer ticker.Stop()

	dragging := false
	for {
		select {
		case <-quit:
			return
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if !handleKey(ev, game) {
					return
				}
			case *tcell.EventMouse:
				dragging = handleMouse(ev, renderer, game, dragging)
			}
		case <-ticker.C:
			game.Update()
			render.RenderFrame(renderer, game)
			renderer.DrawStatus(statusLine(game))
			renderer.Present()
		}
	}
}

// handleKey applies a key event. It returns false when the game should
// exit.
func handleKey(ev *tcell.EventKey, game *engine.Game) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}
	switch r := ev.Rune(); {
	case r == 'q':
		return false
	case r == 'r':
		game.Retry()
	case r == 'n':
		if game.Phase() == engine.PhaseSuccess && !game.NextLevel() {
			return false
		}
	case r >= '1' && r <= '9':
		if index := int(r - '1'); index < game.LevelCount() {
			game.SelectLevel(index)
		}
	}
	return true
}

// handleMouse maps mouse state onto pointer input and returns the new
// dragging state.
func handleMouse(ev *tcell.EventMouse, renderer *render.TerminalRenderer, game *engine.Game, dragging bool) bool {
	x, y := ev.Position()
	world := renderer.ScreenToWorld(x, y)
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !dragging:
		game.PointerDown()
		game.PointerMove(world)
	case pressed && dragging:
		game.PointerMove(world)
	case !pressed && dragging:
		game.PointerMove(world)
		game.PointerUp()
	}
	return pressed
}

// statusLine composes the HUD line for the current game state.
func statusLine(game *engine.Game) string {
	lvl := game.CurrentLevel()
	line := fmt.Sprintf("%s (%d/%d)  attempts %d  %s",
		lvl.Name,
		game.LevelIndex()+1,
		game.LevelCount(),
		game.Attempts(),
		game.Phase(),
	)
	switch game.Phase() {
	case engine.PhaseSuccess:
		line += "  [n] next level"
	case engine.PhaseFailed:
		if lvl.Hint != "" {
			line += "  hint: " + lvl.Hint
		}
		line += "  [r] retry"
	default:
		line += "  drag to aim, release to launch  [r]etry [n]ext [q]uit"
	}
	return line
}

// cmd/simulate/main.go
//
// Headless runner: fires one shot at a level and reports the outcome
// as JSON. Useful for tuning levels without a display.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math"
	"os"

	"github.com/opd-ai/go-slingshot/pkg/engine"
	"github.com/opd-ai/go-slingshot/pkg/event"
	"github.com/opd-ai/go-slingshot/pkg/level"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// maxTicks caps a flight that never terminates on its own, such as a
// stable orbit inside bounds.
const maxTicks = 60000

type result struct {
	Level    int     `json:"level"`
	Name     string  `json:"name"`
	Angle    float64 `json:"angle_degrees"`
	Power    float64 `json:"power"`
	Outcome  string  `json:"outcome"`
	Ticks    uint64  `json:"ticks"`
	FinalX   float64 `json:"final_x"`
	FinalY   float64 `json:"final_y"`
	Launched bool    `json:"launched"`
}

func main() {
	levelIndex := flag.Int("level", 0, "Level index to play")
	angle := flag.Float64("angle", 0, "Launch angle in degrees, counterclockwise from +x")
	power := flag.Float64("power", 20, "Pull strength, capped at the launch maximum")
	levelsPath := flag.String("levels", "", "Path to a YAML level catalog (built-in levels when empty)")
	flag.Parse()

	catalog := level.DefaultCatalog()
	if *levelsPath != "" {
		var err error
		catalog, err = level.LoadCatalog(*levelsPath)
		if err != nil {
			log.Fatalf("Failed to load level catalog: %v", err)
		}
	}
	if *levelIndex < 0 || *levelIndex >= catalog.Count() {
		log.Fatalf("Level index %d out of range (catalog has %d levels)", *levelIndex, catalog.Count())
	}

	game := engine.NewGame(catalog)

	res := result{
		Level: *levelIndex,
		Angle: *angle,
		Power: *power,
	}
	game.EventBus.Subscribe(event.FlightEnded, func(e event.Event) {
		if fe, ok := e.(*event.FlightEvent); ok {
			res.Outcome = string(fe.Outcome)
			res.Ticks = fe.Ticks
		}
	})

	game.SelectLevel(*levelIndex)
	res.Name = game.CurrentLevel().Name
	res.Launched = launch(game, *angle, *power)

	if res.Launched {
		for i := 0; i < maxTicks && game.Phase() == engine.PhaseFlying; i++ {
			game.Update()
		}
		if game.Phase() == engine.PhaseFlying {
			res.Outcome = "timeout"
			res.Ticks = maxTicks
		}
	} else {
		res.Outcome = "not_launched"
	}

	pos := game.CraftPosition()
	res.FinalX = pos.X
	res.FinalY = pos.Y

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
}

// launch drives the pointer through a full drag gesture: the pull
// vector points opposite the desired launch direction, as if drawing
// back a slingshot. It reports whether a flight actually started.
func launch(game *engine.Game, angleDegrees, power float64) bool {
	angle := angleDegrees * math.Pi / 180
	start := game.CraftPosition()
	pointer := start.Sub(physics.FromAngle(angle, power))

	game.PointerDown()
	game.PointerMove(pointer)
	game.PointerUp()

	return game.Phase() == engine.PhaseFlying
}

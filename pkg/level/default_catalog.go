// pkg/level/default_catalog.go
package level

import (
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// DefaultCatalog returns the built-in level set. The layouts here are
// known-good and skip validation.
func DefaultCatalog() *Catalog {
	return &Catalog{levels: []Level{
		{
			Name:        "First Launch",
			Description: "Empty space between you and the portal.",
			Hint:        "Pull straight back and let go.",
			Start:       physics.Vector2D{X: -20, Y: 0},
			Goal:        physics.Vector2D{X: 20, Y: 0},
		},
		{
			Name:        "Slingshot",
			Description: "One planet sits off your line. Use its pull.",
			Hint:        "Aim wide and let gravity bend you in.",
			Start:       physics.Vector2D{X: -25, Y: -10},
			Goal:        physics.Vector2D{X: 25, Y: 12},
			Bodies: []physics.Body{
				{Position: physics.Vector2D{X: 0, Y: 0}, Mass: 320, Radius: 4},
			},
		},
		{
			Name:        "The Wall",
			Description: "A planet blocks the direct shot.",
			Hint:        "Over or under, not through.",
			Start:       physics.Vector2D{X: -28, Y: 0},
			Goal:        physics.Vector2D{X: 28, Y: 0},
			Bodies: []physics.Body{
				{Position: physics.Vector2D{X: 0, Y: 0}, Mass: 450, Radius: 6},
			},
		},
		{
			Name:        "Binary",
			Description: "Two planets share the middle of the field.",
			Hint:        "Thread the gap while both pull at you.",
			Start:       physics.Vector2D{X: -30, Y: -15},
			Goal:        physics.Vector2D{X: 30, Y: 15},
			Bodies: []physics.Body{
				{Position: physics.Vector2D{X: -6, Y: 8}, Mass: 260, Radius: 3.5},
				{Position: physics.Vector2D{X: 6, Y: -8}, Mass: 260, Radius: 3.5},
			},
		},
		{
			Name:        "Orbit Garden",
			Description: "Three planets, one narrow corridor.",
			Hint:        "A gentle launch survives longer than a hard one.",
			Start:       physics.Vector2D{X: -32, Y: 0},
			Goal:        physics.Vector2D{X: 32, Y: -5},
			Bodies: []physics.Body{
				{Position: physics.Vector2D{X: -12, Y: 10}, Mass: 200, Radius: 3},
				{Position: physics.Vector2D{X: 2, Y: -12}, Mass: 300, Radius: 4},
				{Position: physics.Vector2D{X: 16, Y: 9}, Mass: 220, Radius: 3},
			},
		},
		{
			Name:        "The Long Way Round",
			Description: "The portal hides behind a heavy planet.",
			Hint:        "Swing around the back side.",
			Start:       physics.Vector2D{X: -30, Y: 5},
			Goal:        physics.Vector2D{X: 14, Y: 0},
			Bodies: []physics.Body{
				{Position: physics.Vector2D{X: 4, Y: 2}, Mass: 600, Radius: 7},
			},
		},
	}}
}

// pkg/render/terminal.go
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// TerminalRenderer draws the playfield onto a tcell screen. World
// coordinates are mapped cell-for-cell around a fixed center; terminal
// cells are roughly twice as tall as wide, so the y axis is squashed by
// half to keep circles round.
type TerminalRenderer struct {
	screen tcell.Screen
	scale  float64 // world units per cell horizontally
	center physics.Vector2D
}

var (
	styleBody    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGoal    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCraft   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleTrail   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePreview = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

// NewTerminalRenderer creates a renderer over an initialized screen.
// Scale is world units per terminal cell.
func NewTerminalRenderer(screen tcell.Screen, scale float64) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		scale:  scale,
	}
}

// SetCenter sets the world position mapped to the middle of the screen.
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.center = pos
}

// worldToScreen converts world coordinates to screen cell coordinates.
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	width, height := r.screen.Size()
	x := int((pos.X-r.center.X)/r.scale + float64(width)/2)
	y := int((pos.Y-r.center.Y)/(r.scale*2) + float64(height)/2)
	return x, y
}

// ScreenToWorld converts a cell position back to world coordinates, for
// mapping mouse events onto pointer input.
func (r *TerminalRenderer) ScreenToWorld(x, y int) physics.Vector2D {
	width, height := r.screen.Size()
	return physics.Vector2D{
		X: (float64(x)-float64(width)/2)*r.scale + r.center.X,
		Y: (float64(y)-float64(height)/2)*r.scale*2 + r.center.Y,
	}
}

// Clear implements Renderer.
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}

// Present implements Renderer.
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// RenderBody implements Renderer: a filled disk of the body's radius.
func (r *TerminalRenderer) RenderBody(body physics.Body) {
	cx, cy := r.worldToScreen(body.Position)
	cellsX := int(math.Ceil(body.Radius / r.scale))
	cellsY := int(math.Ceil(body.Radius / (r.scale * 2)))
	for dy := -cellsY; dy <= cellsY; dy++ {
		for dx := -cellsX; dx <= cellsX; dx++ {
			wx := float64(dx) * r.scale
			wy := float64(dy) * r.scale * 2
			if wx*wx+wy*wy <= body.Radius*body.Radius {
				r.setContent(cx+dx, cy+dy, '#', styleBody)
			}
		}
	}
	r.setContent(cx, cy, 'O', styleBody)
}

// RenderGoal implements Renderer.
func (r *TerminalRenderer) RenderGoal(goal physics.Vector2D) {
	x, y := r.worldToScreen(goal)
	r.setContent(x-1, y, '(', styleGoal)
	r.setContent(x, y, 'G', styleGoal)
	r.setContent(x+1, y, ')', styleGoal)
}

// RenderCraft implements Renderer.
func (r *TerminalRenderer) RenderCraft(position, velocity physics.Vector2D) {
	x, y := r.worldToScreen(position)
	r.setContent(x, y, craftGlyph(velocity), styleCraft)
}

// craftGlyph points the craft along its velocity.
func craftGlyph(velocity physics.Vector2D) rune {
	if velocity.LengthSquared() == 0 {
		return '@'
	}
	angle := velocity.Angle()
	switch {
	case angle > -math.Pi/4 && angle <= math.Pi/4:
		return '>'
	case angle > math.Pi/4 && angle <= 3*math.Pi/4:
		return 'v'
	case angle > -3*math.Pi/4 && angle <= -math.Pi/4:
		return '^'
	default:
		return '<'
	}
}

// RenderTrail implements Renderer.
func (r *TerminalRenderer) RenderTrail(points []physics.Vector2D) {
	for _, p := range points {
		x, y := r.worldToScreen(p)
		r.setContent(x, y, '.', styleTrail)
	}
}

// RenderPreview implements Renderer.
func (r *TerminalRenderer) RenderPreview(points []physics.Vector2D) {
	for _, p := range points {
		x, y := r.worldToScreen(p)
		r.setContent(x, y, '*', stylePreview)
	}
}

// DrawStatus writes a one-line HUD at the top of the screen.
func (r *TerminalRenderer) DrawStatus(line string) {
	width, _ := r.screen.Size()
	for i := 0; i < width; i++ {
		r.setContent(i, 0, ' ', tcell.StyleDefault)
	}
	for i, ch := range line {
		if i >= width {
			break
		}
		r.setContent(i, 0, ch, tcell.StyleDefault)
	}
}

// setContent clips to the screen before writing a cell.
func (r *TerminalRenderer) setContent(x, y int, ch rune, style tcell.Style) {
	width, height := r.screen.Size()
	if x < 0 || x >= width || y < 0 || y >= height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

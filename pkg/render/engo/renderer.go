// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-slingshot/pkg/level"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// Drawing layers, back to front.
const (
	layerBodies float32 = iota
	layerGoal
	layerTrail
	layerPreview
	layerCraft
)

var (
	colorBody    = color.RGBA{230, 180, 60, 255}
	colorGoal    = color.RGBA{60, 220, 120, 255}
	colorCraft   = color.RGBA{240, 240, 240, 255}
	colorTrail   = color.RGBA{120, 120, 140, 255}
	colorPreview = color.RGBA{80, 200, 255, 255}
	colorAim     = color.RGBA{255, 120, 120, 255}
)

// visual ties one drawable entity to the components the render system
// holds for it, so per-frame updates can mutate them in place.
type visual struct {
	basic  ecs.BasicEntity
	render *common.RenderComponent
	space  *common.SpaceComponent
}

// SceneRenderer mirrors game state onto Engo entities. Level geometry
// is rebuilt on level entry; the craft, trail and preview are updated
// every frame from the polled game state.
type SceneRenderer struct {
	renderSystem *common.RenderSystem
	scale        float32 // pixels per world unit

	bodies  []*visual
	goal    *visual
	craft   *visual
	trail   []*visual
	preview []*visual
	aim     []*visual
}

// NewSceneRenderer creates a renderer bound to the scene's render
// system. The scale fits the playfield into the current window.
func NewSceneRenderer(renderSystem *common.RenderSystem) *SceneRenderer {
	scaleX := engo.GameWidth() / 130
	scaleY := engo.GameHeight() / 110
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	return &SceneRenderer{
		renderSystem: renderSystem,
		scale:        scale,
	}
}

// worldToScreen converts world coordinates to the window center frame.
func (r *SceneRenderer) worldToScreen(pos physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(pos.X)*r.scale + engo.GameWidth()/2,
		Y: float32(pos.Y)*r.scale + engo.GameHeight()/2,
	}
}

// ScreenToWorld converts a window position back to world coordinates,
// for mapping mouse events onto pointer input.
func (r *SceneRenderer) ScreenToWorld(x, y float32) physics.Vector2D {
	return physics.Vector2D{
		X: float64((x - engo.GameWidth()/2) / r.scale),
		Y: float64((y - engo.GameHeight()/2) / r.scale),
	}
}

// SyncLevel rebuilds the static level geometry.
func (r *SceneRenderer) SyncLevel(lvl level.Level) {
	r.removeAll()

	for _, body := range lvl.Bodies {
		v := r.addCircle(colorBody, float32(body.Radius)*r.scale, layerBodies)
		r.place(v, body.Position)
		r.bodies = append(r.bodies, v)
	}

	r.goal = r.addRing(colorGoal, float32(physics.GoalRadius)*r.scale, layerGoal)
	r.place(r.goal, lvl.Goal)

	r.craft = r.addCircle(colorCraft, craftDotRadius(r.scale), layerCraft)
	r.place(r.craft, lvl.Start)
}

// SyncCraft moves the craft entity to its current position.
func (r *SceneRenderer) SyncCraft(position physics.Vector2D) {
	if r.craft != nil {
		r.place(r.craft, position)
	}
}

// SyncTrail mirrors the flight trail as a pool of dot entities.
func (r *SceneRenderer) SyncTrail(points []physics.Vector2D) {
	r.syncDots(&r.trail, points, colorTrail, dotRadius(r.scale), layerTrail)
}

// SyncPreview mirrors the aim preview as a pool of dot entities.
func (r *SceneRenderer) SyncPreview(points []physics.Vector2D) {
	r.syncDots(&r.preview, points, colorPreview, dotRadius(r.scale)*1.4, layerPreview)
}

// SyncAim draws the slingshot pull as a dotted line from the craft back
// toward the pointer. An empty slice hides it.
func (r *SceneRenderer) SyncAim(points []physics.Vector2D) {
	r.syncDots(&r.aim, points, colorAim, dotRadius(r.scale), layerPreview)
}

// syncDots grows the pool as needed, positions one dot per point and
// hides the surplus. Pools avoid churning render system entities every
// frame.
func (r *SceneRenderer) syncDots(pool *[]*visual, points []physics.Vector2D, c color.RGBA, radius, layer float32) {
	for len(*pool) < len(points) {
		*pool = append(*pool, r.addCircle(c, radius, layer))
	}
	for i, v := range *pool {
		if i < len(points) {
			v.render.Hidden = false
			r.place(v, points[i])
		} else {
			v.render.Hidden = true
		}
	}
}

// place centers a visual's bounding box on a world position.
func (r *SceneRenderer) place(v *visual, pos physics.Vector2D) {
	screen := r.worldToScreen(pos)
	v.space.Position = engo.Point{
		X: screen.X - v.space.Width/2,
		Y: screen.Y - v.space.Height/2,
	}
}

// addCircle adds a filled circle entity of the given pixel radius.
func (r *SceneRenderer) addCircle(c color.RGBA, radius, layer float32) *visual {
	return r.add(common.Circle{}, c, radius, layer)
}

// addRing adds an outlined circle entity of the given pixel radius.
func (r *SceneRenderer) addRing(c color.RGBA, radius, layer float32) *visual {
	v := r.add(common.Circle{BorderWidth: 2, BorderColor: c}, color.RGBA{0, 0, 0, 0}, radius, layer)
	return v
}

func (r *SceneRenderer) add(drawable common.Drawable, c color.RGBA, radius, layer float32) *visual {
	v := &visual{
		basic: ecs.NewBasic(),
		render: &common.RenderComponent{
			Drawable: drawable,
			Color:    c,
		},
		space: &common.SpaceComponent{
			Width:  radius * 2,
			Height: radius * 2,
		},
	}
	v.render.SetZIndex(layer)
	r.renderSystem.Add(&v.basic, v.render, v.space)
	return v
}

// removeAll drops every entity this renderer owns.
func (r *SceneRenderer) removeAll() {
	remove := func(v *visual) {
		if v != nil {
			r.renderSystem.Remove(v.basic)
		}
	}
	for _, v := range r.bodies {
		remove(v)
	}
	for _, v := range r.trail {
		remove(v)
	}
	for _, v := range r.preview {
		remove(v)
	}
	for _, v := range r.aim {
		remove(v)
	}
	remove(r.goal)
	remove(r.craft)
	r.bodies = nil
	r.trail = nil
	r.preview = nil
	r.aim = nil
	r.goal = nil
	r.craft = nil
}

func dotRadius(scale float32) float32 {
	radius := scale * 0.25
	if radius < 1.5 {
		radius = 1.5
	}
	return radius
}

func craftDotRadius(scale float32) float32 {
	radius := scale * 0.8
	if radius < 4 {
		radius = 4
	}
	return radius
}

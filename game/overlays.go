package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/ui"
)

var (
	chaseColor  = rl.Color{R: 200, G: 60, B: 60, A: 160}
	targetColor = rl.Color{R: 255, G: 255, B: 255, A: 90}
	orbitColor  = rl.Color{R: 120, G: 90, B: 40, A: 160}
)

// drawFieldOverlays draws overlays that belong under the sprites.
func (g *Game) drawFieldOverlays() {
	if !g.hud.overlays.IsEnabled(ui.OverlayBoundary) {
		return
	}
	f := g.ground.Field()
	rl.DrawRectangleLines(
		int32(f.Boundary), int32(f.Boundary),
		int32(f.Width-2*f.Boundary), int32(f.Height-2*f.Boundary),
		rl.Color{R: 255, G: 255, B: 255, A: 120},
	)
}

// drawEntityOverlays draws per-entity overlays on top of the sprites.
func (g *Game) drawEntityOverlays() {
	reg := g.hud.overlays
	chase := reg.IsEnabled(ui.OverlayChaseRadius)
	targets := reg.IsEnabled(ui.OverlayTargets)
	boxes := reg.IsEnabled(ui.OverlaySpriteBoxes)
	if !chase && !targets && !boxes && !reg.IsEnabled(ui.OverlayDogOrbit) {
		return
	}

	radius := float32(g.ground.ChaseRadius())
	for _, v := range g.ground.Snapshot() {
		x, y := int32(v.Position.X), int32(v.Position.Y)
		if chase && v.Kind == components.KindWolf {
			rl.DrawCircleLines(x, y, radius, chaseColor)
		}
		if targets && v.Kind.Autonomous() {
			rl.DrawLine(x, y, int32(v.Target.X), int32(v.Target.Y), targetColor)
		}
		if boxes {
			rl.DrawRectangleLines(x, y, int32(v.W), int32(v.H), rl.Black)
		}
	}

	if reg.IsEnabled(ui.OverlayDogOrbit) {
		if s, ok := g.ground.Shepherd(); ok {
			r := g.dogOrbitRadius
			if r <= 0 {
				r = float64(s.W) / 2
			}
			rl.DrawCircleLines(int32(s.Position.X), int32(s.Position.Y), float32(r), orbitColor)
		}
	}
}

// inspectorData returns the selected entity, clearing the selection once
// the entity has left the ground.
func (g *Game) inspectorData() (ui.InspectorData, bool) {
	if g.hud.selected == 0 {
		return ui.InspectorData{}, false
	}
	for _, v := range g.ground.Snapshot() {
		if v.ID == g.hud.selected {
			return ui.InspectorData{
				View:     v,
				Lifetime: g.lifetimeTracker.Get(v.ID),
				Tick:     g.Tick(),
			}, true
		}
	}
	g.hud.selected = 0
	return ui.InspectorData{}, false
}

package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/ui"
)

// keyBindings maps raylib keys to shepherd directions.
var keyBindings = []struct {
	raylib int32
	key    systems.Key
}{
	{rl.KeyUp, systems.KeyUp},
	{rl.KeyW, systems.KeyUp},
	{rl.KeyDown, systems.KeyDown},
	{rl.KeyS, systems.KeyDown},
	{rl.KeyLeft, systems.KeyLeft},
	{rl.KeyA, systems.KeyLeft},
	{rl.KeyRight, systems.KeyRight},
	{rl.KeyD, systems.KeyRight},
}

// translateKeys turns key transitions since the last frame into input events.
func translateKeys(pressed, released func(key int32) bool) []systems.InputEvent {
	var events []systems.InputEvent
	for _, b := range keyBindings {
		if pressed(b.raylib) {
			events = append(events, systems.InputEvent{Key: b.key, Down: true})
		}
		if released(b.raylib) {
			events = append(events, systems.InputEvent{Key: b.key, Down: false})
		}
	}
	return events
}

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < maxStepsPerUpdate {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.hud.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.hud.showPerf = !g.hud.showPerf
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if id, on, ok := g.hud.overlays.HandleKeyPress(key); ok {
			slog.Debug("overlay toggled", "overlay", id, "enabled", on)
		}
	}

	// Inspector selection; clicks on the slider panel are left to raygui
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		if mouse.X < float32(rl.GetScreenWidth())-sliderPanelWidth-15 {
			g.selectAt(int(mouse.X), int(mouse.Y))
		}
	}

	for _, ev := range translateKeys(rl.IsKeyPressed, rl.IsKeyReleased) {
		g.ground.HandleInput(ev)
	}
}

// selectAt selects the entity under (x, y), or clears the selection.
func (g *Game) selectAt(x, y int) {
	g.hud.selected = 0
	if v, ok := ui.Pick(g.ground.Snapshot(), x, y); ok {
		g.hud.selected = v.ID
	}
}

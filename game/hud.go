package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/ui"
)

const (
	maxStepsPerUpdate = 10
	maxChaseRadius    = 400
	sliderPanelWidth  = 220

	controlsLegend = "[WASD/Arrows] Shepherd  [Space] Pause  [</>] Speed  [Tab] Overlays  [F3] Perf  [Click] Inspect"
)

// hud holds the panels and slider state of the graphical mode.
type hud struct {
	title       string
	chaseRadius float32

	main      *ui.HUD
	perf      *ui.PerfPanel
	controls  *ui.ControlsPanel
	inspector *ui.Inspector
	overlays  *ui.OverlayRegistry

	showPerf bool
	selected uint32 // entity ID; 0 = none
}

func newHUD(cfg *config.Config) *hud {
	return &hud{
		title:       cfg.Screen.Title,
		chaseRadius: float32(cfg.Predation.ChaseRadius),
		main:        ui.NewHUD(),
		perf:        ui.NewPerfPanel(10, 100),
		controls:    ui.NewControlsPanel(10, 100, 200),
		inspector:   ui.NewInspector(10, 100, 200),
		overlays:    ui.NewOverlayRegistry(),
	}
}

// drawHUD renders population counts, panels and the slider panel.
func (g *Game) drawHUD() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	counts := g.ground.Counts()
	lambs := 0
	for _, v := range g.ground.Growths() {
		if systems.StageFor(int(v)) == systems.StageLamb {
			lambs++
		}
	}
	g.hud.main.Draw(ui.HUDData{
		Title:  g.hud.title,
		Sheep:  counts[components.KindSheep],
		Lambs:  lambs,
		Wolves: counts[components.KindWolf],
		Tick:   g.Tick(),
		Speed:  g.stepsPerUpdate,
		FPS:    rl.GetFPS(),
		Paused: g.paused,
	})
	g.hud.main.DrawControls(screenH, controlsLegend)

	// Left column: controls, perf, inspector stacked
	y := int32(100)
	if g.hud.controls.IsVisible() {
		g.hud.controls.SetPosition(10, y)
		y = g.hud.controls.Draw(g.hud.overlays) + 10
	}
	if g.hud.showPerf {
		g.hud.perf.SetPosition(10, y)
		g.hud.perf.Draw(g.perfCollector.Stats())
		y += g.hud.perf.Height() + 10
	}
	if data, ok := g.inspectorData(); ok {
		g.hud.inspector.SetPosition(10, y)
		g.hud.inspector.Draw(data)
	}

	g.drawSliders(float32(screenW))
}

// drawSliders renders the raygui pause button and tuning sliders.
func (g *Game) drawSliders(screenW float32) {
	panelX := screenW - sliderPanelWidth - 10
	panelY := float32(10)
	rl.DrawRectangle(int32(panelX)-5, int32(panelY)-5, sliderPanelWidth+10, 150, rl.Color{R: 0, G: 0, B: 0, A: 140})

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 100, Height: 26}, toggleText(g.paused, "Resume", "Pause")) {
		g.paused = !g.paused
	}
	panelY += 40

	rl.DrawText(fmt.Sprintf("Steps per frame: %d", g.stepsPerUpdate), int32(panelX), int32(panelY), 14, rl.LightGray)
	panelY += 18
	steps := gui.SliderBar(
		rl.Rectangle{X: panelX + 20, Y: panelY, Width: sliderPanelWidth - 50, Height: 16},
		"1", fmt.Sprint(maxStepsPerUpdate),
		float32(g.stepsPerUpdate), 1, maxStepsPerUpdate,
	)
	if int(steps) != g.stepsPerUpdate {
		g.stepsPerUpdate = int(steps)
	}
	panelY += 30

	rl.DrawText(fmt.Sprintf("Chase radius: %.0f", g.hud.chaseRadius), int32(panelX), int32(panelY), 14, rl.LightGray)
	panelY += 18
	radius := gui.SliderBar(
		rl.Rectangle{X: panelX + 20, Y: panelY, Width: sliderPanelWidth - 50, Height: 16},
		"0", fmt.Sprint(maxChaseRadius),
		g.hud.chaseRadius, 0, maxChaseRadius,
	)
	if radius != g.hud.chaseRadius {
		g.hud.chaseRadius = radius
		g.ground.SetChaseRadius(float64(radius))
	}
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}

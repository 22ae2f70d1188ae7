package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pasture/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title  string
	Sheep  int
	Lambs  int
	Wolves int
	Tick   int64
	Speed  int
	FPS    int32
	Paused bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Sheep: %d (lambs %d) | Wolves: %d", data.Sheep, data.Lambs, data.Wolves),
		10, 35, 16, rl.RayWhite,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", data.Tick, data.Speed, data.FPS),
		10, 55, 16, rl.RayWhite,
	)

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 75, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.LightGray)
}

// PerfPanel renders the tick phase timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

var perfPhases = []string{telemetry.PhaseUpdate, telemetry.PhaseInteract, telemetry.PhaseCompact, telemetry.PhaseTelemetry}

// Height returns the panel height.
func (p *PerfPanel) Height() int32 {
	t := p.renderer.Theme
	return t.Padding*2 + t.LineHeight*int32(len(perfPhases)+3)
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	phases := perfPhases
	r.DrawPanel(p.x, p.y, 200, p.Height())

	x := p.x + r.Theme.Padding
	y := p.y + r.Theme.Padding
	y = r.DrawSectionHeader(x, y, "Tick Performance")
	y = r.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%s (%.0f/s)", stats.AvgTickDuration.Round(time.Microsecond), stats.TicksPerSecond))
	y = r.DrawLabelValue(x, y, "p95", stats.P95TickDuration.Round(time.Microsecond).String())

	for _, name := range phases {
		pct := stats.PhasePct[name]
		color := r.Theme.LabelColor
		if pct > 50 {
			color = rl.Orange
		}
		rl.DrawText(fmt.Sprintf("%-10s %8s %5.1f%%", name, stats.PhaseAvg[name].Round(time.Microsecond), pct),
			x, y, r.Theme.FontSize, color)
		y += r.Theme.LineHeight
	}
}

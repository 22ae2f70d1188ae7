// Package game hosts the pasture: it owns the window, textures, keyboard
// input and telemetry around a ground.Ground.
package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pasture/assets"
	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/ground"
	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/telemetry"
)

// Options configures a Game beyond what config.Cfg() provides.
type Options struct {
	Seed           int64  // 0 = entropy source
	LogStats       bool   // log window and perf stats via slog
	OutputDir      string // CSV and config output (empty = disabled)
	Headless       bool   // no window, textures or drawing
	StepsPerUpdate int    // ticks per Update call
	Sheep          int    // initial sheep (<0 = config)
	Wolves         int    // initial wolves (<0 = config)
}

// Game holds the engine and everything the host keeps around it.
type Game struct {
	ground  *ground.Ground
	catalog *assets.Catalog

	// Graphics; nil when headless
	sheet *spriteSheet
	frame *frameRenderer
	hud   *hud

	// Telemetry
	collector        *telemetry.Collector
	lifetimeTracker  *telemetry.LifetimeTracker
	bookmarkDetector *telemetry.BookmarkDetector
	perfCollector    *telemetry.PerfCollector
	outputManager    *telemetry.OutputManager
	logStats         bool
	statsCallback    func(telemetry.WindowStats)

	paused         bool
	stepsPerUpdate int
	headless       bool
	dogOrbitRadius float64
}

// NewGame builds a game from the global config. In graphical mode the window
// must already be open; a missing or unreadable sprite is an error.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		catalog:          assets.NewCatalog(cfg.Sprites),
		collector:        telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		lifetimeTracker:  telemetry.NewLifetimeTracker(),
		bookmarkDetector: telemetry.NewBookmarkDetector(cfg.Bookmarks),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:         opts.LogStats,
		stepsPerUpdate:   steps,
		headless:         opts.Headless,
		dogOrbitRadius:   cfg.Dog.OrbitRadius,
	}

	if !opts.Headless {
		sheet, err := loadSpriteSheet(g.catalog)
		if err != nil {
			return nil, fmt.Errorf("loading sprites: %w", err)
		}
		g.sheet = sheet
		g.frame = &frameRenderer{}
		g.hud = newHUD(cfg)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		g.Unload()
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		g.Unload()
		return nil, fmt.Errorf("writing config: %w", err)
	}

	gopts := ground.OptionsFromConfig(cfg)
	gopts.Sprites = g.catalog
	gopts.Events = eventFanout{g.collector, g.lifetimeTracker}
	gopts.Phases = g.perfCollector
	if opts.Seed != 0 {
		gopts.Source = systems.NewSeededSource(opts.Seed)
	}
	if g.frame != nil {
		gopts.Renderer = g.frame
	}
	g.ground = ground.New(gopts)

	sheep, wolves := cfg.Population.Sheep, cfg.Population.Wolves
	if opts.Sheep >= 0 {
		sheep = opts.Sheep
	}
	if opts.Wolves >= 0 {
		wolves = opts.Wolves
	}
	g.ground.Populate(sheep, wolves, cfg.Population.Shepherd)
	for _, v := range g.ground.Snapshot() {
		g.lifetimeTracker.Register(v.ID, v.Kind, g.ground.CurrentTick())
	}

	slog.Info("pasture populated",
		"sheep", g.ground.Count(components.KindSheep),
		"wolves", g.ground.Count(components.KindWolf),
		"shepherd", cfg.Population.Shepherd,
		"headless", opts.Headless,
	)

	return g, nil
}

// Update handles input and runs stepsPerUpdate ticks unless paused.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless runs stepsPerUpdate ticks without polling input.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step runs one tick with perf timing and telemetry.
func (g *Game) step() {
	g.perfCollector.StartTick()
	if g.frame != nil {
		g.frame.Reset()
	}

	g.ground.Tick()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
	g.perfCollector.EndTick()
}

// Draw renders the last tick's sprites and the HUD.
func (g *Game) Draw() {
	if g.headless {
		return
	}
	g.perfCollector.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(pastureGreen)

	g.drawFieldOverlays()
	g.frame.Replay(g.sheet)
	g.drawEntityOverlays()
	g.drawHUD()

	rl.EndDrawing()
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int64 {
	return g.ground.CurrentTick()
}

// Ground returns the engine.
func (g *Game) Ground() *ground.Ground {
	return g.ground
}

// SetStatsCallback registers a function called with every flushed window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Unload releases textures and closes output files.
func (g *Game) Unload() {
	if g.sheet != nil {
		g.sheet.Unload()
		g.sheet = nil
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	g.outputManager = nil
}

package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = entropy)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	period := flag.Float64("period", 0, "Stop after this many seconds at the target frame rate (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")
	sheep := flag.Int("sheep", -1, "Initial sheep (-1 = config)")
	wolves := flag.Int("wolves", -1, "Initial wolves (-1 = config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	limit := tickLimit(*maxTicks, *period, cfg.Screen.TargetFPS)

	opts := game.Options{
		Seed:           *seed,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
		Sheep:          *sheep,
		Wolves:         *wolves,
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		g, err := game.NewGame(opts)
		if err != nil {
			slog.Error("failed to start", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless simulation",
			"seed", *seed,
			"max_ticks", limit,
			"steps_per_update", *stepsPerUpdate,
		)

		for {
			g.UpdateHeadless()

			if limit > 0 && g.Tick() >= limit {
				slog.Info("max ticks reached", "tick", g.Tick())
				return
			}
		}
	}

	// Graphical mode
	rl.InitWindow(cfg.Derived.ScreenW, cfg.Derived.ScreenH, cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(opts)
	if err != nil {
		rl.CloseWindow()
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if limit > 0 && g.Tick() >= limit {
			break
		}
	}
}

// tickLimit combines -max-ticks and -period (seconds at fps ticks per
// second) into one limit; the smaller wins and 0 means unlimited. Any
// positive period runs at least one tick.
func tickLimit(maxTicks int64, period float64, fps int) int64 {
	if period <= 0 {
		return maxTicks
	}
	periodTicks := max(int64(period*float64(fps)), 1)
	if maxTicks == 0 || periodTicks < maxTicks {
		return periodTicks
	}
	return maxTicks
}

package game

import (
	"log/slog"

	"github.com/pthm-cable/pasture/telemetry"
)

// eventFanout forwards every engine event to the window collector and the
// lifetime tracker.
type eventFanout struct {
	collector *telemetry.Collector
	lifetime  *telemetry.LifetimeTracker
}

func (f eventFanout) Record(ev telemetry.Event) {
	f.collector.Record(ev)
	f.lifetime.Record(ev)
}

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	tick := g.ground.CurrentTick()
	if !g.collector.ShouldFlush(tick) {
		return
	}

	stats := g.collector.Flush(tick, g.ground.Counts(), g.ground.Growths())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		slog.Info("perf", "window_end", stats.WindowEndTick, "stats", perfStats)
		if id, hunter, ok := g.lifetimeTracker.TopHunter(); ok {
			slog.Info("top hunter",
				"wolf_id", id,
				"kills", hunter.Kills,
				"chases", hunter.Chases,
				"age_ticks", tick-hunter.BirthTick,
			)
		}
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

package telemetry

import "github.com/pthm-cable/pasture/components"

// Collector accumulates events within tick windows and produces WindowStats.
// It satisfies the engine's event sink.
type Collector struct {
	windowDurationTicks int64

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	births       int
	birthsCapped int
	kills        int
	chases       int
	chaseDistSum float64

	// Totals over the whole run
	totalBirths int
	totalKills  int
}

// NewCollector creates a new stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowDurationTicks: int64(windowTicks)}
}

// Record counts a single event.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventChase:
		c.chases++
		c.chaseDistSum += ev.Distance
	case EventKill:
		c.kills++
		c.totalKills++
	case EventBirth:
		c.births++
		c.totalBirths++
	case EventBirthCapped:
		c.birthsCapped++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// counts holds the population per kind at window end; growth holds the
// growth percentage of every living sheep.
func (c *Collector) Flush(currentTick int64, counts [components.NumKinds]int, growth []float64) WindowStats {
	sheep := counts[components.KindSheep]
	wolves := counts[components.KindWolf]

	var chaseDistMean, killsPerWolf float64
	if c.chases > 0 {
		chaseDistMean = c.chaseDistSum / float64(c.chases)
	}
	if wolves > 0 {
		killsPerWolf = float64(c.kills) / float64(wolves)
	}

	gs := ComputeGrowthStats(growth)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Sheep:  sheep,
		Wolves: wolves,
		Lambs:  gs.Immature,

		Births:       c.births,
		BirthsCapped: c.birthsCapped,
		Kills:        c.kills,
		Chases:       c.chases,

		ChaseDistMean: chaseDistMean,
		KillsPerWolf:  killsPerWolf,

		GrowthMean:     gs.Mean,
		GrowthStd:      gs.Std,
		GrowthP10:      gs.P10,
		GrowthP50:      gs.P50,
		GrowthP90:      gs.P90,
		MatureFraction: gs.MatureFraction,

		TotalBirths: c.totalBirths,
		TotalKills:  c.totalKills,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.births = 0
	c.birthsCapped = 0
	c.kills = 0
	c.chases = 0
	c.chaseDistSum = 0

	return stats
}

// Totals returns births and kills over the whole run.
func (c *Collector) Totals() (births, kills int) {
	return c.totalBirths, c.totalKills
}

package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int64 `csv:"-"`
	WindowEndTick   int64 `csv:"window_end"`

	// Population counts at window end
	Sheep  int `csv:"sheep"`
	Wolves int `csv:"wolves"`
	Lambs  int `csv:"lambs"` // sheep below full growth

	// Events during window
	Births       int `csv:"births"`
	BirthsCapped int `csv:"births_capped"`
	Kills        int `csv:"kills"`
	Chases       int `csv:"chases"` // wolf/sheep pairs in chase range, summed over ticks

	// Hunting
	ChaseDistMean float64 `csv:"chase_dist_mean"`
	KillsPerWolf  float64 `csv:"kills_per_wolf"`

	// Growth distribution (sampled at window end)
	GrowthMean     float64 `csv:"growth_mean"`
	GrowthStd      float64 `csv:"growth_std"`
	GrowthP10      float64 `csv:"growth_p10"`
	GrowthP50      float64 `csv:"growth_p50"`
	GrowthP90      float64 `csv:"growth_p90"`
	MatureFraction float64 `csv:"mature_fraction"`

	// Run totals
	TotalBirths int `csv:"total_births"`
	TotalKills  int `csv:"total_kills"`
}

// GrowthStats summarizes the growth percentages of a flock.
type GrowthStats struct {
	Mean, Std      float64
	P10, P50, P90  float64
	Immature       int
	MatureFraction float64
}

// Percentile returns the p-th empirical quantile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	switch {
	case p <= 0:
		return sorted[0]
	case p >= 1:
		return sorted[len(sorted)-1]
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeGrowthStats calculates mean, spread and percentiles of growth values.
func ComputeGrowthStats(values []float64) GrowthStats {
	n := len(values)
	if n == 0 {
		return GrowthStats{}
	}

	var gs GrowthStats
	if n == 1 {
		gs.Mean = values[0]
	} else {
		gs.Mean, gs.Std = stat.MeanStdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	gs.P10 = Percentile(sorted, 0.10)
	gs.P50 = Percentile(sorted, 0.50)
	gs.P90 = Percentile(sorted, 0.90)

	var mature int
	for _, v := range values {
		if v >= 100 {
			mature++
		}
	}
	gs.Immature = n - mature
	gs.MatureFraction = float64(mature) / float64(n)

	return gs
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Int("sheep", s.Sheep),
		slog.Int("wolves", s.Wolves),
		slog.Int("lambs", s.Lambs),
		slog.Int("births", s.Births),
		slog.Int("births_capped", s.BirthsCapped),
		slog.Int("kills", s.Kills),
		slog.Int("chases", s.Chases),
		slog.Float64("chase_dist_mean", s.ChaseDistMean),
		slog.Float64("kills_per_wolf", s.KillsPerWolf),
		slog.Float64("growth_mean", s.GrowthMean),
		slog.Float64("growth_std", s.GrowthStd),
		slog.Float64("growth_p50", s.GrowthP50),
		slog.Float64("mature_fraction", s.MatureFraction),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sheep", s.Sheep,
		"wolves", s.Wolves,
		"lambs", s.Lambs,
		"births", s.Births,
		"births_capped", s.BirthsCapped,
		"kills", s.Kills,
		"chases", s.Chases,
		"chase_dist_mean", s.ChaseDistMean,
		"kills_per_wolf", s.KillsPerWolf,
		"growth_mean", s.GrowthMean,
		"growth_std", s.GrowthStd,
		"growth_p10", s.GrowthP10,
		"growth_p50", s.GrowthP50,
		"growth_p90", s.GrowthP90,
		"mature_fraction", s.MatureFraction,
		"total_births", s.TotalBirths,
		"total_kills", s.TotalKills,
	)
}

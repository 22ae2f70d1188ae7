package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/ground"
	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/telemetry"
)

// FitnessEvaluator runs headless pastures and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int64
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	bestFitness float64
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the results from a single run.
type runResult struct {
	survivalTicks int64                   // ticks until the flock died out (or maxTicks)
	windowStats   []telemetry.WindowStats // one entry per stats window
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	fitness float64
	quality float64
}

// Evaluate computes fitness for raw parameter values (lower = better).
// Every seed runs on its own ground in its own goroutine.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)
	target := flockTarget(cfg)

	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			result := fe.runSimulation(cfg, s)
			quality := computeQuality(result.windowStats, target)
			results[idx] = seedResult{
				fitness: computeFitness(result.survivalTicks, quality),
				quality: quality,
			}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
	}
	n := float64(len(fe.seeds))
	avgFitness := totalFitness / n

	fe.mu.Lock()
	if avgFitness < fe.bestFitness {
		fe.bestFitness = avgFitness
	}
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return avgFitness
}

// runSimulation runs one pasture until the flock dies out or maxTicks.
// cfg is only read.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) *runResult {
	opts := ground.OptionsFromConfig(cfg)
	opts.Source = systems.NewSeededSource(seed)
	collector := telemetry.NewCollector(cfg.Telemetry.StatsWindow)
	opts.Events = collector

	g := ground.New(opts)
	g.Populate(cfg.Population.Sheep, cfg.Population.Wolves, false)

	result := &runResult{survivalTicks: fe.maxTicks}
	for g.CurrentTick() < fe.maxTicks {
		g.Tick()
		tick := g.CurrentTick()

		if collector.ShouldFlush(tick) {
			result.windowStats = append(result.windowStats, collector.Flush(tick, g.Counts(), g.Growths()))
		}
		if g.Count(components.KindSheep) == 0 {
			result.survivalTicks = tick
			break
		}
	}
	return result
}

// copyConfig returns a copy of the base config that a run may modify.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// flockTarget is the flock size a healthy pasture settles around.
func flockTarget(cfg *config.Config) float64 {
	if cfg.Population.MaxSheep > 0 {
		return float64(cfg.Population.MaxSheep) / 2
	}
	return float64(4 * max(cfg.Population.Sheep, 1))
}

// computeFitness calculates the scalar fitness (lower = better).
// Formula: -(survivalTicks × (1.0 + 0.2 × quality))
func computeFitness(survivalTicks int64, quality float64) float64 {
	return -(float64(survivalTicks) * (1.0 + 0.2*quality))
}

// Quality component weights.
const (
	qualityWeightSize      = 0.50
	qualityWeightStability = 0.30
	qualityWeightHunting   = 0.20

	qualityWarmupWindows = 2 // skip first N windows
)

// computeQuality scores a run in [0, 1] from its window stats: a flock near
// target, a steady flock, and wolves that still catch sheep.
func computeQuality(windows []telemetry.WindowStats, target float64) float64 {
	if len(windows) <= qualityWarmupWindows || target <= 0 {
		return 0
	}

	var sizeSum, huntSum float64
	var huntCount int
	flock := make([]float64, 0, len(windows))

	for _, w := range windows[qualityWarmupWindows:] {
		if w.Sheep == 0 {
			continue
		}
		flock = append(flock, float64(w.Sheep))

		logErr := math.Log(float64(w.Sheep) / target)
		sizeSum += math.Exp(-logErr * logErr)

		if w.Wolves > 0 {
			huntSum += 1 - math.Exp(-w.KillsPerWolf)
			huntCount++
		}
	}

	if len(flock) == 0 {
		return 0
	}

	sizeScore := sizeSum / float64(len(flock))

	stabilityScore := 0.0
	if len(flock) >= 2 {
		c := cv(flock)
		stabilityScore = math.Exp(-c * c)
	}

	huntScore := 0.0
	if huntCount > 0 {
		huntScore = huntSum / float64(huntCount)
	}

	quality := qualityWeightSize*sizeScore +
		qualityWeightStability*stabilityScore +
		qualityWeightHunting*huntScore

	return math.Max(0, math.Min(1, quality))
}

// cv computes the coefficient of variation (std/mean) for a slice of values.
func cv(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean, std := stat.MeanStdDev(values, nil)
	if mean == 0 {
		return 0
	}
	return std / mean
}

package systems

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/pasture/components"
)

// Source produces uniform integers in a closed range.
type Source interface {
	// IntRange returns a uniform integer in [min, max]. Requires min <= max.
	IntRange(min, max int) int
}

// EntropySource draws every value independently from the package-level
// generator, which the runtime seeds at startup. It keeps no stream of its own.
type EntropySource struct{}

// IntRange implements Source.
func (EntropySource) IntRange(min, max int) int {
	checkRange(min, max)
	return min + rand.Intn(max-min+1)
}

// SeededSource is a deterministic Source for tests and reproducible runs.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a deterministic source from seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

// IntRange implements Source.
func (s *SeededSource) IntRange(min, max int) int {
	checkRange(min, max)
	return min + s.rng.Intn(max-min+1)
}

func checkRange(min, max int) {
	if min > max {
		panic(fmt.Sprintf("systems: empty sample range [%d, %d]", min, max))
	}
}

// SpawnCoordinate samples a spawn coordinate within [boundary, extent - boundary].
func SpawnCoordinate(src Source, f Field, axis Axis) int {
	return src.IntRange(f.Min(axis), f.Max(axis))
}

// SpawnPosition samples a spawn point on both axes.
func SpawnPosition(src Source, f Field) components.Position {
	return components.Position{
		X: SpawnCoordinate(src, f, Horizontal),
		Y: SpawnCoordinate(src, f, Vertical),
	}
}

// WanderTarget samples a coordinate within radius of current along axis.
// Bounds that would cross the field boundary are pinned to it, so repeated
// draws form a bounded random walk.
func WanderTarget(src Source, f Field, current, radius int, axis Axis) int {
	if radius < 0 {
		panic(fmt.Sprintf("systems: negative wander radius %d", radius))
	}
	lo := current - radius
	if lo <= f.Min(axis) {
		lo = f.Min(axis)
	}
	hi := current + radius
	if hi >= f.Max(axis) {
		hi = f.Max(axis)
	}
	// A position outside the field (e.g. placed by hand) collapses onto the edge.
	if lo > hi {
		lo, hi = f.Clamp(axis, lo), f.Clamp(axis, hi)
		if lo > hi {
			lo, hi = hi, lo
		}
	}
	return src.IntRange(lo, hi)
}

// WanderPoint samples a fresh target around pos on both axes.
func WanderPoint(src Source, f Field, pos components.Position, radius int) components.Target {
	return components.Target{
		X: WanderTarget(src, f, pos.X, radius, Horizontal),
		Y: WanderTarget(src, f, pos.Y, radius, Vertical),
	}
}

// RandomSex returns true for female with probability one half.
func RandomSex(src Source) bool {
	return src.IntRange(0, 1) == 1
}

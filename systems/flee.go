package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/pasture/components"
)

// FleeTarget returns a point distance units from prey, directly away from
// predator. Each axis is clamped so the prey sprite stays on the field and
// inside the boundary. Coincident positions flee along +X.
func FleeTarget(f Field, predator, prey components.Position, size components.Appearance, distance float64) components.Target {
	from := vec(predator)
	at := vec(prey)
	away := r2.Sub(at, from)
	bearing := math.Atan2(away.Y, away.X)

	dst := r2.Add(at, r2.Scale(distance, r2.Vec{X: math.Cos(bearing), Y: math.Sin(bearing)}))

	return components.Target{
		X: fleeClamp(f, Horizontal, int(math.Round(dst.X)), size.W),
		Y: fleeClamp(f, Vertical, int(math.Round(dst.Y)), size.H),
	}
}

// fleeClamp pins v into [max(0, boundary), min(extent-size, extent-boundary)].
func fleeClamp(f Field, axis Axis, v, size int) int {
	lo := max(0, f.Min(axis))
	hi := min(f.Extent(axis)-size, f.Max(axis))
	if hi < lo {
		hi = lo
	}
	return clampInt(v, lo, hi)
}

package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/pasture/components"
)

// OrbitStep advances the dog around its master by angularSpeed radians and
// places it radius units from the master's position. A radius <= 0 uses half
// the master's width. The result keeps the dog sprite on the field.
func OrbitStep(o *components.Orbit, pos *components.Position, master components.Position,
	masterSize, self components.Appearance, f Field, angularSpeed, radius float64) {
	o.Angle = normalizeHeading(o.Angle + angularSpeed)
	if radius <= 0 {
		radius = float64(masterSize.W) / 2
	}

	at := r2.Add(vec(master), r2.Scale(radius, r2.Vec{X: math.Cos(o.Angle), Y: math.Sin(o.Angle)}))
	pos.X = f.ClampEdge(Horizontal, int(math.Round(at.X)), self.W)
	pos.Y = f.ClampEdge(Vertical, int(math.Round(at.Y)), self.H)
}

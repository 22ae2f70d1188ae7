package systems

import "fmt"

// Axis selects a field dimension.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// String returns the axis name.
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Field describes the bounded area entities live on.
// Autonomous entities keep Boundary units away from every edge.
type Field struct {
	Width    int
	Height   int
	Boundary int
}

// Validate rejects a field no entity could live on.
func (f Field) Validate() error {
	if f.Width <= 0 || f.Height <= 0 || f.Boundary < 0 ||
		2*f.Boundary > f.Width || 2*f.Boundary > f.Height {
		return fmt.Errorf("invalid field %dx%d boundary %d", f.Width, f.Height, f.Boundary)
	}
	return nil
}

// Extent returns the field size along axis.
func (f Field) Extent(axis Axis) int {
	if axis == Horizontal {
		return f.Width
	}
	return f.Height
}

// Min returns the lowest coordinate an autonomous entity may occupy.
func (f Field) Min(Axis) int {
	return f.Boundary
}

// Max returns the highest coordinate an autonomous entity may occupy.
func (f Field) Max(axis Axis) int {
	return f.Extent(axis) - f.Boundary
}

// Clamp pins v into [Min(axis), Max(axis)].
func (f Field) Clamp(axis Axis, v int) int {
	return clampInt(v, f.Min(axis), f.Max(axis))
}

// ClampEdge pins v into [0, extent - size], keeping a sprite of the
// given size fully on the field.
func (f Field) ClampEdge(axis Axis, v, size int) int {
	hi := f.Extent(axis) - size
	if hi < 0 {
		hi = 0
	}
	return clampInt(v, 0, hi)
}

package systems

import "github.com/pthm-cable/pasture/components"

// AdvanceTowardTarget steps pos by speed toward target on each axis independently.
// There is no overshoot correction: near the target the position may land past
// it by up to speed-1 units.
func AdvanceTowardTarget(pos *components.Position, target components.Target, speed int) {
	switch {
	case pos.X < target.X:
		pos.X += speed
	case pos.X > target.X:
		pos.X -= speed
	}
	switch {
	case pos.Y < target.Y:
		pos.Y += speed
	case pos.Y > target.Y:
		pos.Y -= speed
	}
}

// ReachedTarget reports whether pos is within speed of target on both axes.
func ReachedTarget(pos components.Position, target components.Target, speed int) bool {
	return absInt(pos.X-target.X) <= speed && absInt(pos.Y-target.Y) <= speed
}

// Wander advances an autonomous entity, clamps it to the field and draws a
// fresh target around the clamped position once it arrives.
func Wander(src Source, f Field, pos *components.Position, target *components.Target, speed, radius int) {
	AdvanceTowardTarget(pos, *target, speed)
	ClampToField(f, pos)
	if ReachedTarget(*pos, *target, speed) {
		*target = WanderPoint(src, f, *pos, radius)
	}
}

// ClampToField pins pos into [boundary, extent - boundary] on both axes.
func ClampToField(f Field, pos *components.Position) {
	pos.X = f.Clamp(Horizontal, pos.X)
	pos.Y = f.Clamp(Vertical, pos.Y)
}

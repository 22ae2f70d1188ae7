package components

// Position represents an entity's field position in whole units.
type Position struct {
	X, Y int
}

// Target is the point an entity is currently walking toward.
type Target struct {
	X, Y int
}

// Motion holds the per-axis step size of an entity.
type Motion struct {
	Speed int // units per tick per axis
}

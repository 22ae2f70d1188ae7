package systems

import "github.com/pthm-cable/pasture/components"

// Key is a movement key the shepherd responds to.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "none"
	}
}

// InputEvent is a key press (Down) or release delivered by the host.
type InputEvent struct {
	Key  Key
	Down bool
}

// ShepherdController turns held movement keys into shepherd steps.
type ShepherdController struct {
	step int
	held [KeyRight + 1]bool
}

// NewShepherdController creates a controller moving step units per held key.
func NewShepherdController(step int) *ShepherdController {
	if step < 0 {
		panic("systems: negative shepherd step")
	}
	return &ShepherdController{step: step}
}

// HandleInput records a key transition. Unknown keys are ignored.
func (c *ShepherdController) HandleInput(ev InputEvent) {
	if ev.Key == KeyNone || int(ev.Key) >= len(c.held) {
		return
	}
	c.held[ev.Key] = ev.Down
}

// Held reports whether k is currently pressed.
func (c *ShepherdController) Held(k Key) bool {
	if int(k) >= len(c.held) {
		return false
	}
	return c.held[k]
}

// Step moves pos once per held direction and keeps the sprite on the field.
// Opposite keys cancel out.
func (c *ShepherdController) Step(pos *components.Position, size components.Appearance, f Field) {
	if c.held[KeyUp] {
		pos.Y -= c.step
	}
	if c.held[KeyDown] {
		pos.Y += c.step
	}
	if c.held[KeyLeft] {
		pos.X -= c.step
	}
	if c.held[KeyRight] {
		pos.X += c.step
	}
	pos.X = f.ClampEdge(Horizontal, pos.X, size.W)
	pos.Y = f.ClampEdge(Vertical, pos.Y, size.H)
}

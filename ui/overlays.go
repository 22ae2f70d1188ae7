package ui

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID names a toggleable overlay.
type OverlayID string

const (
	OverlayBoundary    OverlayID = "boundary"
	OverlayChaseRadius OverlayID = "chase_radius"
	OverlayDogOrbit    OverlayID = "dog_orbit"
	OverlayTargets     OverlayID = "targets"
	OverlaySpriteBoxes OverlayID = "sprite_boxes"
)

// Overlay categories, in display order.
const (
	CategoryField = "field"
	CategoryDebug = "debug"
)

// OverlayDescriptor describes one overlay and the key that toggles it.
type OverlayDescriptor struct {
	ID       OverlayID
	Name     string
	Key      int32  // raylib key, 0 = none
	KeyLabel string // shown in the controls panel
	Category string
	On       bool // initial state
}

// pastureOverlays is the built-in overlay set.
var pastureOverlays = []OverlayDescriptor{
	{ID: OverlayBoundary, Name: "Boundary", Key: rl.KeyB, KeyLabel: "B", Category: CategoryField},
	{ID: OverlayChaseRadius, Name: "Chase Radius", Key: rl.KeyC, KeyLabel: "C", Category: CategoryField},
	{ID: OverlayDogOrbit, Name: "Dog Orbit", Key: rl.KeyO, KeyLabel: "O", Category: CategoryField},
	{ID: OverlayTargets, Name: "Targets", Key: rl.KeyT, KeyLabel: "T", Category: CategoryDebug},
	{ID: OverlaySpriteBoxes, Name: "Sprite Boxes", Key: rl.KeyX, KeyLabel: "X", Category: CategoryDebug},
}

// OverlayRegistry tracks which overlays are switched on.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry returns a registry holding the built-in overlays.
func NewOverlayRegistry() *OverlayRegistry {
	r := &OverlayRegistry{enabled: make(map[OverlayID]bool)}
	for _, d := range pastureOverlays {
		r.Register(d)
	}
	return r
}

// Register appends an overlay. Registering an existing ID replaces its
// descriptor and resets its state.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	for i := range r.descriptors {
		if r.descriptors[i].ID == desc.ID {
			r.descriptors[i] = desc
			r.enabled[desc.ID] = desc.On
			return
		}
	}
	r.descriptors = append(r.descriptors, desc)
	r.enabled[desc.ID] = desc.On
}

// Toggle flips an overlay and returns its new state. Unknown IDs stay off.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, known := r.enabled[id]; !known {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// IsEnabled reports whether an overlay is on.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns the overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// ByCategory returns the overlays of one category in registration order.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var out []OverlayDescriptor
	for _, d := range r.descriptors {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// Categories returns each category once, in first-seen order.
func (r *OverlayRegistry) Categories() []string {
	var cats []string
	for _, d := range r.descriptors {
		if !slices.Contains(cats, d.Category) {
			cats = append(cats, d.Category)
		}
	}
	return cats
}

// HandleKeyPress toggles the overlay bound to key. ok is false when no
// overlay uses the key.
func (r *OverlayRegistry) HandleKeyPress(key int32) (id OverlayID, on, ok bool) {
	for _, d := range r.descriptors {
		if d.Key != 0 && d.Key == key {
			return d.ID, r.Toggle(d.ID), true
		}
	}
	return "", false, false
}

// EnabledOverlays returns the IDs that are on, in registration order.
func (r *OverlayRegistry) EnabledOverlays() []OverlayID {
	var out []OverlayID
	for _, d := range r.descriptors {
		if r.enabled[d.ID] {
			out = append(out, d.ID)
		}
	}
	return out
}

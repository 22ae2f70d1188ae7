// Package assets maps entity kinds and growth stages to sprites.
package assets

import (
	"path/filepath"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/systems"
)

// Slot is one distinct sprite image.
type Slot uint8

const (
	SlotLamb Slot = iota
	SlotYoung
	SlotJuvenile
	SlotSheep
	SlotWolf
	SlotShepherd
	SlotDog

	// NumSlots is the number of sprite slots; keep it last.
	NumSlots
)

var slotNames = [NumSlots]string{"lamb", "young", "juvenile", "sheep", "wolf", "shepherd", "dog"}

// String returns the slot name.
func (s Slot) String() string {
	if s < NumSlots {
		return slotNames[s]
	}
	return "unknown"
}

// SlotFor returns the sprite slot for a kind at a growth stage.
// Only sheep change sprite with their stage; adolescents already use the adult sheep.
func SlotFor(kind components.Kind, stage systems.GrowthStage) Slot {
	switch kind {
	case components.KindWolf:
		return SlotWolf
	case components.KindShepherd:
		return SlotShepherd
	case components.KindShepherdDog:
		return SlotDog
	}
	switch stage {
	case systems.StageLamb:
		return SlotLamb
	case systems.StageYoung:
		return SlotYoung
	case systems.StageJuvenile:
		return SlotJuvenile
	default:
		return SlotSheep
	}
}

// ID returns the sprite handle issued for s. Handles start at 1 so the zero
// SpriteID keeps meaning "no sprite".
func (s Slot) ID() components.SpriteID {
	return components.SpriteID(s) + 1
}

// SlotOf converts a handle back to its slot.
func SlotOf(id components.SpriteID) (Slot, bool) {
	if id == 0 || id > components.SpriteID(NumSlots) {
		return 0, false
	}
	return Slot(id - 1), true
}

// Sprite describes one sprite image and its drawn size.
type Sprite struct {
	Path string
	W, H int
}

// Catalog resolves sprites from configured paths and sizes.
// It satisfies the engine's sprite resolver without loading any image.
type Catalog struct {
	sprites [NumSlots]Sprite
}

// NewCatalog builds a catalog from the sprites config section.
func NewCatalog(cfg config.SpritesConfig) *Catalog {
	c := &Catalog{}
	for slot, sc := range map[Slot]config.SpriteConfig{
		SlotLamb:     cfg.Lamb,
		SlotYoung:    cfg.Young,
		SlotJuvenile: cfg.Juvenile,
		SlotSheep:    cfg.Sheep,
		SlotWolf:     cfg.Wolf,
		SlotShepherd: cfg.Shepherd,
		SlotDog:      cfg.Dog,
	} {
		path := sc.Path
		if path != "" && cfg.Dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(cfg.Dir, path)
		}
		c.sprites[slot] = Sprite{Path: path, W: sc.Width, H: sc.Height}
	}
	return c
}

// Resolve returns the sprite handle and size for a kind at a growth stage.
func (c *Catalog) Resolve(kind components.Kind, stage systems.GrowthStage) (components.SpriteID, int, int) {
	slot := SlotFor(kind, stage)
	s := c.sprites[slot]
	return slot.ID(), s.W, s.H
}

// Sprite returns the sprite stored in slot.
func (c *Catalog) Sprite(slot Slot) Sprite {
	return c.sprites[slot]
}

// SetSize replaces the drawn size of slot, e.g. with a loaded texture's size.
func (c *Catalog) SetSize(slot Slot, w, h int) {
	c.sprites[slot].W = w
	c.sprites[slot].H = h
}

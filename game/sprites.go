package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pasture/assets"
	"github.com/pthm-cable/pasture/components"
)

var pastureGreen = rl.Color{R: 96, G: 152, B: 72, A: 255}

// spriteSheet holds one texture per sprite slot.
type spriteSheet struct {
	textures [assets.NumSlots]rl.Texture2D
}

// loadSpriteSheet loads every catalog sprite and adopts the texture sizes as
// the drawn sizes. The configured sizes only serve headless runs.
func loadSpriteSheet(c *assets.Catalog) (*spriteSheet, error) {
	s := &spriteSheet{}
	for slot := assets.Slot(0); slot < assets.NumSlots; slot++ {
		path := c.Sprite(slot).Path
		if path == "" {
			s.Unload()
			return nil, fmt.Errorf("no image configured for %s", slot)
		}
		if !rl.FileExists(path) {
			s.Unload()
			return nil, fmt.Errorf("%s sprite %q: file not found", slot, path)
		}
		tex := rl.LoadTexture(path)
		if tex.ID == 0 {
			s.Unload()
			return nil, fmt.Errorf("%s sprite %q: cannot decode image", slot, path)
		}
		s.textures[slot] = tex
		c.SetSize(slot, int(tex.Width), int(tex.Height))
	}
	return s, nil
}

// Unload frees the GPU textures.
func (s *spriteSheet) Unload() {
	for i := range s.textures {
		if s.textures[i].ID != 0 {
			rl.UnloadTexture(s.textures[i])
			s.textures[i] = rl.Texture2D{}
		}
	}
}

// draw scales the texture for id to w×h with its top-left corner at pos.
func (s *spriteSheet) draw(id components.SpriteID, pos components.Position, w, h int) {
	slot, ok := assets.SlotOf(id)
	if !ok {
		return
	}
	tex := s.textures[slot]
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(tex.Width), Height: float32(tex.Height)}
	dst := rl.Rectangle{X: float32(pos.X), Y: float32(pos.Y), Width: float32(w), Height: float32(h)}
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// spriteCall is one recorded DrawSprite call.
type spriteCall struct {
	sprite components.SpriteID
	pos    components.Position
	w, h   int
}

// frameRenderer records the sprites drawn during a tick so they can be
// replayed between BeginDrawing and EndDrawing, including while paused.
type frameRenderer struct {
	calls []spriteCall
}

// DrawSprite records a sprite.
func (f *frameRenderer) DrawSprite(sprite components.SpriteID, pos components.Position, w, h int) {
	f.calls = append(f.calls, spriteCall{sprite: sprite, pos: pos, w: w, h: h})
}

// Reset forgets the previous tick's sprites.
func (f *frameRenderer) Reset() {
	f.calls = f.calls[:0]
}

// Len returns the number of recorded sprites.
func (f *frameRenderer) Len() int {
	return len(f.calls)
}

// Replay draws the recorded sprites in order.
func (f *frameRenderer) Replay(s *spriteSheet) {
	for _, c := range f.calls {
		s.draw(c.sprite, c.pos, c.w, c.h)
	}
}

package components

// SpriteID identifies a sprite handle issued by a sprite resolver.
// The zero value means "no sprite".
type SpriteID uint16

// Appearance holds the current sprite of an entity and its size.
// W doubles as the collision radius proxy: contact happens within W/2.
type Appearance struct {
	Sprite SpriteID
	W, H   int
}

package components

import (
	"github.com/automoto/escape-the-maze/collision"
	"github.com/yohamta/donburi"
)

// BodyData places an entity in the level. X, Y is the top-left corner of the
// visual bounds; Hitbox is the gameplay box relative to that corner.
type BodyData struct {
	X, Y   float64
	W, H   float64
	Hitbox collision.Rect
	Alive  bool
}

// HitboxRect returns the hitbox in world coordinates.
func (b *BodyData) HitboxRect() collision.Rect {
	return b.Hitbox.Translate(b.X, b.Y)
}

// PlaceHitbox moves the body so its hitbox lands on r.
func (b *BodyData) PlaceHitbox(r collision.Rect) {
	b.X = r.X - b.Hitbox.X
	b.Y = r.Y - b.Hitbox.Y
}

var Body = donburi.NewComponentType[BodyData]()

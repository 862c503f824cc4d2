package components

import (
	"github.com/automoto/escape-the-maze/collision"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its hitbox in the level's resolv space.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the resolv object's bounds.
func (o *ObjectData) Rect() collision.Rect {
	return collision.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()

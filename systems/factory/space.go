package factory

import (
	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/components"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// NewSpace creates the resolv space for a level, one space cell per tile.
func NewSpace(width, height, cellWidth, cellHeight int) *resolv.Space {
	return resolv.NewSpace(width, height, cellWidth, cellHeight)
}

// attachObject creates the entity's resolv object over its hitbox and adds
// it to the level space.
func attachObject(e *donburi.Entry, hitbox collision.Rect, tag string) *resolv.Object {
	obj := resolv.NewObject(hitbox.X, hitbox.Y, hitbox.W, hitbox.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, hitbox.W, hitbox.H))
	obj.Data = e // Link for O(1) lookup

	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

// insetBody derives a body from an authored box, shrinking the hitbox by
// inset on every side. Point objects take the default size.
func insetBody(rec leveldata.ObjectRecord, defaultW, defaultH, inset float64) components.BodyData {
	w, h := rec.Width, rec.Height
	if w <= 0 {
		w = defaultW
	}
	if h <= 0 {
		h = defaultH
	}
	return components.BodyData{
		X:      rec.X,
		Y:      rec.Y,
		W:      w,
		H:      h,
		Hitbox: collision.Rect{W: w, H: h}.Inflate(-inset),
		Alive:  true,
	}
}

// tileSize returns the current level's tile size.
func tileSize(w donburi.World) (float64, float64) {
	if lvl, ok := components.Level.First(w); ok {
		desc := components.Level.Get(lvl).Descriptor
		return float64(desc.TileWidth), float64(desc.TileHeight)
	}
	return 16, 16
}

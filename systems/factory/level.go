package factory

import (
	"github.com/automoto/escape-the-maze/archetypes"
	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/components"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the level singleton holding the descriptor, collision
// grid, resolv space, clock, input and notification queue.
func CreateLevel(w donburi.World, desc *leveldata.Descriptor, grid *collision.Grid) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	components.Level.SetValue(level, components.LevelData{
		Descriptor: desc,
		Grid:       grid,
	})

	pw, ph := desc.PixelSize()
	components.Space.Set(level, NewSpace(pw, ph, desc.TileWidth, desc.TileHeight))

	return level
}

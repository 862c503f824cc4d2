package factory

import (
	"fmt"
	"math"

	"github.com/automoto/escape-the-maze/archetypes"
	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/yohamta/donburi"
)

func checkDoor(levelID string, rec leveldata.ObjectRecord, _ string) error {
	key := rec.Properties.String("required_key", cfg.Door.DefaultKey)
	if _, ok := leveldata.ParseKeyType(key); !ok {
		return unrecognized(levelID, rec, key)
	}
	if n := rec.Properties.Int("count", 1); n < 1 {
		return fmt.Errorf("level %q: door %d: count %d must be at least 1", levelID, rec.ID, n)
	}
	return nil
}

func createDoorFromRecord(w donburi.World, rec leveldata.ObjectRecord, _ string) *donburi.Entry {
	tw, th := tileSize(w)
	key, _ := leveldata.ParseKeyType(rec.Properties.String("required_key", cfg.Door.DefaultKey))

	door := archetypes.Door.Spawn(w)

	body := insetBody(rec, tw, th, cfg.Hitbox.Door)
	components.Body.SetValue(door, body)
	components.Record.SetValue(door, components.RecordData{
		ID:       rec.ID,
		Name:     rec.Name,
		Category: components.CategoryDoor,
	})
	components.Animation.SetValue(door, components.AnimationData{Clock: staticClock()})

	data := components.DoorData{
		RequiredKey:   key,
		RequiredCount: rec.Properties.Int("count", 1),
		Orientation:   rec.Properties.String("orientation", ""),
	}

	// A closed door holds the cells under its authored box solid.
	if lvl, ok := components.Level.First(w); ok {
		grid := components.Level.Get(lvl).Grid
		x0, y0, x1, y1 := grid.CellsCovering(body.HitboxRect())
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				if cx < 0 || cy < 0 || cx >= grid.Width || cy >= grid.Height {
					continue
				}
				data.GatedCells = append(data.GatedCells, components.GridCell{X: cx, Y: cy})
				grid.SetCell(cx, cy, true)
			}
		}
	}
	components.Door.SetValue(door, data)

	attachObject(door, body.HitboxRect(), tags.ResolvDoor)

	return door
}

// PairDoors links closed left/right door halves that share a key and stand
// within config.Door.PairDistance of each other, so opening one opens both.
func PairDoors(w donburi.World) {
	var doors []*donburi.Entry
	tags.Door.Each(w, func(e *donburi.Entry) {
		doors = append(doors, e)
	})

	for i, a := range doors {
		da := components.Door.Get(a)
		if da.HasPair || da.IsOpen {
			continue
		}
		for _, b := range doors[i+1:] {
			db := components.Door.Get(b)
			if db.HasPair || db.IsOpen || !oppositeHalves(da.Orientation, db.Orientation) {
				continue
			}
			if da.RequiredKey != db.RequiredKey {
				continue
			}
			ax, ay := components.Body.Get(a).HitboxRect().Center()
			bx, by := components.Body.Get(b).HitboxRect().Center()
			if math.Hypot(ax-bx, ay-by) > cfg.Door.PairDistance {
				continue
			}
			da.Pair, da.HasPair = b.Entity(), true
			db.Pair, db.HasPair = a.Entity(), true
			break
		}
	}
}

func oppositeHalves(a, b string) bool {
	return (a == "left" && b == "right") || (a == "right" && b == "left")
}

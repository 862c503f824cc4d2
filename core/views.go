package core

import (
	"sort"

	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/components"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/yohamta/donburi"
)

// Renderable is what the presentation layer needs to draw one entity.
type Renderable struct {
	ID       int
	Category components.Category
	SubType  string
	X, Y     float64
	W, H     float64
	Frame    int
	State    string // enemy state or door open/closed, empty otherwise
}

// HUDSnapshot is a copy of the player's displayed stats.
type HUDSnapshot struct {
	HP        int
	MaxHP     int
	Score     int
	Inventory map[leveldata.KeyType]int
}

// PlayerView is a read-only copy of the player's placement and stats.
type PlayerView struct {
	PlayerSnapshot
	Bounds     collision.Rect
	Hitbox     collision.Rect
	Facing     components.Vector
	Attacking  bool
	Invincible bool
}

// EntityInfo identifies one live entity.
type EntityInfo struct {
	ID       int
	Category components.Category
	SubType  string
}

// OverlayObject is one hitbox in the debug overlay.
type OverlayObject struct {
	ID       int
	Category components.Category
	Hitbox   collision.Rect
}

// Overlay is the debug view of the level: every hitbox and the collision grid.
type Overlay struct {
	Objects []OverlayObject
	Grid    string
}

func (g *Game) State() GameState { return g.state }

// Err reports why the session entered the error state.
func (g *Game) Err() error { return g.err }

// FadeAlpha is the opacity of the transition overlay, 1 fully covered.
func (g *Game) FadeAlpha() float64 { return g.fadeAlpha }

func (g *Game) LevelID() string { return g.levelID }

// Grid returns the live collision grid. Callers must not modify it.
func (g *Game) Grid() *collision.Grid { return g.level().Grid }

// Renderables lists every entity in object-id order.
func (g *Game) Renderables() []Renderable {
	var out []Renderable
	components.Record.Each(g.world, func(e *donburi.Entry) {
		rec := components.Record.Get(e)
		body := components.Body.Get(e)
		r := Renderable{
			ID:       rec.ID,
			Category: rec.Category,
			SubType:  rec.SubType,
			X:        body.X,
			Y:        body.Y,
			W:        body.W,
			H:        body.H,
			Frame:    components.Animation.Get(e).Frame(),
		}
		switch rec.Category {
		case components.CategoryEnemy:
			r.State = components.State.Get(e).CurrentState.String()
		case components.CategoryDoor:
			r.State = "closed"
			if components.Door.Get(e).IsOpen {
				r.State = "open"
			}
		}
		out = append(out, r)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// HUD returns a copy of the player's stats.
func (g *Game) HUD() HUDSnapshot {
	s := g.snapshot()
	return HUDSnapshot{
		HP:        s.HP,
		MaxHP:     s.MaxHP,
		Score:     s.Score,
		Inventory: s.Inventory,
	}
}

// Player returns a copy of the player's state.
func (g *Game) Player() (PlayerView, bool) {
	p, ok := tags.Player.First(g.world)
	if !ok {
		return PlayerView{}, false
	}
	body := components.Body.Get(p)
	data := components.Player.Get(p)
	return PlayerView{
		PlayerSnapshot: takeSnapshot(p),
		Bounds:         collision.Rect{X: body.X, Y: body.Y, W: body.W, H: body.H},
		Hitbox:         body.HitboxRect(),
		Facing:         data.Facing,
		Attacking:      data.Attacking(),
		Invincible:     data.Invincible(g.now()),
	}, true
}

// Notifications returns the notifications emitted by the last tick.
func (g *Game) Notifications() []components.Notification {
	list := g.notifications().List
	out := make([]components.Notification, len(list))
	copy(out, list)
	return out
}

// Entities lists the live entities in object-id order.
func (g *Game) Entities() []EntityInfo {
	var out []EntityInfo
	components.Record.Each(g.world, func(e *donburi.Entry) {
		rec := components.Record.Get(e)
		out = append(out, EntityInfo{ID: rec.ID, Category: rec.Category, SubType: rec.SubType})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DebugOverlay returns every hitbox and an ASCII rendering of the grid.
func (g *Game) DebugOverlay() Overlay {
	var ov Overlay
	components.Record.Each(g.world, func(e *donburi.Entry) {
		rec := components.Record.Get(e)
		ov.Objects = append(ov.Objects, OverlayObject{
			ID:       rec.ID,
			Category: rec.Category,
			Hitbox:   components.Body.Get(e).HitboxRect(),
		})
	})
	sort.Slice(ov.Objects, func(i, j int) bool { return ov.Objects[i].ID < ov.Objects[j].ID })
	ov.Grid = g.Grid().String()
	return ov
}

func (g *Game) now() float64 {
	if e, ok := components.Time.First(g.world); ok {
		return components.Time.Get(e).Now
	}
	return 0
}

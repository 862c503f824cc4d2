package factory

import (
	"github.com/automoto/escape-the-maze/animations"
	"github.com/automoto/escape-the-maze/archetypes"
	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/yohamta/donburi"
)

func createPlayerAtSpawn(w donburi.World, rec leveldata.ObjectRecord, _ string) *donburi.Entry {
	player := CreatePlayer(w, rec.X, rec.Y)
	components.Record.Get(player).ID = rec.ID
	return player
}

// CreatePlayer spawns the player with its visual frame centred on spawnX and
// its bottom edge on spawnY. The hitbox is a feet box at the bottom centre of
// the frame.
func CreatePlayer(w donburi.World, spawnX, spawnY float64) *donburi.Entry {
	if _, ok := tags.Player.First(w); ok {
		panic("factory: level already has a player")
	}

	player := archetypes.Player.Spawn(w)

	fw, fh := cfg.Player.FrameWidth, cfg.Player.FrameHeight
	hw, hh := cfg.Player.HitboxWidth, cfg.Player.HitboxHeight
	body := components.BodyData{
		X:      spawnX - fw/2,
		Y:      spawnY - fh,
		W:      fw,
		H:      fh,
		Hitbox: collision.Rect{X: (fw - hw) / 2, Y: fh - hh, W: hw, H: hh},
		Alive:  true,
	}
	components.Body.SetValue(player, body)
	components.Record.SetValue(player, components.RecordData{
		Name:     "player",
		Category: components.CategoryPlayer,
	})
	components.Player.SetValue(player, components.PlayerData{
		Inventory: map[leveldata.KeyType]int{},
		Facing:    components.Vector{X: 0, Y: 1},
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHP,
		Max:     cfg.Player.MaxHP,
	})
	components.Animation.SetValue(player, components.AnimationData{
		Clock: animations.NewClock(cfg.Player.WalkFrames, cfg.Player.WalkFrameDuration),
	})

	attachObject(player, body.HitboxRect(), tags.ResolvPlayer)

	return player
}

package factory

import (
	"github.com/automoto/escape-the-maze/archetypes"
	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/yohamta/donburi"
)

func createTrapFromRecord(w donburi.World, rec leveldata.ObjectRecord, trapType string) *donburi.Entry {
	tw, th := tileSize(w)
	trapCfg := cfg.Trap.Types[trapType]

	trap := archetypes.Trap.Spawn(w)

	body := insetBody(rec, tw, th, cfg.Hitbox.Trap)
	components.Body.SetValue(trap, body)
	components.Record.SetValue(trap, components.RecordData{
		ID:       rec.ID,
		Name:     rec.Name,
		Category: components.CategoryTrap,
		SubType:  trapType,
	})

	active := make(map[int]bool, len(trapCfg.ActiveFrames))
	for _, f := range trapCfg.ActiveFrames {
		active[f] = true
	}
	components.Trap.SetValue(trap, components.TrapData{
		TrapType:     trapType,
		Damage:       rec.Properties.Int("damage", trapCfg.Damage),
		ActiveFrames: active,
	})

	clock := clockFromProps(rec.Properties, trapCfg.Frames, trapCfg.FrameDuration)
	if len(trapCfg.FrameScale) == clock.FrameCount {
		clock.FrameScale = trapCfg.FrameScale
	}
	components.Animation.SetValue(trap, components.AnimationData{Clock: clock})

	attachObject(trap, body.HitboxRect(), tags.ResolvTrap)

	return trap
}

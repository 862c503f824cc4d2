package factory

import (
	"github.com/automoto/escape-the-maze/archetypes"
	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/yohamta/donburi"
)

func createLadderFromRecord(w donburi.World, rec leveldata.ObjectRecord, _ string) *donburi.Entry {
	tw, th := tileSize(w)

	ladder := archetypes.Ladder.Spawn(w)

	body := insetBody(rec, tw, th, cfg.Hitbox.Ladder)
	components.Body.SetValue(ladder, body)
	components.Record.SetValue(ladder, components.RecordData{
		ID:       rec.ID,
		Name:     rec.Name,
		Category: components.CategoryLadder,
	})
	components.Ladder.SetValue(ladder, components.LadderData{
		Destination: rec.Properties.String("destination", cfg.Transition.DefaultDestination),
	})
	components.Animation.SetValue(ladder, components.AnimationData{Clock: staticClock()})

	attachObject(ladder, body.HitboxRect(), tags.ResolvLadder)

	return ladder
}

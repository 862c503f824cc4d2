package factory

import (
	"github.com/automoto/escape-the-maze/archetypes"
	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/yohamta/donburi"
)

func checkCollectible(levelID string, rec leveldata.ObjectRecord, item string) error {
	switch components.CollectibleKind(item) {
	case components.KindCoin, components.KindPotion:
		return nil
	case components.KindKey:
		// Keys must name a known key type.
		kt := rec.Properties.String("key_type", "")
		if _, ok := leveldata.ParseKeyType(kt); !ok {
			return unrecognized(levelID, rec, item+"/"+kt)
		}
		return nil
	}
	return unrecognized(levelID, rec, item)
}

func createCollectibleFromRecord(w donburi.World, rec leveldata.ObjectRecord, item string) *donburi.Entry {
	tw, th := tileSize(w)

	collectible := archetypes.Collectible.Spawn(w)

	body := insetBody(rec, tw, th, cfg.Hitbox.Collectible)
	components.Body.SetValue(collectible, body)
	components.Record.SetValue(collectible, components.RecordData{
		ID:       rec.ID,
		Name:     rec.Name,
		Category: components.CategoryCollectible,
		SubType:  item,
	})

	data := components.CollectibleData{Kind: components.CollectibleKind(item)}
	switch data.Kind {
	case components.KindCoin:
		data.Value = rec.Properties.Int("value", cfg.Collectible.CoinValue)
	case components.KindPotion:
		data.Heal = rec.Properties.Int("heal", cfg.Collectible.PotionHeal)
	case components.KindKey:
		data.KeyType, _ = leveldata.ParseKeyType(rec.Properties.String("key_type", ""))
	}
	components.Collectible.SetValue(collectible, data)

	components.Animation.SetValue(collectible, components.AnimationData{
		Clock: clockFromProps(rec.Properties, cfg.Collectible.Frames, cfg.Collectible.FrameDuration),
	})

	attachObject(collectible, body.HitboxRect(), tags.ResolvCollectible)

	return collectible
}

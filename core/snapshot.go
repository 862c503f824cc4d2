package core

import (
	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/yohamta/donburi"
)

// PlayerSnapshot is the player state carried from one level to the next.
type PlayerSnapshot struct {
	HP        int
	MaxHP     int
	Score     int
	Inventory map[leveldata.KeyType]int
}

func defaultSnapshot() PlayerSnapshot {
	return PlayerSnapshot{
		HP:        cfg.Player.MaxHP,
		MaxHP:     cfg.Player.MaxHP,
		Inventory: map[leveldata.KeyType]int{},
	}
}

func takeSnapshot(player *donburi.Entry) PlayerSnapshot {
	health := components.Health.Get(player)
	data := components.Player.Get(player)
	return PlayerSnapshot{
		HP:        health.Current,
		MaxHP:     health.Max,
		Score:     data.Score,
		Inventory: data.InventoryCopy(),
	}
}

func (s PlayerSnapshot) restore(player *donburi.Entry) {
	health := components.Health.Get(player)
	health.Max = s.MaxHP
	health.Current = s.HP

	data := components.Player.Get(player)
	data.Score = s.Score
	data.Inventory = s.copyInventory()
}

func (s PlayerSnapshot) copyInventory() map[leveldata.KeyType]int {
	out := make(map[leveldata.KeyType]int, len(s.Inventory))
	for k, n := range s.Inventory {
		out[k] = n
	}
	return out
}

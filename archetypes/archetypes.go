package archetypes

import (
	"github.com/automoto/escape-the-maze/components"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/yohamta/donburi"
)

var (
	Level = newArchetype(
		components.Level,
		components.Space,
		components.Time,
		components.Input,
		components.Notifications,
	)
	Player = newArchetype(
		tags.Player,
		components.Record,
		components.Player,
		components.Body,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
	)
	Door = newArchetype(
		tags.Door,
		components.Record,
		components.Door,
		components.Body,
		components.Object,
		components.Animation,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Record,
		components.Collectible,
		components.Body,
		components.Object,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Record,
		components.Enemy,
		components.Body,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
		components.State,
	)
	Trap = newArchetype(
		tags.Trap,
		components.Record,
		components.Trap,
		components.Body,
		components.Object,
		components.Animation,
	)
	Ladder = newArchetype(
		tags.Ladder,
		components.Record,
		components.Ladder,
		components.Body,
		components.Object,
		components.Animation,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}

package systems

import (
	"fmt"

	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/logger"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// interaction carries what every rule needs for one resolver pass.
type interaction struct {
	w      donburi.World
	level  *components.LevelData
	notes  *components.NotificationsData
	now    float64
	in     components.InputData
	player *donburi.Entry
	data   *components.PlayerData
	health *components.HealthData
	hitbox collision.Rect
	log    *logrus.Entry
}

// ResolveInteractions evaluates the player's interactions with the level in
// a fixed order: trap damage, pickups, doors, enemy contact and attacks,
// ladders, then player death. It runs once per tick after movement and
// animation.
func ResolveInteractions(w donburi.World) {
	p, ok := tags.Player.First(w)
	if !ok {
		return
	}
	level := levelData(w)
	if level == nil {
		return
	}

	it := &interaction{
		w:      w,
		level:  level,
		notes:  notifications(w),
		now:    timeData(w).Now,
		in:     inputData(w),
		player: p,
		data:   components.Player.Get(p),
		health: components.Health.Get(p),
		hitbox: components.Body.Get(p).HitboxRect(),
		log:    logger.For("resolver").WithField("level_id", level.Descriptor.ID),
	}

	it.traps()
	it.collectibles()
	it.doors()
	it.enemies()
	it.ladders()

	if it.health.Dead() && !level.PlayerDied {
		level.PlayerDied = true
		it.log.Debug("player died")
	}
}

// hurt applies damage from a source unless the player is inside i-frames.
func (it *interaction) hurt(source *donburi.Entry, damage int) bool {
	if it.data.Invincible(it.now) {
		return false
	}
	it.health.Damage(damage)
	it.data.InvincibleUntil = it.now + cfg.Player.IFrameDuration

	rec := components.Record.Get(source)
	it.notes.Emit(components.Notification{
		Kind:     components.NotifyPlayerHurt,
		EntityID: rec.ID,
		Count:    damage,
	})
	it.log.WithFields(logrus.Fields{
		"source": rec.ID,
		"damage": damage,
		"hp":     it.health.Current,
	}).Debug("player hurt")
	return true
}

func (it *interaction) traps() {
	for _, e := range Overlapping(it.w, it.hitbox, tags.ResolvTrap) {
		trap := components.Trap.Get(e)
		if !trap.ActiveOn(components.Animation.Get(e).Frame()) {
			continue
		}
		it.hurt(e, trap.Damage)
	}
}

func (it *interaction) collectibles() {
	if it.health.Dead() {
		return
	}
	for _, e := range Overlapping(it.w, it.hitbox, tags.ResolvCollectible) {
		c := components.Collectible.Get(e)
		note := components.Notification{
			Kind:     components.NotifyPickedUp,
			EntityID: components.Record.Get(e).ID,
			Item:     c.Kind,
		}
		switch c.Kind {
		case components.KindCoin:
			it.data.Score += c.Value
			note.Count = c.Value
		case components.KindKey:
			it.data.AddKeys(c.KeyType, 1)
			note.KeyType = c.KeyType
			note.Count = 1
		case components.KindPotion:
			before := it.health.Current
			it.health.Heal(c.Heal)
			note.Count = it.health.Current - before
		}
		RemoveEntity(it.w, e)

		it.notes.Emit(note)
		it.log.WithFields(logrus.Fields{
			"object": note.EntityID,
			"item":   c.Kind,
		}).Debug("picked up")
	}
}

func (it *interaction) doors() {
	if !it.in.Interact || it.health.Dead() {
		return
	}
	reach := it.hitbox.Inflate(cfg.Door.InteractMargin)
	for _, e := range Overlapping(it.w, reach, tags.ResolvDoor) {
		door := components.Door.Get(e)
		if door.IsOpen {
			continue
		}
		id := components.Record.Get(e).ID

		have := it.data.Keys(door.RequiredKey)
		if have < door.RequiredCount {
			missing := door.RequiredCount - have
			it.notes.Emit(components.Notification{
				Kind:     components.NotifyDoorLocked,
				EntityID: id,
				KeyType:  door.RequiredKey,
				Count:    missing,
				Message:  fmt.Sprintf("Need %d more %s keys", missing, door.RequiredKey),
			})
			it.log.WithFields(logrus.Fields{"door": id, "missing": missing}).Debug("door locked")
			continue
		}

		if cfg.Door.ConsumeKeys {
			it.data.AddKeys(door.RequiredKey, -door.RequiredCount)
		}
		OpenDoor(it.w, e)

		it.notes.Emit(components.Notification{
			Kind:     components.NotifyDoorOpened,
			EntityID: id,
			KeyType:  door.RequiredKey,
			Count:    door.RequiredCount,
		})
		it.log.WithField("door", id).Debug("door opened")
	}
}

// OpenDoor opens a door and its paired half, freeing the grid cells they
// held solid.
func OpenDoor(w donburi.World, e *donburi.Entry) {
	level := levelData(w)
	open := func(e *donburi.Entry) {
		door := components.Door.Get(e)
		if door.IsOpen {
			return
		}
		door.IsOpen = true
		if level != nil && level.Grid != nil {
			for _, c := range door.GatedCells {
				level.Grid.SetCell(c.X, c.Y, false)
			}
		}
	}

	open(e)
	door := components.Door.Get(e)
	if door.HasPair && w.Valid(door.Pair) {
		open(w.Entry(door.Pair))
	}
}

func (it *interaction) enemies() {
	for _, e := range Overlapping(it.w, it.hitbox, tags.ResolvEnemy) {
		if components.State.Get(e).CurrentState == components.EnemyDead {
			continue
		}
		it.hurt(e, components.Enemy.Get(e).ContactDamage)
	}

	if !it.data.Attacking() || it.health.Dead() {
		return
	}
	box := AttackBox(it.hitbox, it.data.Facing)
	for _, e := range Overlapping(it.w, box, tags.ResolvEnemy) {
		if components.State.Get(e).CurrentState == components.EnemyDead || it.data.SwingHits[e.Entity()] {
			continue
		}
		it.data.SwingHits[e.Entity()] = true

		health := components.Health.Get(e)
		health.Damage(cfg.Player.AttackDamage)
		if !health.Dead() {
			continue
		}

		KillEnemy(e)
		rec := components.Record.Get(e)
		it.notes.Emit(components.Notification{
			Kind:     components.NotifyEnemyKilled,
			EntityID: rec.ID,
		})
		it.log.WithFields(logrus.Fields{"enemy": rec.ID, "archetype": rec.SubType}).Debug("enemy killed")
	}
}

func (it *interaction) ladders() {
	if !it.in.Interact || it.health.Dead() || it.level.PendingDestination != "" {
		return
	}
	for _, e := range Overlapping(it.w, it.hitbox, tags.ResolvLadder) {
		dest := components.Ladder.Get(e).Destination
		it.level.PendingDestination = dest

		rec := components.Record.Get(e)
		it.notes.Emit(components.Notification{
			Kind:        components.NotifyLevelTransition,
			EntityID:    rec.ID,
			Destination: dest,
		})
		it.log.WithFields(logrus.Fields{"ladder": rec.ID, "destination": dest}).Debug("ladder taken")
		return
	}
}

package factory

import (
	"github.com/automoto/escape-the-maze/animations"
	"github.com/automoto/escape-the-maze/archetypes"
	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/yohamta/donburi"
)

func createEnemyFromRecord(w donburi.World, rec leveldata.ObjectRecord, archetype string) *donburi.Entry {
	enemyType := cfg.Enemy.Types[archetype]

	enemy := archetypes.Enemy.Spawn(w)

	body := insetBody(rec, enemyType.Size, enemyType.Size, cfg.Hitbox.Enemy)
	components.Body.SetValue(enemy, body)
	components.Record.SetValue(enemy, components.RecordData{
		ID:       rec.ID,
		Name:     rec.Name,
		Category: components.CategoryEnemy,
		SubType:  archetype,
	})

	hitbox := body.HitboxRect()
	deathClock := animations.NewClock(enemyType.DeathFrames, enemyType.DeathFrameDuration)
	deathClock.FreezeOnComplete = true

	// Default patrol: back and forth around the spawn position.
	components.Enemy.SetValue(enemy, components.EnemyData{
		Archetype:     archetype,
		Direction:     components.Vector{X: -1, Y: 0}, // Start facing left
		PatrolLeft:    rec.Properties.Float("patrol_left", hitbox.X-cfg.Enemy.DefaultPatrolDistance),
		PatrolRight:   rec.Properties.Float("patrol_right", hitbox.Right()+cfg.Enemy.DefaultPatrolDistance),
		PatrolSpeed:   enemyType.PatrolSpeed,
		ChaseSpeed:    enemyType.ChaseSpeed,
		AggroRadius:   rec.Properties.Float("aggro_range", cfg.Enemy.AggroRange),
		ContactDamage: enemyType.ContactDamage,
		DeathClock:    deathClock,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  components.EnemyIdle,
		PreviousState: components.EnemyIdle,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Animation.SetValue(enemy, components.AnimationData{
		Clock: clockFromProps(rec.Properties, enemyType.Frames, enemyType.FrameDuration),
	})

	attachObject(enemy, hitbox, tags.ResolvEnemy)

	return enemy
}

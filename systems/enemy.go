package systems

import (
	"math"

	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies runs each live enemy's state machine and moves it.
func UpdateEnemies(w donburi.World) {
	level := levelData(w)
	if level == nil {
		return
	}
	dt := timeData(w).Delta

	// Get player position for AI decisions
	var playerX, playerY float64
	hasPlayer := false
	if p, ok := tags.Player.First(w); ok && !components.Health.Get(p).Dead() {
		playerX, playerY = components.Body.Get(p).HitboxRect().Center()
		hasPlayer = true
	}

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		state := components.State.Get(e)
		if state.CurrentState == components.EnemyDead {
			return
		}
		state.StateTimer += dt

		distance := math.Inf(1)
		if hasPlayer {
			ex, ey := components.Body.Get(e).HitboxRect().Center()
			distance = math.Hypot(playerX-ex, playerY-ey)
		}

		enemy := components.Enemy.Get(e)
		switch state.CurrentState {
		case components.EnemyIdle:
			// Idle enemies already walk their bounds; idle only names the
			// opening stretch before the patrol state.
			if distance <= enemy.AggroRadius {
				state.Set(components.EnemyChase)
				return
			}
			if state.StateTimer >= cfg.Enemy.IdleTime {
				state.Set(components.EnemyPatrol)
			}
			patrol(e, enemy, level.Grid, dt)
		case components.EnemyPatrol:
			if distance <= enemy.AggroRadius {
				state.Set(components.EnemyChase)
				return
			}
			patrol(e, enemy, level.Grid, dt)
		case components.EnemyChase:
			// Hysteresis keeps an enemy on the aggro boundary from flickering.
			if distance > enemy.AggroRadius*cfg.Enemy.HysteresisMultiplier {
				state.Set(components.EnemyPatrol)
				return
			}
			chase(e, enemy, level.Grid, playerX, playerY, dt)
		}
	})
}

// patrol walks the enemy horizontally between its bounds, turning at either
// bound or when a wall blocks it.
func patrol(e *donburi.Entry, enemy *components.EnemyData, grid *collision.Grid, dt float64) {
	hb := components.Body.Get(e).HitboxRect()
	if enemy.Direction.X == 0 {
		enemy.Direction.X = 1
	}
	if enemy.Direction.X < 0 && hb.X <= enemy.PatrolLeft {
		enemy.Direction.X = 1
	} else if enemy.Direction.X > 0 && hb.Right() >= enemy.PatrolRight {
		enemy.Direction.X = -1
	}

	dx := enemy.Direction.X * enemy.PatrolSpeed * dt
	if enemy.Direction.X < 0 {
		dx = math.Max(dx, enemy.PatrolLeft-hb.X)
	} else {
		dx = math.Min(dx, enemy.PatrolRight-hb.Right())
	}

	physics := components.Physics.Get(e)
	physics.DX, physics.DY = dx, 0
	if res := moveEntry(e, grid); res.BlockedX {
		enemy.Direction.X = -enemy.Direction.X
	}
}

// chase moves the enemy straight at the player's centre.
func chase(e *donburi.Entry, enemy *components.EnemyData, grid *collision.Grid, targetX, targetY, dt float64) {
	ex, ey := components.Body.Get(e).HitboxRect().Center()
	dx, dy := targetX-ex, targetY-ey
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}

	step := math.Min(enemy.ChaseSpeed*dt, dist)
	physics := components.Physics.Get(e)
	physics.DX, physics.DY = dx/dist*step, dy/dist*step
	if physics.DX != 0 {
		enemy.Direction.X = math.Copysign(1, physics.DX)
	}
	moveEntry(e, grid)
}

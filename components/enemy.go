package components

import (
	"github.com/automoto/escape-the-maze/animations"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Archetype string // "skeleton1", "skeleton2", "vampire"
	Direction Vector // patrol heading, X is -1 or 1

	// AI state management
	PatrolLeft  float64 // Left boundary for patrol (hitbox X)
	PatrolRight float64 // Right boundary for patrol (hitbox right edge)
	PatrolSpeed float64 // pixels per second
	ChaseSpeed  float64
	AggroRadius float64 // Distance to start chasing

	// Combat
	ContactDamage int

	// DeathClock replaces the walk clock when the enemy dies.
	DeathClock *animations.Clock
}

var Enemy = donburi.NewComponentType[EnemyData]()

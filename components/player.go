package components

import (
	"fmt"

	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/yohamta/donburi"
)

// PlayerData is the player state that is not hit points. Inventory and score
// are only mutated by the interaction rules; everything else reads snapshots.
type PlayerData struct {
	Inventory       map[leveldata.KeyType]int
	Score           int
	InvincibleUntil float64 // session time in seconds when i-frames expire
	Facing          Vector

	// Attack state
	AttackTimer float64                 // seconds left in the current swing
	SwingHits   map[donburi.Entity]bool // enemies already damaged by this swing
}

// Invincible reports whether the player is inside an i-frame window.
func (p *PlayerData) Invincible(now float64) bool {
	return now < p.InvincibleUntil
}

func (p *PlayerData) Attacking() bool {
	return p.AttackTimer > 0
}

// StartAttack begins a new swing unless one is already active.
func (p *PlayerData) StartAttack(duration float64) bool {
	if p.Attacking() {
		return false
	}
	p.AttackTimer = duration
	p.SwingHits = map[donburi.Entity]bool{}
	return true
}

func (p *PlayerData) Keys(k leveldata.KeyType) int {
	return p.Inventory[k]
}

// AddKeys adjusts the count of key k by n. A count may never go negative.
func (p *PlayerData) AddKeys(k leveldata.KeyType, n int) {
	if p.Inventory == nil {
		p.Inventory = map[leveldata.KeyType]int{}
	}
	next := p.Inventory[k] + n
	if next < 0 {
		panic(fmt.Sprintf("components: inventory[%s] would become %d", k, next))
	}
	p.Inventory[k] = next
}

// InventoryCopy returns a copy of the inventory safe to hand to readers.
func (p *PlayerData) InventoryCopy() map[leveldata.KeyType]int {
	out := make(map[leveldata.KeyType]int, len(p.Inventory))
	for k, n := range p.Inventory {
		out[k] = n
	}
	return out
}

var Player = donburi.NewComponentType[PlayerData]()

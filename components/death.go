package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence. It is
// removed from the world once its death animation completes.
type DeathData struct {
	Elapsed float64
}

var Death = donburi.NewComponentType[DeathData]()

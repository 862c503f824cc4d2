package components

import "github.com/yohamta/donburi"

type TrapData struct {
	TrapType     string // "peaks", "arrow" or "flamethrower"
	Damage       int
	ActiveFrames map[int]bool // animation frames that deal damage
}

// ActiveOn reports whether the trap hurts on the given animation frame.
func (t *TrapData) ActiveOn(frame int) bool {
	return t.ActiveFrames[frame]
}

var Trap = donburi.NewComponentType[TrapData]()

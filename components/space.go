package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the singleton resolv space holding every collidable hitbox of
// the current level.
var Space = donburi.NewComponentType[resolv.Space]()

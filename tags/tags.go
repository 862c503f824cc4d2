package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Door        = donburi.NewTag().SetName("Door")
	Collectible = donburi.NewTag().SetName("Collectible")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Trap        = donburi.NewTag().SetName("Trap")
	Ladder      = donburi.NewTag().SetName("Ladder")
)

// Resolv tags for overlap queries
const (
	ResolvPlayer      = "player"
	ResolvDoor        = "door"
	ResolvCollectible = "collectible"
	ResolvEnemy       = "enemy"
	ResolvTrap        = "trap"
	ResolvLadder      = "ladder"
	ResolvProbe       = "probe"
)

package components

import "github.com/yohamta/donburi"

// Category groups entities for rendering and debug output.
type Category string

const (
	CategoryPlayer      Category = "player"
	CategoryDoor        Category = "door"
	CategoryCollectible Category = "collectible"
	CategoryEnemy       Category = "enemy"
	CategoryTrap        Category = "trap"
	CategoryLadder      Category = "ladder"
)

// RecordData keeps the identity of the level object an entity was built from.
type RecordData struct {
	ID       int
	Name     string
	Category Category
	SubType  string // coin/key/potion, trap type, enemy archetype
}

var Record = donburi.NewComponentType[RecordData]()

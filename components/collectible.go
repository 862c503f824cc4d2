package components

import (
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/yohamta/donburi"
)

type CollectibleKind string

const (
	KindCoin   CollectibleKind = "coin"
	KindKey    CollectibleKind = "key"
	KindPotion CollectibleKind = "potion"
)

type CollectibleData struct {
	Kind    CollectibleKind
	Value   int               // score for coins
	Heal    int               // hit points for potions
	KeyType leveldata.KeyType // keys only
}

var Collectible = donburi.NewComponentType[CollectibleData]()

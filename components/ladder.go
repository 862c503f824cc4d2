package components

import "github.com/yohamta/donburi"

type LadderData struct {
	Destination string // catalog id of the level to load
}

var Ladder = donburi.NewComponentType[LadderData]()

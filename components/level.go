package components

import (
	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton describing the loaded level and the outcomes
// the interaction rules hand back to the session.
type LevelData struct {
	Descriptor *leveldata.Descriptor
	Grid       *collision.Grid

	PendingDestination string // set by a ladder interaction
	PlayerDied         bool
}

var Level = donburi.NewComponentType[LevelData]()

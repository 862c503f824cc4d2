package components

import (
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/yohamta/donburi"
)

// GridCell addresses one collision grid cell.
type GridCell struct {
	X, Y int
}

type DoorData struct {
	RequiredKey   leveldata.KeyType
	RequiredCount int
	Orientation   string // left, right, up, down
	IsOpen        bool
	GatedCells    []GridCell // cells held solid while the door is closed

	// Paired doors (left/right halves) open together.
	Pair    donburi.Entity
	HasPair bool
}

var Door = donburi.NewComponentType[DoorData]()

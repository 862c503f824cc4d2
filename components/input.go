package components

import "github.com/yohamta/donburi"

// InputData is the semantic input for the current tick.
type InputData struct {
	Move     Vector
	Attack   bool
	Interact bool
}

var Input = donburi.NewComponentType[InputData]()

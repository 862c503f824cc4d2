package components

import "github.com/yohamta/donburi"

// TimeData is the session clock. Now accumulates every simulated Delta.
type TimeData struct {
	Now   float64
	Delta float64
}

var Time = donburi.NewComponentType[TimeData]()

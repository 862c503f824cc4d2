package components

import (
	"github.com/automoto/escape-the-maze/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Clock *animations.Clock
}

// Frame returns the current frame, or 0 without a clock.
func (a *AnimationData) Frame() int {
	if a.Clock == nil {
		return 0
	}
	return a.Clock.Frame()
}

// SetClock swaps in a new clock starting from frame 0.
func (a *AnimationData) SetClock(c *animations.Clock) {
	if a.Clock == c {
		return
	}
	a.Clock = c
	a.Clock.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()

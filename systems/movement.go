package systems

import (
	"github.com/automoto/escape-the-maze/components"
	"github.com/yohamta/donburi"
)

// UpdateMovement applies every live body's pending displacement against the
// collision grid, one axis at a time.
func UpdateMovement(w donburi.World) {
	level := levelData(w)
	if level == nil || level.Grid == nil {
		return
	}
	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if !components.Body.Get(e).Alive || (physics.DX == 0 && physics.DY == 0) {
			return
		}
		moveEntry(e, level.Grid)
	})
}

package systems

import (
	"github.com/automoto/escape-the-maze/components"
	"github.com/yohamta/donburi"
)

// UpdateAnimations advances every entity's animation clock by the tick delta.
func UpdateAnimations(w donburi.World) {
	dt := timeData(w).Delta
	components.Animation.Each(w, func(e *donburi.Entry) {
		if anim := components.Animation.Get(e); anim.Clock != nil {
			anim.Clock.Update(dt)
		}
	})
}

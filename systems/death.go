package systems

import (
	"github.com/automoto/escape-the-maze/components"
	"github.com/yohamta/donburi"
)

// KillEnemy moves an enemy into its terminal state: it leaves the resolv
// space so nothing collides with it, and plays its death animation.
func KillEnemy(e *donburi.Entry) {
	state := components.State.Get(e)
	if state.CurrentState == components.EnemyDead {
		return
	}
	state.Set(components.EnemyDead)
	components.Body.Get(e).Alive = false

	physics := components.Physics.Get(e)
	physics.DX, physics.DY = 0, 0

	if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}

	if clock := components.Enemy.Get(e).DeathClock; clock != nil {
		components.Animation.Get(e).SetClock(clock)
	}
	e.AddComponent(components.Death)
}

// UpdateDeaths removes entities whose death animation has completed.
func UpdateDeaths(w donburi.World) {
	dt := timeData(w).Delta

	var finished []*donburi.Entry
	components.Death.Each(w, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Elapsed += dt

		anim := components.Animation.Get(e)
		if anim.Clock == nil || anim.Clock.Done() {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		RemoveEntity(w, e)
	}
}

package systems

import (
	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/components"
	"github.com/yohamta/donburi"
)

func levelData(w donburi.World) *components.LevelData {
	if e, ok := components.Level.First(w); ok {
		return components.Level.Get(e)
	}
	return nil
}

func timeData(w donburi.World) components.TimeData {
	if e, ok := components.Time.First(w); ok {
		return *components.Time.Get(e)
	}
	return components.TimeData{}
}

func inputData(w donburi.World) components.InputData {
	if e, ok := components.Input.First(w); ok {
		return *components.Input.Get(e)
	}
	return components.InputData{}
}

func notifications(w donburi.World) *components.NotificationsData {
	if e, ok := components.Notifications.First(w); ok {
		return components.Notifications.Get(e)
	}
	return &components.NotificationsData{}
}

// moveEntry resolves the entry's pending displacement against the grid and
// syncs its resolv object with the new hitbox.
func moveEntry(e *donburi.Entry, grid *collision.Grid) collision.MoveResult {
	body := components.Body.Get(e)
	physics := components.Physics.Get(e)

	res := collision.Move(grid, body.HitboxRect(), physics.DX, physics.DY)
	body.PlaceHitbox(res.Rect)
	physics.DX, physics.DY = 0, 0
	physics.BlockedX, physics.BlockedY = res.BlockedX, res.BlockedY

	syncObject(e)
	return res
}

// syncObject moves the resolv object onto the body's hitbox.
func syncObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	hb := components.Body.Get(e).HitboxRect()
	obj.X, obj.Y = hb.X, hb.Y
	obj.Update()
}

// RemoveEntity takes the entry's hitbox out of the space and deletes it from
// the world.
func RemoveEntity(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}

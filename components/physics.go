package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Vector is a 2D direction or displacement.
type Vector = math.Vec2

// PhysicsData carries a movable entity's displacement intent for the current
// tick and the result of resolving it against the collision grid.
type PhysicsData struct {
	DX, DY   float64
	BlockedX bool
	BlockedY bool
}

var Physics = donburi.NewComponentType[PhysicsData]()

package systems

import (
	"math"

	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayer turns the tick's input into the player's movement intent,
// facing and attack state. A dead player does nothing.
func UpdatePlayer(w donburi.World) {
	p, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(p)
	physics := components.Physics.Get(p)
	dt := timeData(w).Delta
	in := inputData(w)

	if player.AttackTimer > 0 {
		player.AttackTimer = math.Max(0, player.AttackTimer-dt)
	}

	if components.Health.Get(p).Dead() {
		physics.DX, physics.DY = 0, 0
		return
	}

	mx, my := collision.Normalize(in.Move.X, in.Move.Y)
	physics.DX = mx * cfg.Player.Speed * dt
	physics.DY = my * cfg.Player.Speed * dt
	if mx != 0 || my != 0 {
		player.Facing = components.Vector{X: mx, Y: my}
	}

	if in.Attack {
		player.StartAttack(cfg.Player.AttackDuration)
	}
}

// AttackBox is the area swept by the player's swing: a strip AttackReach
// deep on the facing side of the hitbox, widened by the reach across it.
func AttackBox(hitbox collision.Rect, facing components.Vector) collision.Rect {
	reach := cfg.Player.AttackReach
	if math.Abs(facing.X) >= math.Abs(facing.Y) {
		box := collision.Rect{Y: hitbox.Y - reach/2, W: reach, H: hitbox.H + reach}
		if facing.X < 0 {
			box.X = hitbox.X - reach
		} else {
			box.X = hitbox.Right()
		}
		return box
	}
	box := collision.Rect{X: hitbox.X - reach/2, W: hitbox.W + reach, H: reach}
	if facing.Y < 0 {
		box.Y = hitbox.Y - reach
	} else {
		box.Y = hitbox.Bottom()
	}
	return box
}

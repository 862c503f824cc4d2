package systems

import (
	"math"
	"testing"

	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/components"
	"github.com/stretchr/testify/assert"
)

func TestPlayerMovement(t *testing.T) {
	rows := openRows(8, 6)
	rows[2] = "....#..."
	w := newTestWorld(t, rows, spawn(40, 48))
	p := playerOf(t, w)

	// Hitbox starts at (35, 40) 10x8, entirely in row 2.
	step(w, components.InputData{Move: components.Vector{X: 1}}, 0.5)

	hb := components.Body.Get(p).HitboxRect()
	assert.Equal(t, 54.0, hb.X, "stops flush against the wall")
	assert.True(t, components.Physics.Get(p).BlockedX)
	assert.Equal(t, components.Vector{X: 1}, components.Player.Get(p).Facing)
	assert.Equal(t, hb, components.Object.Get(p).Rect())
}

func TestPlayerDiagonalIsNormalized(t *testing.T) {
	w := newTestWorld(t, openRows(10, 10), spawn(40, 48))
	p := playerOf(t, w)
	start := components.Body.Get(p).HitboxRect()

	step(w, components.InputData{Move: components.Vector{X: 1, Y: 1}}, 0.25)

	hb := components.Body.Get(p).HitboxRect()
	assert.InDelta(t, 20.0, collisionDistance(start, hb), 1e-9)
}

func TestDeadPlayerDoesNotMove(t *testing.T) {
	w := newTestWorld(t, openRows(8, 6), spawn(40, 48))
	p := playerOf(t, w)
	components.Health.Get(p).Current = 0
	start := components.Body.Get(p).HitboxRect()

	step(w, components.InputData{Move: components.Vector{X: 1}, Attack: true}, 0.25)

	assert.Equal(t, start, components.Body.Get(p).HitboxRect())
	assert.False(t, components.Player.Get(p).Attacking())
}

func TestAttackBox(t *testing.T) {
	hb := collision.Rect{X: 10, Y: 20, W: 10, H: 8}

	tests := []struct {
		name   string
		facing components.Vector
		want   collision.Rect
	}{
		{"right", components.Vector{X: 1}, collision.Rect{X: 20, Y: 14, W: 12, H: 20}},
		{"left", components.Vector{X: -1}, collision.Rect{X: -2, Y: 14, W: 12, H: 20}},
		{"down", components.Vector{Y: 1}, collision.Rect{X: 4, Y: 28, W: 22, H: 12}},
		{"up", components.Vector{Y: -1}, collision.Rect{X: 4, Y: 8, W: 22, H: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AttackBox(hb, tt.facing))
		})
	}
}

func collisionDistance(a, b collision.Rect) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return math.Hypot(dx, dy)
}

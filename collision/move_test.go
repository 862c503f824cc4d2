package collision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveAxisSeparated(t *testing.T) {
	// Player flush against a wall on its right, moving down-right.
	g := gridFromRows(
		"......",
		"...#..",
		"......",
		"......",
	)
	start := Rect{X: 38, Y: 18, W: 10, H: 8}

	res := Move(g, start, 5, 12)

	assert.True(t, res.BlockedX)
	assert.False(t, res.BlockedY)
	assert.Equal(t, 0.0, res.DX, "no net horizontal displacement")
	assert.Equal(t, 12.0, res.DY, "full vertical displacement")
	assert.Equal(t, Rect{X: 38, Y: 30, W: 10, H: 8}, res.Rect)
}

func TestMoveClampsToTileEdge(t *testing.T) {
	g := gridFromRows(
		"......",
		".#..#.",
		"......",
		"..#...",
	)

	tests := []struct {
		name     string
		start    Rect
		dx, dy   float64
		want     Rect
		blockedX bool
		blockedY bool
	}{
		{
			name:     "right into wall",
			start:    Rect{X: 40, Y: 18, W: 10, H: 8},
			dx:       20,
			want:     Rect{X: 54, Y: 18, W: 10, H: 8},
			blockedX: true,
		},
		{
			name:     "left into wall",
			start:    Rect{X: 40, Y: 18, W: 10, H: 8},
			dx:       -20,
			want:     Rect{X: 32, Y: 18, W: 10, H: 8},
			blockedX: true,
		},
		{
			name:     "down into wall",
			start:    Rect{X: 34, Y: 20, W: 10, H: 8},
			dy:       30,
			want:     Rect{X: 34, Y: 40, W: 10, H: 8},
			blockedY: true,
		},
		{
			name:     "up into wall",
			start:    Rect{X: 18, Y: 36, W: 10, H: 8},
			dy:       -20,
			want:     Rect{X: 18, Y: 32, W: 10, H: 8},
			blockedY: true,
		},
		{
			name:  "free move",
			start: Rect{X: 2, Y: 34, W: 10, H: 8},
			dx:    3,
			dy:    2,
			want:  Rect{X: 5, Y: 36, W: 10, H: 8},
		},
		{
			name:     "world edge is a wall",
			start:    Rect{X: 2, Y: 2, W: 10, H: 8},
			dx:       -10,
			dy:       -10,
			want:     Rect{X: 0, Y: 0, W: 10, H: 8},
			blockedX: true,
			blockedY: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Move(g, tt.start, tt.dx, tt.dy)
			assert.Equal(t, tt.want, res.Rect)
			assert.Equal(t, tt.blockedX, res.BlockedX, "blockedX")
			assert.Equal(t, tt.blockedY, res.BlockedY, "blockedY")
		})
	}
}

func TestMoveNoTunneling(t *testing.T) {
	g := gridFromRows("..#......")

	res := Move(g, Rect{X: 0, Y: 4, W: 8, H: 8}, 100, 0)

	assert.True(t, res.BlockedX)
	assert.Equal(t, 24.0, res.Rect.X, "a large step stops at the first wall")
}

func TestMoveNoCornerTunneling(t *testing.T) {
	// A diagonal step that would clip the corner of the solid cell.
	g := gridFromRows(
		"...",
		".#.",
		"...",
	)

	res := Move(g, Rect{X: 4, Y: 4, W: 10, H: 10}, 6, 6)

	assert.False(t, res.BlockedX, "horizontal pass stays within row 0")
	assert.True(t, res.BlockedY)
	assert.Equal(t, Rect{X: 10, Y: 6, W: 10, H: 10}, res.Rect)
	x0, y0, x1, y1 := g.CellsCovering(res.Rect)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			assert.False(t, g.IsSolid(cx, cy), "ended overlapping (%d,%d)", cx, cy)
		}
	}
}

func TestMoveOneWay(t *testing.T) {
	g := gridFromRows(
		"...",
		"---",
		"...",
	)

	down := Move(g, Rect{X: 2, Y: 2, W: 10, H: 10}, 0, 20)
	assert.True(t, down.BlockedY, "one-way cells stop downward entry")
	assert.Equal(t, 6.0, down.Rect.Y)

	up := Move(g, Rect{X: 2, Y: 36, W: 10, H: 10}, 0, -30)
	assert.False(t, up.BlockedY, "one-way cells let movement pass upward")
	assert.Equal(t, 6.0, up.Rect.Y)

	side := Move(g, Rect{X: 2, Y: 18, W: 10, H: 10}, 20, 0)
	assert.False(t, side.BlockedX)
}

func TestMoveEscapesOverlap(t *testing.T) {
	g := gridFromRows("#..")

	res := Move(g, Rect{X: 10, Y: 2, W: 10, H: 10}, 8, 0)
	assert.False(t, res.BlockedX, "cells already overlapped are ignored")
	assert.Equal(t, 18.0, res.Rect.X)
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(1, 1)
	assert.InDelta(t, math.Sqrt2/2, x, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, y, 1e-9)

	x, y = Normalize(0.5, 0)
	assert.Equal(t, 0.5, x)
	assert.Equal(t, 0.0, y)
}

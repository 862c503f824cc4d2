package collision

import "math"

// MoveResult is the outcome of one Move call.
type MoveResult struct {
	Rect     Rect
	DX, DY   float64 // displacement actually applied
	BlockedX bool
	BlockedY bool
}

// Move resolves a displacement against the grid one axis at a time: the
// horizontal step is applied and clamped first, then the vertical step from
// the clamped position. A blocked axis stops flush against the tile edge.
//
// Only cells the hitbox would newly enter are tested, so an entity already
// overlapping a solid cell can still move out of it.
func Move(g *Grid, r Rect, dx, dy float64) MoveResult {
	res := MoveResult{Rect: r}

	if dx != 0 {
		res.Rect, res.BlockedX = moveX(g, res.Rect, dx)
		res.DX = res.Rect.X - r.X
	}
	if dy != 0 {
		before := res.Rect.Y
		res.Rect, res.BlockedY = moveY(g, res.Rect, dy)
		res.DY = res.Rect.Y - before
	}
	return res
}

func moveX(g *Grid, r Rect, dx float64) (Rect, bool) {
	y0 := firstCovered(r.Y, g.TileHeight)
	y1 := lastCovered(r.Bottom(), g.TileHeight)
	moved := r.Translate(dx, 0)

	if dx > 0 {
		from := lastCovered(r.Right(), g.TileWidth) + 1
		to := lastCovered(moved.Right(), g.TileWidth)
		for cx := from; cx <= to; cx++ {
			if columnBlocked(g, cx, y0, y1) {
				r.X = float64(cx)*g.TileWidth - r.W
				return r, true
			}
		}
		return moved, false
	}

	from := firstCovered(r.X, g.TileWidth) - 1
	to := firstCovered(moved.X, g.TileWidth)
	for cx := from; cx >= to; cx-- {
		if columnBlocked(g, cx, y0, y1) {
			r.X = float64(cx+1) * g.TileWidth
			return r, true
		}
	}
	return moved, false
}

func moveY(g *Grid, r Rect, dy float64) (Rect, bool) {
	x0 := firstCovered(r.X, g.TileWidth)
	x1 := lastCovered(r.Right(), g.TileWidth)
	moved := r.Translate(0, dy)

	if dy > 0 {
		from := lastCovered(r.Bottom(), g.TileHeight) + 1
		to := lastCovered(moved.Bottom(), g.TileHeight)
		for cy := from; cy <= to; cy++ {
			if rowBlocked(g, cy, x0, x1, true) {
				r.Y = float64(cy)*g.TileHeight - r.H
				return r, true
			}
		}
		return moved, false
	}

	from := firstCovered(r.Y, g.TileHeight) - 1
	to := firstCovered(moved.Y, g.TileHeight)
	for cy := from; cy >= to; cy-- {
		if rowBlocked(g, cy, x0, x1, false) {
			r.Y = float64(cy+1) * g.TileHeight
			return r, true
		}
	}
	return moved, false
}

func columnBlocked(g *Grid, cx, y0, y1 int) bool {
	for cy := y0; cy <= y1; cy++ {
		if g.IsSolid(cx, cy) {
			return true
		}
	}
	return false
}

func rowBlocked(g *Grid, cy, x0, x1 int, downward bool) bool {
	for cx := x0; cx <= x1; cx++ {
		switch g.Kind(cx, cy) {
		case Solid:
			return true
		case OneWay:
			if downward {
				return true
			}
		}
	}
	return false
}

// Normalize scales (x, y) down to unit length when it is longer than one, so
// diagonal input is not faster than straight input.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l <= 1 {
		return x, y
	}
	return x / l, y / l
}

// Package collision holds the per-level collision grid and the
// axis-separated movement step that resolves motion against it.
package collision

import (
	"fmt"
	"math"
	"strings"

	"github.com/automoto/escape-the-maze/leveldata"
)

// Cell is the collision kind of one tile cell.
type Cell uint8

const (
	Empty Cell = iota
	Solid
	// OneWay blocks only downward movement entering the cell from above.
	OneWay
)

func (c Cell) String() string {
	switch c {
	case Solid:
		return "#"
	case OneWay:
		return "-"
	default:
		return "."
	}
}

// Grid is a row-major array of cells, one per tile.
type Grid struct {
	Width      int // cells
	Height     int // cells
	TileWidth  float64
	TileHeight float64
	cells      []Cell
}

func NewGrid(width, height int, tileWidth, tileHeight float64) *Grid {
	return &Grid{
		Width:      width,
		Height:     height,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		cells:      make([]Cell, width*height),
	}
}

// NewGridFromLevel scans the descriptor's solid layer once. A tile index is
// solid when it appears in solidIndices, or when it is non-zero and
// solidIndices is empty. Indices the descriptor flags as one-way become
// OneWay cells.
func NewGridFromLevel(desc *leveldata.Descriptor, solidIndices []int) (*Grid, error) {
	layer, ok := desc.Layer(desc.SolidLayer)
	if !ok {
		return nil, fmt.Errorf("level %q: solid layer %q not found", desc.ID, desc.SolidLayer)
	}

	solidSet := make(map[int]bool, len(solidIndices))
	for _, idx := range solidIndices {
		solidSet[idx] = true
	}

	g := NewGrid(desc.GridWidth, desc.GridHeight, float64(desc.TileWidth), float64(desc.TileHeight))
	for cy := 0; cy < g.Height; cy++ {
		for cx := 0; cx < g.Width; cx++ {
			idx := layer.At(desc.GridWidth, cx, cy)
			switch {
			case idx == 0:
			case desc.OneWay[idx]:
				g.cells[cy*g.Width+cx] = OneWay
			case len(solidSet) == 0 || solidSet[idx]:
				g.cells[cy*g.Width+cx] = Solid
			}
		}
	}
	return g, nil
}

func (g *Grid) inBounds(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < g.Width && cy < g.Height
}

// Kind returns the cell kind. Cells outside the grid are Solid, so the
// level edge acts as a wall.
func (g *Grid) Kind(cx, cy int) Cell {
	if !g.inBounds(cx, cy) {
		return Solid
	}
	return g.cells[cy*g.Width+cx]
}

// IsSolid reports whether the cell blocks movement from every direction.
func (g *Grid) IsSolid(cx, cy int) bool {
	return g.Kind(cx, cy) == Solid
}

// SetCell toggles a cell between Solid and Empty. Doors use it to open
// their gated cells.
func (g *Grid) SetCell(cx, cy int, solid bool) {
	if !g.inBounds(cx, cy) {
		panic(fmt.Sprintf("collision: SetCell(%d, %d) outside %dx%d grid", cx, cy, g.Width, g.Height))
	}
	if solid {
		g.cells[cy*g.Width+cx] = Solid
	} else {
		g.cells[cy*g.Width+cx] = Empty
	}
}

// CellAt returns the cell containing the pixel position.
func (g *Grid) CellAt(px, py float64) (int, int) {
	return int(math.Floor(px / g.TileWidth)), int(math.Floor(py / g.TileHeight))
}

// CellRect returns the pixel bounds of a cell.
func (g *Grid) CellRect(cx, cy int) Rect {
	return Rect{
		X: float64(cx) * g.TileWidth,
		Y: float64(cy) * g.TileHeight,
		W: g.TileWidth,
		H: g.TileHeight,
	}
}

// CellsCovering returns the inclusive cell range a rect overlaps. Edges that
// sit exactly on a cell boundary do not count as overlapping the next cell.
func (g *Grid) CellsCovering(r Rect) (x0, y0, x1, y1 int) {
	x0 = firstCovered(r.X, g.TileWidth)
	x1 = lastCovered(r.Right(), g.TileWidth)
	y0 = firstCovered(r.Y, g.TileHeight)
	y1 = lastCovered(r.Bottom(), g.TileHeight)
	return x0, y0, x1, y1
}

// Cells returns a copy of the cell array in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// String renders the grid one row per line for debug output.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for cy := 0; cy < g.Height; cy++ {
		for cx := 0; cx < g.Width; cx++ {
			b.WriteString(g.cells[cy*g.Width+cx].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// edgeEpsilon absorbs float error so an edge clamped onto a tile boundary is
// not read as overlapping the tile beyond it.
const edgeEpsilon = 1e-6

func firstCovered(edge, size float64) int {
	return int(math.Floor(edge/size + edgeEpsilon))
}

func lastCovered(edge, size float64) int {
	return int(math.Ceil(edge/size-edgeEpsilon)) - 1
}

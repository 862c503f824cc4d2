package systems

import (
	"testing"

	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/components"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/automoto/escape-the-maze/systems/factory"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// newTestWorld builds a populated level from ASCII rows of 16px tiles,
// '#' marking a wall.
func newTestWorld(t *testing.T, rows []string, objects ...leveldata.ObjectRecord) donburi.World {
	t.Helper()
	desc := &leveldata.Descriptor{
		ID:         "test",
		TileWidth:  16,
		TileHeight: 16,
		GridWidth:  len(rows[0]),
		GridHeight: len(rows),
		SolidLayer: "Collision",
		Objects:    objects,
	}
	indices := make([]int, 0, desc.GridWidth*desc.GridHeight)
	for _, row := range rows {
		for _, c := range row {
			if c == '#' {
				indices = append(indices, 1)
			} else {
				indices = append(indices, 0)
			}
		}
	}
	desc.Layers = []leveldata.TileLayer{{Name: "Collision", Indices: indices}}

	grid, err := collision.NewGridFromLevel(desc, nil)
	require.NoError(t, err)
	w := donburi.NewWorld()
	factory.CreateLevel(w, desc, grid)
	require.NoError(t, factory.Populate(w, desc))
	return w
}

func openRows(width, height int) []string {
	rows := make([]string, height)
	for i := range rows {
		b := make([]byte, width)
		for j := range b {
			b[j] = '.'
		}
		rows[i] = string(b)
	}
	return rows
}

// step runs one tick's systems in session order.
func step(w donburi.World, in components.InputData, dt float64) {
	if e, ok := components.Time.First(w); ok {
		tm := components.Time.Get(e)
		tm.Now += dt
		tm.Delta = dt
	}
	if e, ok := components.Input.First(w); ok {
		components.Input.SetValue(e, in)
	}
	notifications(w).Clear()

	UpdatePlayer(w)
	UpdateMovement(w)
	UpdateEnemies(w)
	UpdateAnimations(w)
	UpdateDeaths(w)
	ResolveInteractions(w)
}

func spawn(x, y float64) leveldata.ObjectRecord {
	return leveldata.ObjectRecord{ID: 1, Type: leveldata.TypeSpawn, X: x, Y: y}
}

func playerOf(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	p, ok := tags.Player.First(w)
	require.True(t, ok)
	return p
}

func entryByID(t *testing.T, w donburi.World, id int) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	components.Record.Each(w, func(e *donburi.Entry) {
		if components.Record.Get(e).ID == id {
			found = e
		}
	})
	require.NotNil(t, found, "no entity for object %d", id)
	return found
}

func notesOf(w donburi.World, kind components.NotificationKind) []components.Notification {
	var out []components.Notification
	for _, n := range notifications(w).List {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// placeCentre moves an entity so its hitbox is centred on (x, y).
func placeCentre(e *donburi.Entry, x, y float64) {
	body := components.Body.Get(e)
	hb := body.HitboxRect()
	body.PlaceHitbox(collision.Rect{X: x - hb.W/2, Y: y - hb.H/2, W: hb.W, H: hb.H})
	syncObject(e)
}

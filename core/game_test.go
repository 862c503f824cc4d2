package core

import (
	"errors"
	"testing"

	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/automoto/escape-the-maze/logger"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

// openLevel is a 10x6 level of 16px tiles with no walls.
func openLevel(id string, objects ...leveldata.ObjectRecord) *leveldata.Descriptor {
	return &leveldata.Descriptor{
		ID:         id,
		TileWidth:  16,
		TileHeight: 16,
		GridWidth:  10,
		GridHeight: 6,
		SolidLayer: "Collision",
		Layers: []leveldata.TileLayer{
			{Name: "Collision", Indices: make([]int, 10*6)},
		},
		Objects: objects,
	}
}

func spawnAt(x, y float64) leveldata.ObjectRecord {
	return leveldata.ObjectRecord{ID: 1, Type: leveldata.TypeSpawn, X: x, Y: y}
}

// ladderTo sits under a player spawned at (40, 40).
func ladderTo(dest string) leveldata.ObjectRecord {
	return leveldata.ObjectRecord{ID: 9, Type: leveldata.TypeLadder, X: 32, Y: 24, Width: 16, Height: 24,
		Properties: leveldata.Properties{"destination": dest}}
}

func withoutFade(t *testing.T) {
	t.Helper()
	prev := cfg.Transition.FadeDuration
	cfg.Transition.FadeDuration = 0
	t.Cleanup(func() { cfg.Transition.FadeDuration = prev })
}

func newGame(t *testing.T, catalog leveldata.MapCatalog, start string) *Game {
	t.Helper()
	g, err := New(catalog, start)
	require.NoError(t, err)
	require.Equal(t, StateRunning, g.State())
	return g
}

func notesOf(g *Game, kind components.NotificationKind) []components.Notification {
	var out []components.Notification
	for _, n := range g.Notifications() {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func TestFourSilverKeysOpenDoor(t *testing.T) {
	withoutFade(t)
	// Thin keys in a row to the right of the spawn, one per 4px step.
	key := func(id int, x float64) leveldata.ObjectRecord {
		return leveldata.ObjectRecord{ID: id, Type: leveldata.TypeCollectible, X: x, Y: 30, Width: 6, Height: 12,
			Properties: leveldata.Properties{"item": "key", "key_type": "silver"}}
	}
	g := newGame(t, leveldata.MapCatalog{
		"level1": openLevel("level1",
			spawnAt(40, 40),
			key(2, 44), key(3, 48), key(4, 52), key(5, 56),
			leveldata.ObjectRecord{ID: 6, Type: leveldata.TypeDoor, X: 80, Y: 32, Width: 16, Height: 16,
				Properties: leveldata.Properties{"required_key": "silver", "count": "4"}},
		),
	}, "level1")
	require.True(t, g.Grid().IsSolid(5, 2))
	require.Equal(t, 0, g.HUD().Inventory[leveldata.KeySilver])

	// 80 px/s for 0.05 s is a 4px step.
	const step = 0.05
	right := InputAction{MoveX: 1}
	for want := 1; want <= 4; want++ {
		g.Tick(right, step)
		assert.Equal(t, want, g.HUD().Inventory[leveldata.KeySilver], "one key per step")
		assert.Len(t, notesOf(g, components.NotifyPickedUp), 1)
	}
	require.True(t, g.Grid().IsSolid(5, 2))

	opened := false
	for i := 0; i < 3 && !opened; i++ {
		g.Tick(InputAction{MoveX: 1, Interact: true}, step)
		opened = len(notesOf(g, components.NotifyDoorOpened)) == 1
	}
	require.True(t, opened, "the door opens once the player reaches it")
	assert.False(t, g.Grid().IsSolid(5, 2))
	assert.Equal(t, 4, g.HUD().Inventory[leveldata.KeySilver], "keys are kept")

	for i := 0; i < 10; i++ {
		g.Tick(right, step)
	}
	view, ok := g.Player()
	require.True(t, ok)
	assert.Greater(t, view.Hitbox.X, 96.0, "the player walks through the open doorway")
}

func TestTrapTwiceWithinIFrames(t *testing.T) {
	withoutFade(t)
	g := newGame(t, leveldata.MapCatalog{
		"level1": openLevel("level1",
			spawnAt(40, 40),
			leveldata.ObjectRecord{ID: 2, Type: leveldata.TypeTrap, Name: "arrow", X: 32, Y: 32, Width: 16, Height: 16},
		),
	}, "level1")

	g.Tick(InputAction{}, tick)
	g.Tick(InputAction{}, tick)

	assert.Equal(t, 75, g.HUD().HP)
	p, ok := g.Player()
	require.True(t, ok)
	assert.True(t, p.Invincible)
}

func TestLadderCarriesPlayerState(t *testing.T) {
	withoutFade(t)
	g := newGame(t, leveldata.MapCatalog{
		"level1": openLevel("level1", spawnAt(40, 40), ladderTo("level2")),
		"level2": openLevel("level2", spawnAt(100, 80)),
	}, "level1")

	p, _ := tags.Player.First(g.world)
	components.Health.Get(p).Current = 60
	data := components.Player.Get(p)
	data.Score = 30
	data.AddKeys(leveldata.KeyGolden, 2)

	g.Tick(InputAction{Interact: true}, tick)

	require.Equal(t, StateRunning, g.State())
	assert.Equal(t, "level2", g.LevelID())
	hud := g.HUD()
	assert.Equal(t, 60, hud.HP)
	assert.Equal(t, 30, hud.Score)
	assert.Equal(t, 2, hud.Inventory[leveldata.KeyGolden])

	view, ok := g.Player()
	require.True(t, ok)
	assert.Equal(t, 92.0, view.Bounds.X, "centred on the spawn x")
	assert.Equal(t, 80.0, view.Bounds.Y+view.Bounds.H, "bottom on the spawn y")

	notes := notesOf(g, components.NotifyLevelTransition)
	require.Len(t, notes, 2, "the ladder's and the controller's")
	assert.Equal(t, 9, notes[0].EntityID)
	assert.Equal(t, 0, notes[1].EntityID)
	assert.Equal(t, "level2", notes[1].Destination)
}

func TestTransitionKeepsTickNotifications(t *testing.T) {
	withoutFade(t)
	g := newGame(t, leveldata.MapCatalog{
		"level1": openLevel("level1",
			spawnAt(40, 40),
			leveldata.ObjectRecord{ID: 2, Type: leveldata.TypeCollectible, X: 32, Y: 28, Width: 16, Height: 16,
				Properties: leveldata.Properties{"item": "coin"}},
			ladderTo("level2"),
		),
		"level2": openLevel("level2", spawnAt(100, 80)),
	}, "level1")

	g.Tick(InputAction{Interact: true}, tick)

	require.Equal(t, "level2", g.LevelID())
	assert.Equal(t, 10, g.HUD().Score)
	picked := notesOf(g, components.NotifyPickedUp)
	require.Len(t, picked, 1, "pickups of the transition tick are still reported")
	assert.Equal(t, 2, picked[0].EntityID)
	assert.Equal(t, components.KindCoin, picked[0].Item)
	assert.Len(t, notesOf(g, components.NotifyLevelTransition), 2)

	g.Tick(InputAction{}, tick)
	assert.Empty(t, g.Notifications(), "carried notifications last one tick")
}

func TestTransitionFailureKeepsLevel(t *testing.T) {
	withoutFade(t)
	tests := []struct {
		name  string
		dest  string
		check func(t *testing.T, err error)
	}{
		{
			name: "missing spawn",
			dest: "broken",
			check: func(t *testing.T, err error) {
				var missing *leveldata.MissingSpawnError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, "broken", missing.LevelID)
			},
		},
		{
			name: "unknown level",
			dest: "nowhere",
			check: func(t *testing.T, err error) {
				var notFound *leveldata.LevelNotFoundError
				require.ErrorAs(t, err, &notFound)
			},
		},
		{
			name: "unrecognized object",
			dest: "odd",
			check: func(t *testing.T, err error) {
				var unrec *leveldata.UnrecognizedTypeError
				require.ErrorAs(t, err, &unrec)
				assert.Equal(t, "odd", unrec.LevelID)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, leveldata.MapCatalog{
				"level1": openLevel("level1", spawnAt(40, 40), ladderTo(tt.dest)),
				"broken": openLevel("broken", ladderTo("level1")),
				"odd": openLevel("odd", spawnAt(8, 8),
					leveldata.ObjectRecord{ID: 2, Type: leveldata.TypeEnemy, Name: "ghost"}),
			}, "level1")
			before := g.Entities()

			g.Tick(InputAction{Interact: true}, tick)

			assert.Equal(t, StateError, g.State())
			tt.check(t, g.Err())
			assert.Equal(t, "level1", g.LevelID())
			assert.Equal(t, before, g.Entities(), "the current level is untouched")

			g.Tick(InputAction{Interact: true}, tick)
			assert.Equal(t, StateError, g.State(), "an errored session does not simulate")
		})
	}
}

func TestVictory(t *testing.T) {
	withoutFade(t)
	g := newGame(t, leveldata.MapCatalog{
		"level1": openLevel("level1", spawnAt(40, 40), ladderTo("finish")),
	}, "level1")

	g.Tick(InputAction{Interact: true}, tick)

	assert.Equal(t, StateVictory, g.State())
	assert.NoError(t, g.Err())
}

func TestFailureAndRestart(t *testing.T) {
	withoutFade(t)
	g := newGame(t, leveldata.MapCatalog{
		"level1": openLevel("level1",
			spawnAt(40, 40),
			leveldata.ObjectRecord{ID: 2, Type: leveldata.TypeTrap, Name: "arrow", X: 32, Y: 32, Width: 16, Height: 16,
				Properties: leveldata.Properties{"damage": "500"}},
		),
	}, "level1")

	g.Tick(InputAction{}, tick)
	require.Equal(t, StateFailed, g.State())
	assert.Equal(t, 0, g.HUD().HP)

	g.Tick(InputAction{MoveX: 1}, tick)
	assert.Equal(t, StateFailed, g.State(), "a failed session stays failed")

	require.NoError(t, g.Restart())
	assert.Equal(t, StateRunning, g.State())
	assert.Equal(t, 100, g.HUD().HP)
}

func TestFadeFreezesSimulation(t *testing.T) {
	prev := cfg.Transition.FadeDuration
	cfg.Transition.FadeDuration = 0.5
	t.Cleanup(func() { cfg.Transition.FadeDuration = prev })

	g := newGame(t, leveldata.MapCatalog{
		"level1": openLevel("level1", spawnAt(40, 40), ladderTo("level2")),
		"level2": openLevel("level2", spawnAt(100, 80)),
	}, "level1")

	g.Tick(InputAction{Interact: true}, tick)
	require.Equal(t, StateTransitioning, g.State())
	assert.Equal(t, 1.0, g.FadeAlpha())
	start, _ := g.Player()

	g.Tick(InputAction{MoveX: 1}, 0.25)
	assert.Equal(t, StateTransitioning, g.State())
	assert.InDelta(t, 0.5, g.FadeAlpha(), 1e-6)
	now, _ := g.Player()
	assert.Equal(t, start.Hitbox, now.Hitbox, "no movement during the fade")

	g.Tick(InputAction{}, 0.3)
	assert.Equal(t, StateRunning, g.State())
	assert.Zero(t, g.FadeAlpha())
}

func TestReloadKeepsPlayerState(t *testing.T) {
	withoutFade(t)
	desc := openLevel("level1",
		spawnAt(40, 40),
		leveldata.ObjectRecord{ID: 2, Type: leveldata.TypeCollectible, X: 32, Y: 28, Width: 16, Height: 16,
			Properties: leveldata.Properties{"item": "coin"}},
	)
	g := newGame(t, leveldata.MapCatalog{"level1": desc}, "level1")

	g.Tick(InputAction{}, tick)
	require.Equal(t, 10, g.HUD().Score)

	desc.Objects = desc.Objects[:1]
	require.NoError(t, g.Reload())

	assert.Equal(t, StateRunning, g.State())
	assert.Equal(t, 10, g.HUD().Score)
	assert.Len(t, g.Entities(), 1)
}

func TestNegativeDeltaIsZero(t *testing.T) {
	withoutFade(t)
	g := newGame(t, leveldata.MapCatalog{"level1": openLevel("level1", spawnAt(40, 40))}, "level1")
	start, _ := g.Player()

	g.Tick(InputAction{MoveX: 1}, -1)

	now, _ := g.Player()
	assert.Equal(t, start.Hitbox, now.Hitbox)
	assert.Zero(t, g.now())
}

func TestNewFailsOnBadStart(t *testing.T) {
	_, err := New(leveldata.MapCatalog{}, "level1")

	var notFound *leveldata.LevelNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestCheat(t *testing.T) {
	withoutFade(t)
	g := newGame(t, leveldata.MapCatalog{"level1": openLevel("level1", spawnAt(40, 40))}, "level1")
	p, _ := tags.Player.First(g.world)
	components.Health.Get(p).Current = 10

	g.Cheat(CheatKeys)
	g.Cheat(CheatHeal)

	hud := g.HUD()
	assert.Equal(t, 100, hud.HP)
	assert.Equal(t, 1, hud.Inventory[leveldata.KeySilver])
	assert.Equal(t, 1, hud.Inventory[leveldata.KeyGolden])
}

func TestOutputs(t *testing.T) {
	withoutFade(t)
	g := newGame(t, leveldata.MapCatalog{
		"level1": openLevel("level1",
			spawnAt(40, 40),
			leveldata.ObjectRecord{ID: 3, Type: leveldata.TypeEnemy, Name: "skeleton1", X: 120, Y: 40},
			leveldata.ObjectRecord{ID: 2, Type: leveldata.TypeDoor, X: 80, Y: 0, Width: 16, Height: 16},
		),
	}, "level1")

	rs := g.Renderables()
	require.Len(t, rs, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{rs[0].ID, rs[1].ID, rs[2].ID})
	assert.Equal(t, components.CategoryPlayer, rs[0].Category)
	assert.Equal(t, "closed", rs[1].State)
	assert.Equal(t, "idle", rs[2].State)

	ov := g.DebugOverlay()
	assert.Len(t, ov.Objects, 3)
	assert.Equal(t, "#", ov.Grid[5:6], "the closed door's cell")

	hud := g.HUD()
	hud.Inventory[leveldata.KeySilver] = 99
	assert.Zero(t, g.HUD().Inventory[leveldata.KeySilver], "HUD returns a copy")
}

func TestLogsNameLevelByID(t *testing.T) {
	withoutFade(t)
	prev := logger.Log.ReplaceHooks(make(logrus.LevelHooks))
	t.Cleanup(func() { logger.Log.ReplaceHooks(prev) })
	hook := test.NewLocal(logger.Log)

	g := newGame(t, leveldata.MapCatalog{
		"level1": openLevel("level1",
			spawnAt(40, 40),
			leveldata.ObjectRecord{ID: 2, Type: leveldata.TypeTrap, Name: "arrow", X: 32, Y: 32, Width: 16, Height: 16,
				Properties: leveldata.Properties{"damage": "200"}},
		),
	}, "level1")
	g.Tick(InputAction{}, tick)
	require.Equal(t, StateFailed, g.State())

	messages := map[string]bool{}
	for _, entry := range hook.AllEntries() {
		messages[entry.Message] = true
		assert.NotContains(t, entry.Data, "level", "logrus reserves the level key")
		if entry.Message == "level loaded" || entry.Message == "player died" {
			assert.Equal(t, "level1", entry.Data["level_id"])
		}
	}
	assert.True(t, messages["level loaded"])
	assert.True(t, messages["player died"])
}

package core

import (
	"fmt"

	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/automoto/escape-the-maze/logger"
	"github.com/automoto/escape-the-maze/systems"
	"github.com/automoto/escape-the-maze/systems/factory"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// InputAction is the semantic input for one tick.
type InputAction struct {
	MoveX, MoveY float64
	Attack       bool
	Interact     bool
}

// Game is one play session. It owns the current level's world and runs its
// systems in a fixed order every tick. It is not safe for concurrent use.
type Game struct {
	catalog leveldata.Catalog
	world   donburi.World
	levelID string

	state GameState
	err   error

	fade      *gween.Tween
	fadeAlpha float64

	// entry is the player state the current level was entered with.
	entry PlayerSnapshot

	log *logrus.Entry
}

// New starts a session on level startID with a fresh player.
func New(catalog leveldata.Catalog, startID string) (*Game, error) {
	g := &Game{
		catalog: catalog,
		log:     logger.For("transition"),
	}
	snap := defaultSnapshot()
	if err := g.load(startID, snap); err != nil {
		return nil, err
	}
	g.entry = snap
	g.state = StateRunning
	return g, nil
}

// Tick advances the session by dt seconds. Only a running session simulates;
// a transitioning one only advances its fade.
func (g *Game) Tick(in InputAction, dt float64) {
	if dt < 0 {
		dt = 0
	}
	g.notifications().Clear()

	switch g.state {
	case StateTransitioning:
		g.updateFade(dt)
		return
	case StateRunning:
	default:
		return
	}

	g.advanceClock(in, dt)

	systems.UpdatePlayer(g.world)
	systems.UpdateMovement(g.world)
	systems.UpdateEnemies(g.world)
	systems.UpdateAnimations(g.world)
	systems.UpdateDeaths(g.world)
	systems.ResolveInteractions(g.world)

	level := g.level()
	if dest := level.PendingDestination; dest != "" {
		level.PendingDestination = ""
		_ = g.Transition(dest)
		return
	}
	if level.PlayerDied {
		g.state = StateFailed
		g.log.WithField("level_id", g.levelID).Info("player died")
	}
}

func (g *Game) advanceClock(in InputAction, dt float64) {
	if e, ok := components.Time.First(g.world); ok {
		t := components.Time.Get(e)
		t.Now += dt
		t.Delta = dt
	}
	if e, ok := components.Input.First(g.world); ok {
		components.Input.SetValue(e, components.InputData{
			Move:     components.Vector{X: in.MoveX, Y: in.MoveY},
			Attack:   in.Attack,
			Interact: in.Interact,
		})
	}
}

func (g *Game) updateFade(dt float64) {
	if g.fade == nil {
		g.finishFade()
		return
	}
	alpha, done := g.fade.Update(float32(dt))
	g.fadeAlpha = float64(alpha)
	if done {
		g.finishFade()
	}
}

func (g *Game) finishFade() {
	g.fade = nil
	g.fadeAlpha = 0
	g.state = StateRunning
}

// Transition moves the player to level id, carrying hp, inventory and score.
// The destination is fully validated before the current level is discarded;
// on failure the current level stays loaded and the session enters the error
// state.
func (g *Game) Transition(id string) error {
	g.state = StateTransitioning
	snap := g.snapshot()

	if cfg.IsVictoryDestination(id) {
		g.state = StateVictory
		g.log.WithFields(logrus.Fields{"from": g.levelID, "score": snap.Score}).Info("victory")
		return nil
	}

	from := g.levelID
	// Notifications of the tick that triggered the transition belong to
	// the outgoing world and must survive the swap.
	carried := g.Notifications()
	if err := g.load(id, snap); err != nil {
		g.state = StateError
		g.err = err
		g.log.WithFields(logrus.Fields{"from": from, "to": id}).WithError(err).Error("level transition failed")
		return err
	}
	g.entry = snap
	g.startFade()

	notes := g.notifications()
	for _, note := range carried {
		notes.Emit(note)
	}
	notes.Emit(components.Notification{
		Kind:        components.NotifyLevelTransition,
		Destination: id,
	})
	g.log.WithFields(logrus.Fields{"from": from, "to": id}).Info("level transition")
	return nil
}

// Restart reloads the current level with the player state it was entered
// with. It is how a failed session is retried.
func (g *Game) Restart() error {
	if err := g.rebuild(g.entry); err != nil {
		return err
	}
	g.startFade()
	return nil
}

// Reload rebuilds the current level in place, keeping the player's current
// hp, inventory and score. Used when the level file changes on disk.
func (g *Game) Reload() error {
	if err := g.rebuild(g.snapshot()); err != nil {
		return err
	}
	g.finishFade()
	return nil
}

func (g *Game) rebuild(snap PlayerSnapshot) error {
	if err := g.load(g.levelID, snap); err != nil {
		g.state = StateError
		g.err = err
		g.log.WithField("level_id", g.levelID).WithError(err).Error("level reload failed")
		return err
	}
	return nil
}

// load builds a complete world for level id and swaps it in only once every
// step has succeeded.
func (g *Game) load(id string, snap PlayerSnapshot) error {
	desc, err := g.catalog.Load(id)
	if err != nil {
		return fmt.Errorf("load level %q: %w", id, err)
	}
	if err := factory.Validate(desc); err != nil {
		return err
	}
	grid, err := collision.NewGridFromLevel(desc, cfg.Collision.SolidIndices)
	if err != nil {
		return fmt.Errorf("build grid for %q: %w", id, err)
	}

	w := donburi.NewWorld()
	factory.CreateLevel(w, desc, grid)
	if err := factory.Populate(w, desc); err != nil {
		return err
	}
	player, ok := tags.Player.First(w)
	if !ok {
		return &leveldata.MissingSpawnError{LevelID: desc.ID}
	}
	snap.restore(player)

	g.world = w
	g.levelID = desc.ID
	g.err = nil

	g.log.WithFields(logrus.Fields{
		"level_id": desc.ID,
		"grid":     fmt.Sprintf("%dx%d", desc.GridWidth, desc.GridHeight),
		"objects":  len(desc.Objects),
	}).Info("level loaded")
	return nil
}

func (g *Game) startFade() {
	if cfg.Transition.FadeDuration <= 0 {
		g.finishFade()
		return
	}
	g.fade = gween.New(1, 0, float32(cfg.Transition.FadeDuration), ease.Linear)
	g.fadeAlpha = 1
	g.state = StateTransitioning
}

func (g *Game) snapshot() PlayerSnapshot {
	if p, ok := tags.Player.First(g.world); ok {
		return takeSnapshot(p)
	}
	return defaultSnapshot()
}

func (g *Game) level() *components.LevelData {
	e, _ := components.Level.First(g.world)
	return components.Level.Get(e)
}

func (g *Game) notifications() *components.NotificationsData {
	e, _ := components.Notifications.First(g.world)
	return components.Notifications.Get(e)
}

// CheatKind names a debug cheat.
type CheatKind string

const (
	CheatKeys CheatKind = "keys" // one silver and one golden key
	CheatHeal CheatKind = "heal" // restore full hp
)

// Cheat applies a debug cheat to the player.
func (g *Game) Cheat(kind CheatKind) {
	p, ok := tags.Player.First(g.world)
	if !ok {
		return
	}
	switch kind {
	case CheatKeys:
		data := components.Player.Get(p)
		data.AddKeys(leveldata.KeySilver, 1)
		data.AddKeys(leveldata.KeyGolden, 1)
	case CheatHeal:
		health := components.Health.Get(p)
		health.Heal(health.Max)
	default:
		return
	}
	g.log.WithField("cheat", kind).Debug("cheat applied")
}

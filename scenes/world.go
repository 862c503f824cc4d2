package scenes

import (
	"fmt"

	"github.com/automoto/escape-the-maze/assets"
	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/core"
	"github.com/automoto/escape-the-maze/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// message is a notification popup and the seconds it has left on screen.
type message struct {
	text string
	ttl  float64
}

// WorldScene drives a game session: it feeds polled input to the engine
// every frame and draws what the engine reports.
type WorldScene struct {
	game     *core.Game
	watcher  *assets.Watcher
	messages []message
	overlay  bool
	log      *logrus.Entry
}

// NewWorldScene wraps a session. watcher may be nil; when set, changes to
// the current level's file reload it in place.
func NewWorldScene(game *core.Game, watcher *assets.Watcher) *WorldScene {
	return &WorldScene{
		game:    game,
		watcher: watcher,
		overlay: cfg.Debug.Overlay,
		log:     logger.For("client"),
	}
}

func (s *WorldScene) Update() {
	s.drainReloads()

	if justPressed(ActionToggleOverlay) {
		s.overlay = !s.overlay
	}
	if cfg.Debug.Cheats {
		if justPressed(ActionCheatKeys) {
			s.game.Cheat(core.CheatKeys)
		}
		if justPressed(ActionCheatHeal) {
			s.game.Cheat(core.CheatHeal)
		}
	}
	if s.game.State() == core.StateFailed && justPressed(ActionRetry) {
		if err := s.game.Restart(); err != nil {
			s.log.WithError(err).Error("restart failed")
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	s.game.Tick(pollInput(), dt)

	for _, note := range s.game.Notifications() {
		if text := messageFor(note); text != "" {
			s.messages = append(s.messages, message{text: text, ttl: cfg.Message.DisplayDuration})
		}
	}
	s.ageMessages(dt)
}

func (s *WorldScene) ageMessages(dt float64) {
	kept := s.messages[:0]
	for _, m := range s.messages {
		m.ttl -= dt
		if m.ttl > 0 {
			kept = append(kept, m)
		}
	}
	s.messages = kept
}

// drainReloads applies pending file changes between ticks.
func (s *WorldScene) drainReloads() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case id, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			if id != s.game.LevelID() {
				continue
			}
			if err := s.game.Reload(); err != nil {
				s.log.WithError(err).WithField("level_id", id).Warn("hot reload failed")
				continue
			}
			s.log.WithField("level_id", id).Info("level reloaded")
		case err, ok := <-s.watcher.Errors:
			if !ok {
				s.watcher = nil
				return
			}
			s.log.WithError(err).Warn("level watcher error")
		default:
			return
		}
	}
}

// messageFor turns a notification into popup text; empty means no popup.
func messageFor(note components.Notification) string {
	switch note.Kind {
	case components.NotifyDoorLocked:
		return note.Message
	case components.NotifyDoorOpened:
		return "The door opens"
	case components.NotifyPickedUp:
		switch note.Item {
		case components.KindCoin:
			return fmt.Sprintf("+%d", note.Count)
		case components.KindKey:
			return fmt.Sprintf("Found a %s key", note.KeyType)
		case components.KindPotion:
			return fmt.Sprintf("+%d HP", note.Count)
		}
	case components.NotifyLevelTransition:
		if note.EntityID == 0 {
			return fmt.Sprintf("Entering %s", note.Destination)
		}
	case components.NotifyEnemyKilled:
		return "Enemy defeated"
	}
	return ""
}

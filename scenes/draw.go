package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/core"
	"github.com/automoto/escape-the-maze/fonts"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const hudMargin = 4

func (s *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	drawGrid(screen, s.game.Grid())
	for _, r := range s.game.Renderables() {
		drawRenderable(screen, r)
	}
	if s.overlay {
		drawOverlay(screen, s.game.DebugOverlay())
	}
	s.drawHUD(screen)
	s.drawMessages(screen)

	if a := s.game.FadeAlpha(); a > 0 {
		fillScreen(screen, color.RGBA{A: uint8(a * 255)})
	}

	switch s.game.State() {
	case core.StateFailed:
		drawBanner(screen, "Game over", "Press R to retry")
	case core.StateVictory:
		drawBanner(screen, "You escaped!", fmt.Sprintf("Score %d", s.game.HUD().Score))
	case core.StateError:
		drawBanner(screen, "Level error", fmt.Sprint(s.game.Err()))
	}
}

func drawGrid(screen *ebiten.Image, grid *collision.Grid) {
	for cy := 0; cy < grid.Height; cy++ {
		for cx := 0; cx < grid.Width; cx++ {
			r := grid.CellRect(cx, cy)
			switch grid.Kind(cx, cy) {
			case collision.Solid:
				vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.Grey, false)
			case collision.OneWay:
				vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), 2, cfg.Brown, false)
			}
		}
	}
}

func drawRenderable(screen *ebiten.Image, r core.Renderable) {
	c, ok := renderColor(r)
	if !ok {
		return
	}
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// renderColor picks the fill for an entity; ok is false for entities that
// are not drawn.
func renderColor(r core.Renderable) (color.Color, bool) {
	switch r.Category {
	case components.CategoryPlayer:
		return cfg.Blue, true
	case components.CategoryDoor:
		if r.State == "open" {
			return nil, false
		}
		return cfg.Brown, true
	case components.CategoryCollectible:
		switch components.CollectibleKind(r.SubType) {
		case components.KindCoin:
			return cfg.Gold, true
		case components.KindKey:
			return cfg.Silver, true
		}
		return cfg.LightRed, true
	case components.CategoryEnemy:
		if r.State == components.EnemyDead.String() {
			return cfg.Grey, true
		}
		return cfg.Purple, true
	case components.CategoryTrap:
		// Alternate shades so the animation is visible.
		if r.Frame%2 == 0 {
			return cfg.Orange, true
		}
		return cfg.BrightOrange, true
	case components.CategoryLadder:
		return cfg.Green, true
	}
	return cfg.White, true
}

func drawOverlay(screen *ebiten.Image, ov core.Overlay) {
	face := fonts.HUD.Get()
	for _, o := range ov.Objects {
		h := o.Hitbox
		vector.StrokeRect(screen, float32(h.X), float32(h.Y), float32(h.W), float32(h.H), 1, cfg.Red, false)
		text.Draw(screen, fmt.Sprint(o.ID), face, int(h.X), int(h.Y), cfg.Yellow) //nolint:staticcheck // TODO: migrate to text/v2
	}
}

func (s *WorldScene) drawHUD(screen *ebiten.Image) {
	hud := s.game.HUD()
	line := fmt.Sprintf("HP %d/%d  Score %d  Silver %d  Golden %d  %s",
		hud.HP, hud.MaxHP, hud.Score,
		hud.Inventory[leveldata.KeySilver], hud.Inventory[leveldata.KeyGolden],
		s.game.LevelID())
	face := fonts.HUD.Get()
	h := text.BoundString(face, line).Dy() //nolint:staticcheck // TODO: migrate to text/v2
	vector.FillRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(h+hudMargin*2), cfg.BlackOverlay, false)
	text.Draw(screen, line, face, hudMargin, h+hudMargin, cfg.White) //nolint:staticcheck // TODO: migrate to text/v2
}

func (s *WorldScene) drawMessages(screen *ebiten.Image) {
	face := fonts.HUD.Get()
	y := float32(cfg.Message.TopMargin)
	for _, m := range s.messages {
		bounds := text.BoundString(face, m.text) //nolint:staticcheck // TODO: migrate to text/v2
		boxW := float32(bounds.Dx() + hudMargin*2)
		boxH := float32(bounds.Dy() + hudMargin*2)
		boxX := (float32(screen.Bounds().Dx()) - boxW) / 2

		vector.FillRect(screen, boxX, y, boxW, boxH, cfg.Message.BoxColor, false)
		text.Draw(screen, m.text, face, int(boxX)+hudMargin, int(y)+hudMargin+bounds.Dy(), cfg.Message.TextColor) //nolint:staticcheck // TODO: migrate to text/v2
		y += boxH + 2
	}
}

func drawBanner(screen *ebiten.Image, title, detail string) {
	fillScreen(screen, cfg.BlackOverlay)

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	titleFace := fonts.Title.Get()
	tb := text.BoundString(titleFace, title) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, title, titleFace, (w-tb.Dx())/2, h/2-4, cfg.White) //nolint:staticcheck // TODO: migrate to text/v2

	face := fonts.HUD.Get()
	db := text.BoundString(face, detail) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, detail, face, (w-db.Dx())/2, h/2+db.Dy()+8, cfg.Yellow) //nolint:staticcheck // TODO: migrate to text/v2
}

func fillScreen(screen *ebiten.Image, c color.Color) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}

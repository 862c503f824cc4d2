package main

import (
	"flag"
	"image"
	"os"
	"path/filepath"

	"github.com/automoto/escape-the-maze/assets"
	"github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/core"
	"github.com/automoto/escape-the-maze/fonts"
	"github.com/automoto/escape-the-maze/logger"
	"github.com/automoto/escape-the-maze/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	level := flag.String("level", "", "level id to start on (default from config)")
	assetDir := flag.String("assets", "", "load levels from <dir>/levels instead of the embedded set")
	watch := flag.Bool("watch", false, "reload the current level when its file changes (requires -assets)")
	debug := flag.Bool("debug", false, "start with the debug overlay and cheats enabled")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.WithError(err).Fatal("could not load config")
		}
	}
	if *debug {
		config.Debug.Overlay = true
		config.Debug.Cheats = true
	}
	start := *level
	if start == "" {
		start = config.Transition.StartLevel
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.WithError(err).Fatal("could not load fonts")
	}

	catalog := assets.Catalog(nil)
	var watcher *assets.Watcher
	if *assetDir != "" {
		catalog = assets.Catalog(os.DirFS(*assetDir))
		if *watch {
			w, err := assets.NewWatcher(filepath.Join(*assetDir, assets.LevelDir))
			if err != nil {
				log.WithError(err).Fatal("could not watch levels")
			}
			defer w.Close()
			watcher = w
		}
	} else if *watch {
		log.Warn("-watch has no effect without -assets")
	}

	session, err := core.New(catalog, start)
	if err != nil {
		log.WithError(err).WithField("level_id", start).Fatal("could not start game")
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle("Escape the Maze")
	ebiten.SetTPS(config.C.TPS)

	g := &Game{}
	g.ChangeScene(scenes.NewWorldScene(session, watcher))
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}

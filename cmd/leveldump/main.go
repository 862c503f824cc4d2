// Command leveldump loads levels the way the game does and prints what the
// runtime sees: the parsed object records, the collision grid and the
// hitbox of every created entity.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/automoto/escape-the-maze/assets"
	"github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/core"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/automoto/escape-the-maze/logger"
	"github.com/automoto/escape-the-maze/systems/factory"
	"github.com/davecgh/go-spew/spew"
)

func main() {
	assetDir := flag.String("assets", "", "read levels from <dir>/levels instead of the embedded set")
	configPath := flag.String("config", "", "YAML config override")
	records := flag.Bool("records", false, "dump the raw object records")
	flag.Parse()

	logger.Init()
	log := logger.For("leveldump")

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.WithError(err).Fatal("could not load config")
		}
	}

	catalog := assets.Catalog(nil)
	if *assetDir != "" {
		catalog = assets.Catalog(os.DirFS(*assetDir))
	}

	ids := flag.Args()
	if len(ids) == 0 {
		all, err := catalog.IDs()
		if err != nil {
			log.WithError(err).Fatal("could not list levels")
		}
		ids = all
	}

	failed := false
	for _, id := range ids {
		if err := dump(catalog, id, *records); err != nil {
			log.WithError(err).WithField("level_id", id).Error("level is invalid")
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func dump(catalog leveldata.Catalog, id string, records bool) error {
	desc, err := catalog.Load(id)
	if err != nil {
		return err
	}
	if err := factory.Validate(desc); err != nil {
		return err
	}
	session, err := core.New(catalog, id)
	if err != nil {
		return err
	}

	fmt.Printf("== %s (%dx%d cells of %dx%d px, %d objects)\n",
		desc.ID, desc.GridWidth, desc.GridHeight, desc.TileWidth, desc.TileHeight, len(desc.Objects))
	if records {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Dump(desc.Objects)
	}

	ov := session.DebugOverlay()
	fmt.Print(ov.Grid)
	sort.Slice(ov.Objects, func(i, j int) bool { return ov.Objects[i].ID < ov.Objects[j].ID })
	for _, o := range ov.Objects {
		h := o.Hitbox
		fmt.Printf("%4d %-12s (%g, %g) %gx%g\n", o.ID, o.Category, h.X, h.Y, h.W, h.H)
	}
	return nil
}

package factory

import (
	"fmt"

	"github.com/automoto/escape-the-maze/components"
	cfg "github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/automoto/escape-the-maze/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// constructor builds the entity for one validated record.
type constructor func(w donburi.World, rec leveldata.ObjectRecord, subType string) *donburi.Entry

// rule is the factory entry for one object type. subType extracts the
// distinguishing property (empty for types without variants) and check
// rejects records the constructor cannot build.
type rule struct {
	subType func(rec leveldata.ObjectRecord) string
	check   func(levelID string, rec leveldata.ObjectRecord, subType string) error
	create  constructor
}

var rules = map[leveldata.ObjectType]rule{
	leveldata.TypeSpawn: {
		subType: noSubType,
		check:   acceptAll,
		create:  createPlayerAtSpawn,
	},
	leveldata.TypeDoor: {
		subType: noSubType,
		check:   checkDoor,
		create:  createDoorFromRecord,
	},
	leveldata.TypeCollectible: {
		subType: func(rec leveldata.ObjectRecord) string { return rec.Properties.String("item", "") },
		check:   checkCollectible,
		create:  createCollectibleFromRecord,
	},
	leveldata.TypeEnemy: {
		subType: func(rec leveldata.ObjectRecord) string { return rec.Properties.String("archetype", rec.Name) },
		check: func(levelID string, rec leveldata.ObjectRecord, subType string) error {
			if _, ok := cfg.Enemy.Types[subType]; !ok {
				return unrecognized(levelID, rec, subType)
			}
			return nil
		},
		create: createEnemyFromRecord,
	},
	leveldata.TypeTrap: {
		subType: func(rec leveldata.ObjectRecord) string { return rec.Properties.String("trap_type", rec.Name) },
		check: func(levelID string, rec leveldata.ObjectRecord, subType string) error {
			if _, ok := cfg.Trap.Types[subType]; !ok {
				return unrecognized(levelID, rec, subType)
			}
			return nil
		},
		create: createTrapFromRecord,
	},
	leveldata.TypeLadder: {
		subType: noSubType,
		check:   acceptAll,
		create:  createLadderFromRecord,
	},
}

// Every object type must have a constructor; a missing rule is a build
// mistake caught as soon as the package loads.
func init() {
	for _, t := range leveldata.ObjectTypes() {
		if _, ok := rules[t]; !ok {
			panic(fmt.Sprintf("factory: no rule for object type %s", t))
		}
	}
}

func noSubType(leveldata.ObjectRecord) string { return "" }

func acceptAll(string, leveldata.ObjectRecord, string) error { return nil }

func unrecognized(levelID string, rec leveldata.ObjectRecord, subType string) error {
	return &leveldata.UnrecognizedTypeError{
		LevelID:  levelID,
		ObjectID: rec.ID,
		Type:     rec.Type.String(),
		SubType:  subType,
	}
}

func lookup(levelID string, rec leveldata.ObjectRecord) (rule, string, error) {
	r, ok := rules[rec.Type]
	if !ok {
		return rule{}, "", unrecognized(levelID, rec, "")
	}
	sub := r.subType(rec)
	if err := checkTiming(levelID, rec); err != nil {
		return rule{}, "", err
	}
	if err := r.check(levelID, rec, sub); err != nil {
		return rule{}, "", err
	}
	return r, sub, nil
}

// Validate checks every record of a level without creating anything, so a
// malformed level is rejected before the current one is torn down.
func Validate(desc *leveldata.Descriptor) error {
	if _, err := desc.Spawn(); err != nil {
		return err
	}
	for _, rec := range desc.Objects {
		if _, _, err := lookup(desc.ID, rec); err != nil {
			return err
		}
	}
	return nil
}

// Create builds the entity for one object record. The world must already
// hold the level singleton (see CreateLevel).
func Create(w donburi.World, rec leveldata.ObjectRecord) (*donburi.Entry, error) {
	levelID := ""
	if lvl, ok := components.Level.First(w); ok {
		levelID = components.Level.Get(lvl).Descriptor.ID
	}
	r, sub, err := lookup(levelID, rec)
	if err != nil {
		return nil, err
	}
	return r.create(w, rec, sub), nil
}

// Populate validates the level, then creates an entity for every record and
// links paired doors.
func Populate(w donburi.World, desc *leveldata.Descriptor) error {
	if err := Validate(desc); err != nil {
		return err
	}
	counts := map[components.Category]int{}
	for _, rec := range desc.Objects {
		e, err := Create(w, rec)
		if err != nil {
			return fmt.Errorf("create object %d: %w", rec.ID, err)
		}
		counts[components.Record.Get(e).Category]++
	}
	PairDoors(w)

	logger.For("factory").WithFields(logrus.Fields{
		"level_id":     desc.ID,
		"doors":        counts[components.CategoryDoor],
		"collectibles": counts[components.CategoryCollectible],
		"enemies":      counts[components.CategoryEnemy],
		"traps":        counts[components.CategoryTrap],
		"ladders":      counts[components.CategoryLadder],
	}).Debug("level populated")
	return nil
}

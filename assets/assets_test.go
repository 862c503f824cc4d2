package assets

import (
	"testing"

	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/leveldata"
	"github.com/automoto/escape-the-maze/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevelsAreValid(t *testing.T) {
	catalog := Catalog(nil)

	ids, err := catalog.IDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"level1", "level2"}, ids)

	levels, err := catalog.LoadAll()
	require.NoError(t, err)
	for id, desc := range levels {
		t.Run(id, func(t *testing.T) {
			assert.NoError(t, factory.Validate(desc))
			_, err := collision.NewGridFromLevel(desc, config.Collision.SolidIndices)
			assert.NoError(t, err)
		})
	}
}

func TestLevelsChainToVictory(t *testing.T) {
	catalog := Catalog(nil)
	start := config.Transition.StartLevel

	desc, err := catalog.Load(start)
	require.NoError(t, err)
	ladders := 0
	for _, rec := range desc.Objects {
		if rec.Type == leveldata.TypeLadder {
			ladders++
			assert.Equal(t, "level2", rec.Properties.String("destination", ""))
		}
	}
	assert.Equal(t, 1, ladders)

	desc, err = catalog.Load("level2")
	require.NoError(t, err)
	for _, rec := range desc.Objects {
		if rec.Type == leveldata.TypeLadder {
			assert.True(t, config.IsVictoryDestination(rec.Properties.String("destination", "")))
		}
	}
}

package leveldata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorSpawn(t *testing.T) {
	t.Run("single spawn", func(t *testing.T) {
		d := &Descriptor{ID: "l", Objects: []ObjectRecord{
			{ID: 1, Type: TypeDoor},
			{ID: 2, Type: TypeSpawn, X: 40, Y: 64},
		}}
		spawn, err := d.Spawn()
		require.NoError(t, err)
		assert.Equal(t, 2, spawn.ID)
	})

	t.Run("missing spawn", func(t *testing.T) {
		d := &Descriptor{ID: "l", Objects: []ObjectRecord{{ID: 1, Type: TypeLadder}}}
		_, err := d.Spawn()
		var missing *MissingSpawnError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "l", missing.LevelID)
	})

	t.Run("duplicate spawn", func(t *testing.T) {
		d := &Descriptor{ID: "l", Objects: []ObjectRecord{
			{ID: 3, Type: TypeSpawn},
			{ID: 5, Type: TypeSpawn},
		}}
		_, err := d.Spawn()
		var dup *DuplicateSpawnError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, []int{3, 5}, dup.ObjectIDs)
	})
}

func TestParseObjectType(t *testing.T) {
	for _, typ := range ObjectTypes() {
		got, ok := ParseObjectType(typ.String())
		assert.True(t, ok, typ.String())
		assert.Equal(t, typ, got)
	}

	got, ok := ParseObjectType(" Door ")
	assert.True(t, ok)
	assert.Equal(t, TypeDoor, got)

	_, ok = ParseObjectType("chest")
	assert.False(t, ok)
	_, ok = ParseObjectType("")
	assert.False(t, ok)
}

func TestParseKeyType(t *testing.T) {
	k, ok := ParseKeyType("Golden")
	assert.True(t, ok)
	assert.Equal(t, KeyGolden, k)

	_, ok = ParseKeyType("bronze")
	assert.False(t, ok)
}

func TestProperties(t *testing.T) {
	p := Properties{
		"count":  "4",
		"heal":   "12.5",
		"whole":  "3.0",
		"locked": "true",
		"name":   "",
		"junk":   "abc",
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"int", p.Int("count", 1), 4},
		{"int from float", p.Int("whole", 1), 3},
		{"int default", p.Int("missing", 7), 7},
		{"int unparsable", p.Int("junk", 7), 7},
		{"float", p.Float("heal", 0), 12.5},
		{"float default", p.Float("missing", 2.5), 2.5},
		{"bool", p.Bool("locked", false), true},
		{"bool default", p.Bool("missing", true), true},
		{"string empty uses default", p.String("name", "x"), "x"},
		{"string", p.String("count", ""), "4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	assert.True(t, p.Has("name"))
	assert.False(t, p.Has("missing"))
}

func TestTileLayerAt(t *testing.T) {
	l := TileLayer{Indices: []int{1, 2, 3, 4, 5, 6}}
	assert.Equal(t, 5, l.At(3, 1, 1))
	assert.Equal(t, 0, l.At(3, 3, 0), "past the row end")
	assert.Equal(t, 0, l.At(3, 0, 2), "past the last row")
	assert.Equal(t, 0, l.At(3, -1, 0))
}

// Package leveldata provides the level descriptor and the TMX loader that
// produces it. It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

import (
	"fmt"
	"strconv"
	"strings"
)

// Descriptor is one loaded level: tile layers plus the authored objects.
// It is never mutated after loading.
type Descriptor struct {
	ID         string
	TileWidth  int
	TileHeight int
	GridWidth  int // cells
	GridHeight int // cells
	Layers     []TileLayer
	SolidLayer string
	OneWay     map[int]bool // tile indices flagged as one-way platforms
	Objects    []ObjectRecord
}

// TileLayer is a row-major grid of tile indices. Index 0 is an empty cell.
type TileLayer struct {
	Name    string
	Indices []int
}

// At returns the tile index at cell (cx, cy), or 0 outside the layer.
func (l TileLayer) At(width, cx, cy int) int {
	i := cy*width + cx
	if cx < 0 || cy < 0 || cx >= width || i >= len(l.Indices) {
		return 0
	}
	return l.Indices[i]
}

// Layer returns the named tile layer.
func (d *Descriptor) Layer(name string) (TileLayer, bool) {
	for _, l := range d.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return TileLayer{}, false
}

// PixelSize returns the level dimensions in pixels.
func (d *Descriptor) PixelSize() (int, int) {
	return d.GridWidth * d.TileWidth, d.GridHeight * d.TileHeight
}

// Spawn returns the level's single spawn record.
func (d *Descriptor) Spawn() (ObjectRecord, error) {
	var spawns []ObjectRecord
	for _, o := range d.Objects {
		if o.Type == TypeSpawn {
			spawns = append(spawns, o)
		}
	}
	switch len(spawns) {
	case 0:
		return ObjectRecord{}, &MissingSpawnError{LevelID: d.ID}
	case 1:
		return spawns[0], nil
	default:
		ids := make([]int, len(spawns))
		for i, s := range spawns {
			ids[i] = s.ID
		}
		return ObjectRecord{}, &DuplicateSpawnError{LevelID: d.ID, ObjectIDs: ids}
	}
}

// ObjectType is the closed set of object kinds a level may declare.
type ObjectType int

const (
	TypeSpawn ObjectType = iota
	TypeDoor
	TypeCollectible
	TypeEnemy
	TypeTrap
	TypeLadder

	typeCount
)

var objectTypeNames = [...]string{
	TypeSpawn:       "spawn",
	TypeDoor:        "door",
	TypeCollectible: "collectible",
	TypeEnemy:       "enemy",
	TypeTrap:        "trap",
	TypeLadder:      "ladder",
}

// ObjectTypes lists every object type.
func ObjectTypes() []ObjectType {
	types := make([]ObjectType, 0, typeCount)
	for t := ObjectType(0); t < typeCount; t++ {
		types = append(types, t)
	}
	return types
}

func (t ObjectType) String() string {
	if t < 0 || t >= typeCount {
		return fmt.Sprintf("ObjectType(%d)", int(t))
	}
	return objectTypeNames[t]
}

// ParseObjectType maps an authored type name to an ObjectType.
func ParseObjectType(s string) (ObjectType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range objectTypeNames {
		if name == s {
			return ObjectType(t), true
		}
	}
	return 0, false
}

// KeyType names a key colour. Doors require one and keys grant one.
type KeyType string

const (
	KeySilver KeyType = "silver"
	KeyGolden KeyType = "golden"
)

// KeyTypes lists the known key types in display order.
var KeyTypes = []KeyType{KeySilver, KeyGolden}

// ParseKeyType validates an authored key type.
func ParseKeyType(s string) (KeyType, bool) {
	switch k := KeyType(strings.ToLower(strings.TrimSpace(s))); k {
	case KeySilver, KeyGolden:
		return k, true
	}
	return "", false
}

// ObjectRecord is one authored placement in a level. X, Y is the top-left
// corner in pixels, except for spawns where it is the mid-bottom anchor.
type ObjectRecord struct {
	ID         int
	Type       ObjectType
	X, Y       float64
	Width      float64
	Height     float64
	Name       string
	Properties Properties
}

// Properties holds an object's custom properties as authored strings.
type Properties map[string]string

// Has reports whether key is set.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the property or def when unset or empty.
func (p Properties) String(key, def string) string {
	if v, ok := p[key]; ok && v != "" {
		return v
	}
	return def
}

// Int returns the property parsed as an integer, or def.
func (p Properties) Int(key string, def int) int {
	v, ok := p[key]
	if !ok {
		return def
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
		return n
	}
	// Tiled writes float properties even for whole numbers.
	if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
		return int(f)
	}
	return def
}

// Float returns the property parsed as a float, or def.
func (p Properties) Float(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

// Bool returns the property parsed as a bool, or def.
func (p Properties) Bool(key string, def bool) bool {
	if v, ok := p[key]; ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}

package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// typeProperty is the custom property older maps use to declare an object's
// type when the Tiled class is left empty.
const typeProperty = "obj_type"

// LoadOptions controls how a TMX file maps onto a Descriptor.
type LoadOptions struct {
	SolidLayer     string // name of the layer that drives the collision grid
	OneWayProperty string // tileset tile property marking one-way tiles
}

// LoadFile parses a TMX file and returns its level descriptor. It takes an
// fs.FS so callers can pass embed.FS (client) or os.DirFS (tools).
func LoadFile(fsys fs.FS, tmxPath string, opts LoadOptions) (*Descriptor, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	desc := &Descriptor{
		ID:         levelID(tmxPath),
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		GridWidth:  levelMap.Width,
		GridHeight: levelMap.Height,
		SolidLayer: opts.SolidLayer,
		OneWay:     map[int]bool{},
	}

	for _, layer := range levelMap.Layers {
		indices := make([]int, levelMap.Width*levelMap.Height)
		for i, tile := range layer.Tiles {
			if i >= len(indices) {
				break
			}
			if tile == nil || tile.IsNil() {
				continue
			}
			indices[i] = int(tile.Tileset.FirstGID + tile.ID)
		}
		desc.Layers = append(desc.Layers, TileLayer{Name: layer.Name, Indices: indices})
	}

	if opts.OneWayProperty != "" {
		for _, ts := range levelMap.Tilesets {
			for _, tt := range ts.Tiles {
				if tt.Properties.GetBool(opts.OneWayProperty) {
					desc.OneWay[int(ts.FirstGID+tt.ID)] = true
				}
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			rec, err := objectRecord(desc.ID, o)
			if err != nil {
				return nil, err
			}
			desc.Objects = append(desc.Objects, rec)
		}
	}

	return desc, nil
}

func objectRecord(levelID string, o *tiled.Object) (ObjectRecord, error) {
	props := make(Properties, len(o.Properties))
	for _, p := range o.Properties {
		props[p.Name] = p.Value
	}

	typeName := o.Class
	if typeName == "" {
		typeName = o.Type //nolint:staticcheck // TMX uses type= attribute
	}
	if typeName == "" {
		typeName = props[typeProperty]
	}
	objType, ok := ParseObjectType(typeName)
	if !ok {
		return ObjectRecord{}, &UnrecognizedTypeError{
			LevelID:  levelID,
			ObjectID: int(o.ID),
			Type:     typeName,
		}
	}

	y := o.Y
	// Tile objects are anchored bottom-left in Tiled.
	if o.GID != 0 && objType != TypeSpawn {
		y -= o.Height
	}

	return ObjectRecord{
		ID:         int(o.ID),
		Type:       objType,
		X:          o.X,
		Y:          y,
		Width:      o.Width,
		Height:     o.Height,
		Name:       o.Name,
		Properties: props,
	}, nil
}

func levelID(tmxPath string) string {
	return strings.TrimSuffix(path.Base(tmxPath), ".tmx")
}

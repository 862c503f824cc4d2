package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/escape-the-maze/config"
	"github.com/automoto/escape-the-maze/leveldata"
)

//go:embed levels/*.tmx
var levelFS embed.FS

// LevelDir is the directory holding the level files, relative to the
// embedded filesystem and to the repository root.
const LevelDir = "levels"

// Levels returns the embedded level files.
func Levels() fs.FS {
	return levelFS
}

// Catalog returns a level catalog over fsys (the embedded levels when nil),
// using the configured collision layer and one-way tile property.
func Catalog(fsys fs.FS) *leveldata.FSCatalog {
	if fsys == nil {
		fsys = levelFS
	}
	return &leveldata.FSCatalog{
		FS:  fsys,
		Dir: LevelDir,
		Options: leveldata.LoadOptions{
			SolidLayer:     config.Collision.SolidLayer,
			OneWayProperty: config.Collision.OneWayProperty,
		},
	}
}

package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// Catalog resolves a destination level id to its descriptor.
type Catalog interface {
	Load(id string) (*Descriptor, error)
}

// FSCatalog loads "<Dir>/<id>.tmx" from a filesystem.
type FSCatalog struct {
	FS      fs.FS
	Dir     string
	Options LoadOptions
}

// Load implements Catalog. A trailing ".tmx" on id is accepted, so ladder
// destinations written as file names resolve too.
func (c *FSCatalog) Load(id string) (*Descriptor, error) {
	id = strings.TrimSuffix(id, ".tmx")
	p := id + ".tmx"
	if c.Dir != "" {
		p = c.Dir + "/" + p
	}
	if _, err := fs.Stat(c.FS, p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LevelNotFoundError{LevelID: id}
		}
		return nil, fmt.Errorf("stat %s: %w", p, err)
	}
	return LoadFile(c.FS, p, c.Options)
}

// IDs returns the sorted ids of every level in the catalog directory.
func (c *FSCatalog) IDs() ([]string, error) {
	pattern := "*.tmx"
	if c.Dir != "" {
		pattern = c.Dir + "/" + pattern
	}
	matches, err := fs.Glob(c.FS, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, levelID(m))
	}
	sort.Strings(ids)
	return ids, nil
}

// LoadAll loads every level in the catalog directory, keyed by id.
func (c *FSCatalog) LoadAll() (map[string]*Descriptor, error) {
	ids, err := c.IDs()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %q", c.Dir)
	}
	levels := make(map[string]*Descriptor, len(ids))
	for _, id := range ids {
		desc, err := c.Load(id)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", id, err)
		}
		levels[id] = desc
	}
	return levels, nil
}

// MapCatalog serves descriptors held in memory.
type MapCatalog map[string]*Descriptor

// Load implements Catalog.
func (c MapCatalog) Load(id string) (*Descriptor, error) {
	desc, ok := c[strings.TrimSuffix(id, ".tmx")]
	if !ok {
		return nil, &LevelNotFoundError{LevelID: id}
	}
	return desc, nil
}

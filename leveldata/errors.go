package leveldata

import "fmt"

// UnrecognizedTypeError reports an object whose type, or type plus sub-type,
// has no constructor. A level carrying one must not load.
type UnrecognizedTypeError struct {
	LevelID  string
	ObjectID int
	Type     string
	SubType  string
}

func (e *UnrecognizedTypeError) Error() string {
	if e.SubType != "" {
		return fmt.Sprintf("level %q: object %d: unrecognized %s type %q", e.LevelID, e.ObjectID, e.Type, e.SubType)
	}
	return fmt.Sprintf("level %q: object %d: unrecognized object type %q", e.LevelID, e.ObjectID, e.Type)
}

// MissingSpawnError reports a level without a spawn object.
type MissingSpawnError struct {
	LevelID string
}

func (e *MissingSpawnError) Error() string {
	return fmt.Sprintf("level %q: no spawn object", e.LevelID)
}

// DuplicateSpawnError reports a level declaring more than one player spawn.
type DuplicateSpawnError struct {
	LevelID   string
	ObjectIDs []int
}

func (e *DuplicateSpawnError) Error() string {
	return fmt.Sprintf("level %q: %d spawn objects %v, want exactly one", e.LevelID, len(e.ObjectIDs), e.ObjectIDs)
}

// LevelNotFoundError reports a destination id the catalog cannot resolve.
type LevelNotFoundError struct {
	LevelID string
}

func (e *LevelNotFoundError) Error() string {
	return fmt.Sprintf("level %q not found", e.LevelID)
}

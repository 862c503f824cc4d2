package systems

import (
	"sort"

	"github.com/automoto/escape-the-maze/collision"
	"github.com/automoto/escape-the-maze/components"
	"github.com/automoto/escape-the-maze/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Overlapping returns the live entities carrying one of resolvTags whose
// hitboxes overlap r, ordered by object id.
//
// The resolv space only narrows the search to nearby cells; the final test
// is an exact box overlap, so touching edges do not count.
func Overlapping(w donburi.World, r collision.Rect, resolvTags ...string) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	// Temporary probe, grown a pixel so neighbours on a cell border are seen.
	probe := resolv.NewObject(r.X-1, r.Y-1, r.W+2, r.H+2, tags.ResolvProbe)
	space.Add(probe)
	check := probe.Check(0, 0, resolvTags...)
	space.Remove(probe)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	seen := map[donburi.Entity]bool{}
	for _, obj := range check.Objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() || seen[e.Entity()] {
			continue
		}
		if !objectRect(obj).Overlaps(r) {
			continue
		}
		seen[e.Entity()] = true
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return components.Record.Get(out[i]).ID < components.Record.Get(out[j]).ID
	})
	return out
}

func objectRect(obj *resolv.Object) collision.Rect {
	return collision.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

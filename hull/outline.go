package hull

import (
	"sync/atomic"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Outline is a ship's persistent hull geometry
// The published path is immutable; AppendSegment swaps in a new one, so
// readers always observe either the previous or the merged outline
type Outline struct {
	current atomic.Pointer[path.Data]
	version atomic.Uint64
}

// NewOutline creates an outline seeded with initial, which is copied
func NewOutline(initial *path.Data) *Outline {
	o := &Outline{}
	o.current.Store(clonePath(initial, 0, 0))
	return o
}

// AppendSegment merges seg into the outline as a new disjoint subpath
// Single writer: called only by the active build tool under the world lock
func (o *Outline) AppendSegment(seg Segment) {
	next := Merge(o.current.Load(), seg)
	o.current.Store(next)
	o.version.Add(1)
}

// Snapshot returns the current path; callers must treat it as read-only
func (o *Outline) Snapshot() *path.Data {
	return o.current.Load()
}

// Version increments once per merge; consumers compare it to skip rebuilds
func (o *Outline) Version() uint64 {
	return o.version.Load()
}

// Vertices returns a copy of the vertex sequence in path order
func (o *Outline) Vertices() []vec.Vec2 {
	p := o.current.Load()
	out := make([]vec.Vec2, len(p.Coords))
	copy(out, p.Coords)
	return out
}

// Segments returns the outline flattened into straight segments
func (o *Outline) Segments() []Segment {
	return Segments(o.current.Load())
}

// SubpathCount returns the number of MoveTo-started subpaths
func (o *Outline) SubpathCount() int {
	n := 0
	for _, cmd := range o.current.Load().Cmds {
		if cmd == path.CmdMoveTo {
			n++
		}
	}
	return n
}

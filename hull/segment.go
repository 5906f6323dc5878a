// Package hull holds the geometry of a ship's outline and the pending state
// of the wall tool that grows it.
package hull

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Segment is a two-vertex open path
type Segment struct {
	A, B vec.Vec2
}

// Degenerate reports whether both endpoints coincide
// Degenerate segments are valid walls; dropping them is a renderer decision
func (s Segment) Degenerate() bool {
	return s.A == s.B
}

// Length returns the euclidean length of the segment
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// Merge returns a new path equal to prior followed by seg as a separate subpath
// prior is not modified. No welding or deduplication against existing vertices
func Merge(prior *path.Data, seg Segment) *path.Data {
	out := clonePath(prior, 1, 2)
	return out.MoveTo(seg.A).LineTo(seg.B)
}

// clonePath copies p with spare capacity for extraCmds/extraCoords appends
func clonePath(p *path.Data, extraCmds, extraCoords int) *path.Data {
	out := &path.Data{}
	if p == nil {
		out.Cmds = make([]path.Command, 0, extraCmds)
		out.Coords = make([]vec.Vec2, 0, extraCoords)
		return out
	}
	out.Cmds = make([]path.Command, len(p.Cmds), len(p.Cmds)+extraCmds)
	copy(out.Cmds, p.Cmds)
	out.Coords = make([]vec.Vec2, len(p.Coords), len(p.Coords)+extraCoords)
	copy(out.Coords, p.Coords)
	return out
}

// Segments flattens p into straight segments in path order
// Curves are approximated by their chord; Close emits the closing edge
func Segments(p *path.Data) []Segment {
	if p == nil {
		return nil
	}

	segs := make([]Segment, 0, len(p.Cmds))
	var current, start vec.Vec2
	idx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[idx]
			start = current
			idx++
		case path.CmdLineTo:
			next := p.Coords[idx]
			segs = append(segs, Segment{A: current, B: next})
			current = next
			idx++
		case path.CmdQuadTo:
			next := p.Coords[idx+1]
			segs = append(segs, Segment{A: current, B: next})
			current = next
			idx += 2
		case path.CmdCubeTo:
			next := p.Coords[idx+2]
			segs = append(segs, Segment{A: current, B: next})
			current = next
			idx += 3
		case path.CmdClose:
			segs = append(segs, Segment{A: current, B: start})
			current = start
		}
	}
	return segs
}

// SquareHull returns the closed square outline a fresh ship spawns with
func SquareHull(half float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: -half, Y: -half}).
		LineTo(vec.Vec2{X: -half, Y: half}).
		LineTo(vec.Vec2{X: half, Y: half}).
		LineTo(vec.Vec2{X: half, Y: -half}).
		LineTo(vec.Vec2{X: -half, Y: -half})
}

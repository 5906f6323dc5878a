package hull

import "seehuhn.de/go/geom/vec"

// PendingPath is the wall tool's in-progress state: at most one anchor
// The preview segment follows the cursor while an anchor exists and is never merged
type PendingPath struct {
	anchor    vec.Vec2
	hasAnchor bool

	preview    Segment
	hasPreview bool
}

// Anchor returns the anchor vertex if one is set
func (p *PendingPath) Anchor() (vec.Vec2, bool) {
	return p.anchor, p.hasAnchor
}

// HasAnchor reports whether a first point awaits its second click
func (p *PendingPath) HasAnchor() bool {
	return p.hasAnchor
}

// SetAnchor records the first point of a wall
func (p *PendingPath) SetAnchor(v vec.Vec2) {
	p.anchor = v
	p.hasAnchor = true
	p.preview = Segment{A: v, B: v}
	p.hasPreview = true
}

// Segment returns [anchor, end] without changing state
func (p *PendingPath) Segment(end vec.Vec2) (Segment, bool) {
	if !p.hasAnchor {
		return Segment{}, false
	}
	return Segment{A: p.anchor, B: end}, true
}

// UpdatePreview recomputes the preview for the current cursor position
func (p *PendingPath) UpdatePreview(cursor vec.Vec2) {
	if !p.hasAnchor {
		p.hasPreview = false
		return
	}
	p.preview = Segment{A: p.anchor, B: cursor}
	p.hasPreview = true
}

// Preview returns the rubber-band segment for rendering
func (p *PendingPath) Preview() (Segment, bool) {
	return p.preview, p.hasPreview
}

// Clear drops the anchor and preview, reporting whether an anchor was dropped
func (p *PendingPath) Clear() bool {
	had := p.hasAnchor
	*p = PendingPath{}
	return had
}

// Commit completes the pending wall at end and merges it into outline
// Returns false and changes nothing when no anchor is set
// The merge is published before the anchor is cleared; callers hold the world lock
func Commit(p *PendingPath, o *Outline, end vec.Vec2) (Segment, bool) {
	seg, ok := p.Segment(end)
	if !ok {
		return Segment{}, false
	}
	o.AppendSegment(seg)
	p.Clear()
	return seg, true
}

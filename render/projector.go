package render

import "seehuhn.de/go/geom/vec"

// MouseSource reports the last known mouse cell
type MouseSource interface {
	MouseCell() (x, y int, ok bool)
}

// MouseProjector projects the mouse cell through the camera into world space
type MouseProjector struct {
	Source MouseSource
	Camera *Camera
}

// Project returns the cursor's world position
// Reports false before the first mouse event or when the cell is off the viewport
func (p *MouseProjector) Project() (vec.Vec2, bool) {
	if p.Source == nil || p.Camera == nil {
		return vec.Vec2{}, false
	}
	x, y, ok := p.Source.MouseCell()
	if !ok || x < 0 || y < 0 || x >= p.Camera.Width || y >= p.Camera.Height {
		return vec.Vec2{}, false
	}
	return p.Camera.CellToWorld(x, y), true
}

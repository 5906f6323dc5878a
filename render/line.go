package render

import (
	"github.com/gdamore/tcell/v2"
	"seehuhn.de/go/geom/vec"
)

// DrawLine rasterizes the world segment a-b with Bresenham, clipping to the screen
// A degenerate segment draws a single point
func DrawLine(scr tcell.Screen, cam *Camera, a, b vec.Vec2, style tcell.Style) {
	x0, y0, _ := cam.WorldToCell(a)
	x1, y1, _ := cam.WorldToCell(b)
	ch := lineRune(x1-x0, y1-y0)

	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := -abs(y1-y0), sign(y1-y0)
	err := dx + dy
	for {
		plot(scr, cam, x0, y0, ch, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawPoint draws ch at the cell containing p
func DrawPoint(scr tcell.Screen, cam *Camera, p vec.Vec2, ch rune, style tcell.Style) {
	x, y, _ := cam.WorldToCell(p)
	plot(scr, cam, x, y, ch, style)
}

// DrawText writes s starting at cell x,y, clipped at the right edge
func DrawText(scr tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, _ := scr.Size()
	for _, r := range s {
		if x >= w {
			break
		}
		scr.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func plot(scr tcell.Screen, cam *Camera, x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= cam.Width || y >= cam.Height {
		return
	}
	scr.SetContent(x, y, ch, nil, style)
}

// lineRune picks a glyph by screen slope; rows grow downward
func lineRune(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '+'
	case dy == 0 || abs(dx) > 2*abs(dy):
		return '-'
	case dx == 0 || abs(dy) > 2*abs(dx):
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

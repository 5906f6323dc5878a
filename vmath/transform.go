package vmath

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Apply maps p through the affine transform m
// Layout follows PDF convention: x' = a*x + c*y + e, y' = b*x + d*y + f
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Invert returns the inverse affine transform
// Panics on a singular matrix; entity transforms are constructed by this process
func Invert(m matrix.Matrix) matrix.Matrix {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		panic(fmt.Sprintf("vmath: singular transform %v", m))
	}
	a := m[3] / det
	b := -m[1] / det
	c := -m[2] / det
	d := m[0] / det
	e := -(a*m[4] + c*m[5])
	f := -(b*m[4] + d*m[5])
	return matrix.Matrix{a, b, c, d, e, f}
}

// ToLocal converts world-space p into the space of an entity with transform m
func ToLocal(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	if m == matrix.Identity {
		return p
	}
	return Apply(Invert(m), p)
}

// Translate returns a pure translation transform
func Translate(dx, dy float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, dx, dy}
}

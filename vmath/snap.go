package vmath

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Snap quantizes v to the nearest multiple of cell
// Halfway values round away from zero; cell must be positive
func Snap(v, cell float64) float64 {
	if !(cell > 0) {
		panic(fmt.Sprintf("vmath: grid cell must be positive, got %v", cell))
	}
	s := math.Round(v/cell) * cell
	if s == 0 {
		// Normalize -0 so snapped points compare equal to literal grid nodes
		return 0
	}
	return s
}

// SnapVec quantizes both coordinates of p to the nearest node of a square grid
func SnapVec(p vec.Vec2, cell float64) vec.Vec2 {
	return vec.Vec2{X: Snap(p.X, cell), Y: Snap(p.Y, cell)}
}

// OnGrid reports whether both coordinates of p are exact grid nodes
func OnGrid(p vec.Vec2, cell float64) bool {
	return SnapVec(p, cell) == p
}

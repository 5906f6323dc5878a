package parameter

// Default viewport scale: world units covered by one terminal cell
// Terminal cells are roughly twice as tall as wide
const (
	CameraUnitsPerColumn = 5.0
	CameraUnitsPerRow    = 10.0
)

package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbGrid       = tcell.NewRGBColor(60, 64, 90)    // Dim blue-gray
	RgbHull       = tcell.NewRGBColor(140, 190, 255) // Bright Blue
	RgbPreview    = tcell.NewRGBColor(255, 200, 60)  // Amber
	RgbAnchor     = tcell.NewRGBColor(255, 120, 120) // Bright Red
	RgbEngine     = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusDim  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground)
	StyleGrid       = StyleBackground.Foreground(RgbGrid)
	StyleHull       = StyleBackground.Foreground(RgbHull).Bold(true)
	StylePreview    = StyleBackground.Foreground(RgbPreview)
	StyleAnchor     = StyleBackground.Foreground(RgbAnchor).Bold(true)
	StyleEngine     = StyleBackground.Foreground(RgbEngine).Bold(true)
	StyleStatus     = StyleBackground.Foreground(RgbStatusBar)
	StyleStatusDim  = StyleBackground.Foreground(RgbStatusDim)
)

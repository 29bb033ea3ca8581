package render

import "image/color"

// Global render configuration for the logical watch canvas.
var (
	Foreground = color.RGBA{R: 0xF2, G: 0xF4, B: 0xF8, A: 0xFF}
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}

	// Logical canvas size; targets scale it to their own resolution.
	CanvasWidth  = 144
	CanvasHeight = 168
)

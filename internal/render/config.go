package render

import "image/color"

// Global render configuration for the placeholder assets.
var (
	// Background is the fill shared by every generated asset.
	Background = color.RGBA{R: 28, G: 28, B: 30, A: 0xFF} // #1c1c1e
)

const (
	IconWidth  = 1024
	IconHeight = 1024

	SplashWidth  = 1284
	SplashHeight = 2778
)

package ebiten

import "image/color"

// Color palette for the maze
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray behind the maze
	colorFloor      = color.RGBA{40, 150, 70, 255}   // Green maze floor
	colorWall       = color.RGBA{0, 0, 0, 255}       // Black walls
	colorPlayer     = color.RGBA{220, 40, 40, 255}   // Red player marker
	colorExit       = color.RGBA{40, 80, 230, 255}   // Blue exit marker
	colorText       = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle     = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
)

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 800

	// Markers are inset from the cell edges by a tenth of the cell size
	markerInsetRatio = 0.1

	// Wall stroke width as a fraction of the cell size, never thinner than minWallWidth
	wallWidthRatio = 0.08
	minWallWidth   = 1.5

	// Held keys repeat after keyRepeatInitialDelay ticks, then every keyRepeatInterval ticks
	keyRepeatInitialDelay = 15
	keyRepeatInterval     = 6

	// Lines reserved above and below the maze for status and messages
	textLineHeight = 16
	headerLines    = 1
	footerLines    = 3
)

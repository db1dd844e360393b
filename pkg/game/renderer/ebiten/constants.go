// Package ebiten provides an Ebiten-based 2D graphical renderer for Pixel Shooter.
package ebiten

import "image/color"

// Color palette for the game
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorRoomFloor     = color.RGBA{46, 44, 60, 255}    // Room floor
	colorWall          = color.RGBA{180, 180, 200, 255} // Light gray-blue outline
	colorPlayer        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorEnemy         = color.RGBA{255, 100, 100, 255} // Bright red
	colorBoss          = color.RGBA{200, 40, 90, 255}   // Crimson
	colorBullet        = color.RGBA{255, 255, 0, 255}   // Bright yellow
	colorDoorOpen      = color.RGBA{0, 220, 0, 255}     // Linked door
	colorDoorSealed    = color.RGBA{90, 90, 110, 255}   // Listed door with nothing behind it
	colorStairs        = color.RGBA{100, 150, 255, 255} // Bright blue
	colorHealthBack    = color.RGBA{45, 25, 25, 255}
	colorHealthFront   = color.RGBA{180, 68, 60, 255}
	colorMiniUnvisited = color.RGBA{62, 58, 80, 255}
	colorMiniVisited   = color.RGBA{120, 112, 140, 255}
	colorMiniCurrent   = color.RGBA{175, 210, 145, 255}
	colorMiniBoss      = color.RGBA{145, 70, 70, 255}
	colorMiniLink      = color.RGBA{90, 90, 120, 255}
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction        = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorItem          = color.RGBA{220, 170, 255, 255} // Bright purple
	colorDenied        = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanel         = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorFade          = color.RGBA{10, 10, 20, 255}
)

// Minimap geometry, in screen pixels
const (
	miniCell   = 12
	miniGap    = 4
	miniMargin = 18
)

// HUD geometry
const (
	uiFontSize    = 14.0
	titleFontSize = 28.0
	hudMargin     = 12
	lineSpacing   = 18
	healthBarW    = 20
	healthBarH    = 3
)

// roomFadeFrames is how long the fade-in after a room change lasts, in ticks.
const roomFadeFrames = 12

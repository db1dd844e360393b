package gameplay

import (
	"pixelshooter/pkg/engine/physics"
	gameworld "pixelshooter/pkg/game/world"
)

// Default viewport, in pixels
const (
	ViewportWidth  = 800
	ViewportHeight = 600
)

// CameraOffset returns the room coordinate drawn at the viewport's top-left
// corner. The camera follows focus but never shows past the room's walls; an
// axis on which the room is smaller than the viewport is centred instead,
// giving a negative offset.
func CameraOffset(room *gameworld.Room, focus physics.Vec2, viewW, viewH float64) physics.Vec2 {
	return physics.Vec2{
		X: cameraAxis(focus.X, room.Width, viewW),
		Y: cameraAxis(focus.Y, room.Height, viewH),
	}
}

func cameraAxis(focus, size, view float64) float64 {
	if size <= view {
		return -(view - size) / 2
	}
	return physics.Clamp(focus-view/2, 0, size-view)
}

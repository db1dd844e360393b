package gameplay

import (
	"pixelshooter/pkg/engine/input"
	"pixelshooter/pkg/engine/physics"
	"pixelshooter/pkg/game/entities"
	"pixelshooter/pkg/game/state"
	gameworld "pixelshooter/pkg/game/world"
)

// HeldDirection turns the held movement keys into a direction vector.
// Diagonals are scaled once by physics.Diagonal.
func HeldDirection(held *input.Held) physics.Vec2 {
	var dir physics.Vec2
	if held.Has(input.ActionMoveUp) {
		dir.Y--
	}
	if held.Has(input.ActionMoveDown) {
		dir.Y++
	}
	if held.Has(input.ActionMoveLeft) {
		dir.X--
	}
	if held.Has(input.ActionMoveRight) {
		dir.X++
	}
	if dir.X != 0 && dir.Y != 0 {
		dir = dir.Scale(physics.Diagonal)
	}
	return dir
}

// MovePlayer steps the player along the held direction inside the current room.
func MovePlayer(g *state.Game, held *input.Held) {
	p := g.Player
	dir := HeldDirection(held)
	p.SetDirection(dir)

	room := g.CurrentRoom()
	if dir.IsZero() || room == nil {
		return
	}
	step := dir.Scale(p.Speed)
	p.Position.X = stepAxis(p.Position.X, step.X, room.Width)
	p.Position.Y = stepAxis(p.Position.Y, step.Y, room.Height)
}

// stepAxis accepts the move only if the player stays strictly inside [0, limit]
// on that axis; the other axis moves independently so the player slides along walls.
func stepAxis(pos, delta, limit float64) float64 {
	next := pos + delta
	if next-entities.PlayerRadius > 0 && next+entities.PlayerRadius < limit {
		return next
	}
	return pos
}

// clampToRoom keeps a circle of radius r inside the room after a push.
func clampToRoom(pos *physics.Vec2, r float64, room *gameworld.Room) {
	pos.X = physics.Clamp(pos.X, r, room.Width-r)
	pos.Y = physics.Clamp(pos.Y, r, room.Height-r)
}

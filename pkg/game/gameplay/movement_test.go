package gameplay

import (
	"testing"

	"pixelshooter/pkg/engine/input"
	"pixelshooter/pkg/engine/physics"
	"pixelshooter/pkg/game/entities"
)

func TestMovePlayer_Straight(t *testing.T) {
	g := makeGame(t)
	start := g.Player.Position
	MovePlayer(g, input.NewHeld(input.ActionMoveRight))

	want := physics.Vec2{X: start.X + entities.PlayerSpeed, Y: start.Y}
	if g.Player.Position != want {
		t.Errorf("position = %v, want %v", g.Player.Position, want)
	}
	if g.Player.LastMoveDirection != (physics.Vec2{X: 1}) {
		t.Errorf("LastMoveDirection = %v, want (1,0)", g.Player.LastMoveDirection)
	}
}

func TestMovePlayer_DiagonalNormalisedOnce(t *testing.T) {
	g := makeGame(t)
	start := g.Player.Position
	MovePlayer(g, input.NewHeld(input.ActionMoveUp, input.ActionMoveLeft))

	step := entities.PlayerSpeed * physics.Diagonal
	want := physics.Vec2{X: start.X - step, Y: start.Y - step}
	if g.Player.Position != want {
		t.Errorf("position = %v, want %v", g.Player.Position, want)
	}
}

func TestMovePlayer_OpposingKeysCancel(t *testing.T) {
	g := makeGame(t)
	start := g.Player.Position
	MovePlayer(g, input.NewHeld(input.ActionMoveLeft, input.ActionMoveRight))
	if g.Player.Position != start {
		t.Errorf("position = %v, want unchanged %v", g.Player.Position, start)
	}
	if !g.Player.Direction.IsZero() {
		t.Error("direction should be zero")
	}
	if g.Player.LastMoveDirection != (physics.Vec2{Y: -1}) {
		t.Error("standing still must keep the previous heading")
	}
}

func TestMovePlayer_WallSlide(t *testing.T) {
	g := makeGame(t)
	// Pressed against the left wall: the x step is rejected, the y step is not.
	g.Player.Position = physics.Vec2{X: entities.PlayerRadius + 1, Y: 200}
	MovePlayer(g, input.NewHeld(input.ActionMoveLeft, input.ActionMoveDown))

	if g.Player.Position.X != entities.PlayerRadius+1 {
		t.Errorf("x = %v, want unchanged", g.Player.Position.X)
	}
	if g.Player.Position.Y <= 200 {
		t.Errorf("y = %v, want moved down", g.Player.Position.Y)
	}
}

func TestMovePlayer_CanReachDoorZone(t *testing.T) {
	g := makeGame(t)
	g.Player.Position = physics.Vec2{X: 400, Y: 40}
	held := input.NewHeld(input.ActionMoveUp)
	for i := 0; i < 20; i++ {
		MovePlayer(g, held)
	}
	if g.Player.Position.Y >= DoorZoneDepth {
		t.Errorf("y = %v, player could not walk into the top door zone", g.Player.Position.Y)
	}
	if g.Player.Position.Y-entities.PlayerRadius <= 0 {
		t.Errorf("y = %v, player walked through the wall", g.Player.Position.Y)
	}
}

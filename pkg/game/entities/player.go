// Package entities holds the moving things in a room: the player, enemies and bullets.
package entities

import (
	"pixelshooter/pkg/engine/physics"
)

// Player tuning
const (
	PlayerSize      = 16
	PlayerRadius    = PlayerSize / 2
	PlayerSpeed     = 3.0
	PlayerMaxHealth = 50.0
)

// Player is the single controllable character.
type Player struct {
	Position physics.Vec2
	Speed    float64
	Health   float64

	// Direction is this tick's movement vector, (0,0) when standing still.
	Direction physics.Vec2

	// LastMoveDirection is the last non-zero heading; stationary shots use it.
	LastMoveDirection physics.Vec2

	CurrentFloor int
}

// NewPlayer creates a player at full health facing up.
func NewPlayer() *Player {
	return &Player{
		Speed:             PlayerSpeed,
		Health:            PlayerMaxHealth,
		LastMoveDirection: physics.Vec2{X: 0, Y: -1},
		CurrentFloor:      1,
	}
}

// SetDirection records this tick's movement and remembers it as the aim when non-zero.
func (p *Player) SetDirection(dir physics.Vec2) {
	p.Direction = dir
	if !dir.IsZero() {
		p.LastMoveDirection = dir
	}
}

// Aim returns the direction a shot fired now would travel.
func (p *Player) Aim() physics.Vec2 {
	if !p.Direction.IsZero() {
		return p.Direction
	}
	return p.LastMoveDirection
}

// Damage reduces health and reports whether the player is dead.
func (p *Player) Damage(amount float64) bool {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	return p.IsDead()
}

// IsDead returns true once health is exhausted
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

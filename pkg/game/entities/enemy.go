package entities

import (
	"pixelshooter/pkg/engine/physics"
)

// Enemy tuning
const (
	EnemySize = 16
	BossSize  = 32
)

// Enemy chases the player around the room it was generated in.
type Enemy struct {
	Position  physics.Vec2
	Speed     float64
	Health    float64
	MaxHealth float64
	IsBoss    bool
	Direction physics.Vec2
}

// NewEnemy creates an enemy at full health.
func NewEnemy(pos physics.Vec2, speed, health float64) *Enemy {
	return &Enemy{
		Position:  pos,
		Speed:     speed,
		Health:    health,
		MaxHealth: health,
	}
}

// Radius returns the collision radius
func (e *Enemy) Radius() float64 {
	if e.IsBoss {
		return BossSize / 2
	}
	return EnemySize / 2
}

// Chase steps the enemy towards target at its speed.
func (e *Enemy) Chase(target physics.Vec2) {
	delta := physics.Vec2{X: target.X - e.Position.X, Y: target.Y - e.Position.Y}
	if delta.IsZero() {
		return
	}
	e.Direction = delta.Normalize()
	e.Position = e.Position.Add(e.Direction.Scale(e.Speed))
}

// Damage reduces health and reports whether the enemy died.
func (e *Enemy) Damage(amount float64) bool {
	e.Health -= amount
	return e.IsDead()
}

// IsDead returns true once health is exhausted
func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}

// HealthFraction returns remaining health in [0,1] for health bars.
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	f := e.Health / e.MaxHealth
	if f < 0 {
		return 0
	}
	return f
}

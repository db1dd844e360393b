package entities

import (
	"pixelshooter/pkg/engine/physics"
)

// Bullet tuning
const (
	BulletSize   = 8
	BulletSpeed  = 5.0
	BulletDamage = 25.0
)

// Bullet is a player shot travelling in a straight line.
type Bullet struct {
	Position  physics.Vec2
	Direction physics.Vec2
	Speed     float64
	Damage    float64
}

// NewBullet fires a bullet from pos along dir.
func NewBullet(pos, dir physics.Vec2) *Bullet {
	return &Bullet{
		Position:  pos,
		Direction: dir,
		Speed:     BulletSpeed,
		Damage:    BulletDamage,
	}
}

// Step advances the bullet one tick
func (b *Bullet) Step() {
	b.Position = b.Position.Add(b.Direction.Scale(b.Speed))
}

// Inside reports whether the bullet is still within a width x height room.
func (b *Bullet) Inside(width, height float64) bool {
	return b.Position.X >= 0 && b.Position.X <= width &&
		b.Position.Y >= 0 && b.Position.Y <= height
}

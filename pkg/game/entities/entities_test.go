package entities

import (
	"math"
	"testing"

	"pixelshooter/pkg/engine/physics"
)

func TestPlayer_AimFallsBackToLastMove(t *testing.T) {
	p := NewPlayer()
	if got := p.Aim(); got != (physics.Vec2{X: 0, Y: -1}) {
		t.Errorf("initial Aim() = %v, want up", got)
	}
	p.SetDirection(physics.Vec2{X: 1, Y: 0})
	p.SetDirection(physics.Vec2{})
	if got := p.Aim(); got != (physics.Vec2{X: 1, Y: 0}) {
		t.Errorf("stationary Aim() = %v, want last heading right", got)
	}
	if p.Aim().IsZero() {
		t.Error("Aim() must never be the zero vector")
	}
}

func TestPlayer_DamageClampsAtZero(t *testing.T) {
	p := NewPlayer()
	if p.Damage(10) {
		t.Error("player died from 10 damage")
	}
	if !p.Damage(1000) {
		t.Error("player survived 1000 damage")
	}
	if p.Health != 0 {
		t.Errorf("Health = %f, want 0", p.Health)
	}
}

func TestEnemy_ChaseMovesBySpeed(t *testing.T) {
	e := NewEnemy(physics.Vec2{X: 0, Y: 0}, 2, 50)
	e.Chase(physics.Vec2{X: 10, Y: 0})
	if e.Position != (physics.Vec2{X: 2, Y: 0}) {
		t.Errorf("Position = %v, want (2,0)", e.Position)
	}
	before := e.Position
	e.Chase(e.Position)
	if e.Position != before {
		t.Error("chasing own position moved the enemy")
	}
}

func TestEnemy_DamageAndHealthFraction(t *testing.T) {
	e := NewEnemy(physics.Vec2{}, 1, 50)
	e.Damage(25)
	if math.Abs(e.HealthFraction()-0.5) > 1e-9 {
		t.Errorf("HealthFraction() = %f, want 0.5", e.HealthFraction())
	}
	if !e.Damage(25) {
		t.Error("enemy at 0 health should be dead")
	}
	if e.HealthFraction() != 0 {
		t.Errorf("HealthFraction() = %f, want 0", e.HealthFraction())
	}
}

func TestBullet_LeavesRoom(t *testing.T) {
	b := NewBullet(physics.Vec2{X: 798, Y: 300}, physics.Vec2{X: 1, Y: 0})
	if !b.Inside(800, 600) {
		t.Fatal("bullet should start inside")
	}
	b.Step()
	if b.Inside(800, 600) {
		t.Errorf("bullet at %v should be outside 800x600", b.Position)
	}
}

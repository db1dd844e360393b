package physics

import (
	"math"
	"testing"
)

func TestCirclesOverlap(t *testing.T) {
	a := Vec2{0, 0}
	if !CirclesOverlap(a, 8, Vec2{15, 0}, 8) {
		t.Error("circles 15 apart with radii 8+8 should overlap")
	}
	if CirclesOverlap(a, 8, Vec2{16, 0}, 8) {
		t.Error("touching circles should not count as overlapping")
	}
}

func TestPointInCircle(t *testing.T) {
	if !PointInCircle(Vec2{3, 4}, Vec2{}, 5) {
		t.Error("point on the boundary should be inside")
	}
	if PointInCircle(Vec2{3, 4.1}, Vec2{}, 5) {
		t.Error("point beyond radius should be outside")
	}
}

func TestPushApart_MovesAlongAxis(t *testing.T) {
	a := Vec2{10, 0}
	b := Vec2{0, 0}
	PushApart(&a, &b, 0.5)
	if a.X != 10.5 || b.X != -0.5 {
		t.Errorf("PushApart gave a=%v b=%v, want a.X=10.5 b.X=-0.5", a, b)
	}
	if a.Y != 0 || b.Y != 0 {
		t.Errorf("PushApart moved off axis: a=%v b=%v", a, b)
	}
}

func TestPushApart_CoincidentIsNoop(t *testing.T) {
	a := Vec2{5, 5}
	b := Vec2{5, 5}
	PushApart(&a, &b, 1)
	if a != (Vec2{5, 5}) || b != (Vec2{5, 5}) {
		t.Errorf("coincident points moved: a=%v b=%v", a, b)
	}
}

func TestNormalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	if math.Abs(n.Length()-1) > 1e-9 {
		t.Errorf("Normalize length = %f, want 1", n.Length())
	}
	if !(Vec2{}).Normalize().IsZero() {
		t.Error("Normalize of zero vector should be zero")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp did not bound value")
	}
	if Clamp(3, 10, 0) != 5 {
		t.Errorf("Clamp with inverted bounds = %f, want midpoint 5", Clamp(3, 10, 0))
	}
}

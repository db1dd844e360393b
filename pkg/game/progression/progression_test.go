package progression

import "testing"

func TestEnemyStatsForFloor(t *testing.T) {
	s := EnemyStatsForFloor(1)
	if s.Count != 3 || s.Speed != 1.2 || s.Health != 60 {
		t.Errorf("floor 1 stats = %+v, want {3 1.2 60}", s)
	}
	s = EnemyStatsForFloor(4)
	if s.Count != 5 || s.Health != 90 {
		t.Errorf("floor 4 stats = %+v, want count 5 health 90", s)
	}
}

func TestNextFloor(t *testing.T) {
	if next, ok := NextFloor(1, 3); !ok || next != 2 {
		t.Errorf("NextFloor(1, 3) = %d, %v, want 2, true", next, ok)
	}
	if _, ok := NextFloor(3, 3); ok {
		t.Error("NextFloor on the final floor should report false")
	}
	if !IsFinalFloor(3, 3) || IsFinalFloor(2, 3) {
		t.Error("IsFinalFloor gave the wrong answer")
	}
}

func TestFlavourKey_Bands(t *testing.T) {
	if got := FlavourKey(1, 5); got != "FLOOR_FLAVOUR_SHALLOW" {
		t.Errorf("FlavourKey(1,5) = %s", got)
	}
	if got := FlavourKey(3, 5); got != "FLOOR_FLAVOUR_DEEP" {
		t.Errorf("FlavourKey(3,5) = %s", got)
	}
	if got := FlavourKey(5, 5); got != "FLOOR_FLAVOUR_FINAL" {
		t.Errorf("FlavourKey(5,5) = %s", got)
	}
	// Without a loaded locale gotext returns the key itself.
	if got := FlavourText(5, 5); got == "" {
		t.Error("FlavourText returned an empty string")
	}
}

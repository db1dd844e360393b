// Package progression defines how many floors a run has and how enemies scale
// from one floor to the next.
package progression

import (
	"github.com/leonelquinteros/gotext"
)

// DefaultTotalFloors is the number of floors in a run unless configured otherwise.
const DefaultTotalFloors = 5

// Room count range per floor (inclusive).
const (
	MinRooms = 5
	MaxRooms = 8
)

// EnemyStats are the per-enemy numbers for a floor.
type EnemyStats struct {
	Count  int
	Speed  float64
	Health float64
}

// EnemyStatsForFloor returns enemy count, speed and health for a 1-based floor number.
// Count grows every second floor; speed and health grow every floor.
func EnemyStatsForFloor(floor int) EnemyStats {
	if floor < 0 {
		floor = 0
	}
	return EnemyStats{
		Count:  3 + floor/2,
		Speed:  1 + 0.2*float64(floor),
		Health: 50 + 10*float64(floor),
	}
}

// IsFinalFloor returns true if floor is the last of totalFloors.
func IsFinalFloor(floor, totalFloors int) bool {
	return floor >= totalFloors
}

// NextFloor returns the floor after current and true, or 0 and false when
// current is already the last floor.
func NextFloor(current, totalFloors int) (int, bool) {
	if current < 0 || current >= totalFloors {
		return 0, false
	}
	return current + 1, true
}

// FlavourKey returns the gettext key for the floor banner. Bands: early,
// middle, final.
func FlavourKey(floor, totalFloors int) string {
	switch {
	case IsFinalFloor(floor, totalFloors):
		return "FLOOR_FLAVOUR_FINAL"
	case floor*2 > totalFloors:
		return "FLOOR_FLAVOUR_DEEP"
	default:
		return "FLOOR_FLAVOUR_SHALLOW"
	}
}

// FlavourText returns the translated floor banner. Uses gotext.Get with
// constant keys to satisfy vet.
func FlavourText(floor, totalFloors int) string {
	switch FlavourKey(floor, totalFloors) {
	case "FLOOR_FLAVOUR_FINAL":
		return gotext.Get("FLOOR_FLAVOUR_FINAL")
	case "FLOOR_FLAVOUR_DEEP":
		return gotext.Get("FLOOR_FLAVOUR_DEEP")
	default:
		return gotext.Get("FLOOR_FLAVOUR_SHALLOW")
	}
}

package world

import "strings"

// Direction represents a wall of a room and the graph edge leaving through it
type Direction int

// Direction constants
const (
	Top Direction = iota
	Bottom
	Left
	Right
)

// DirectionCount is the number of door directions a room can have
const DirectionCount = 4

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Top, Bottom, Left, Right}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name such as "top" into a Direction
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "up", "north":
		return Top, true
	case "bottom", "down", "south":
		return Bottom, true
	case "left", "west":
		return Left, true
	case "right", "east":
		return Right, true
	}
	return Top, false
}

// IsValid returns true if the direction is one of the four walls
func (d Direction) IsValid() bool {
	return d >= Top && d <= Right
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta returns the grid offset of one step in this direction (y grows downwards)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Top:
		return 0, -1
	case Bottom:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

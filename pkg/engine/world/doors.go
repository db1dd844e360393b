package world

import "strings"

// Doors is the set of walls that can carry a door
type Doors uint8

// NewDoors builds a door set from the given directions
func NewDoors(dirs ...Direction) Doors {
	var d Doors
	for _, dir := range dirs {
		d = d.With(dir)
	}
	return d
}

// With returns a copy of the set including dir
func (d Doors) With(dir Direction) Doors {
	if !dir.IsValid() {
		return d
	}
	return d | 1<<uint(dir)
}

// Has reports whether the wall in direction dir carries a door
func (d Doors) Has(dir Direction) bool {
	return dir.IsValid() && d&(1<<uint(dir)) != 0
}

// Count returns the number of doors in the set
func (d Doors) Count() int {
	n := 0
	for _, dir := range AllDirections() {
		if d.Has(dir) {
			n++
		}
	}
	return n
}

// List returns the doors in Top, Bottom, Left, Right order
func (d Doors) List() []Direction {
	dirs := make([]Direction, 0, DirectionCount)
	for _, dir := range AllDirections() {
		if d.Has(dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func (d Doors) String() string {
	names := make([]string, 0, DirectionCount)
	for _, dir := range d.List() {
		names = append(names, dir.String())
	}
	return strings.Join(names, ",")
}

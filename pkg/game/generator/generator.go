package generator

import (
	gameworld "pixelshooter/pkg/game/world"
)

// FloorGenerator is an interface for floor generation algorithms
type FloorGenerator interface {
	Generate(floorNumber int) *gameworld.Floor
	Name() string
}

// DefaultGenerator is the default floor generator, built over the embedded catalog
var DefaultGenerator FloorGenerator = NewBuilder(nil, nil)

// Seeder is implemented by generators whose random source can be reset,
// so a run can be replayed from a stored seed.
type Seeder interface {
	Seed(seed int64)
}

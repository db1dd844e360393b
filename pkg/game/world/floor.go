package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"pixelshooter/pkg/engine/world"
)

// NoRoom marks a door slot that leads nowhere
const NoRoom = -1

// Links is a room's adjacency row: the room index behind each wall, or NoRoom.
type Links [world.DirectionCount]int

// EmptyLinks returns a row with every direction unconnected
func EmptyLinks() Links {
	return Links{NoRoom, NoRoom, NoRoom, NoRoom}
}

// Floor is the complete state of one generated level. A new floor replaces
// the previous value wholesale; nothing is carried over.
type Floor struct {
	Number       int
	Rooms        []*Room
	Connections  []Links
	CurrentRoom  int
	BossDefeated bool
}

// NewFloor creates a floor over the given rooms with no connections
func NewFloor(number int, rooms []*Room) *Floor {
	conns := make([]Links, len(rooms))
	for i := range conns {
		conns[i] = EmptyLinks()
	}
	return &Floor{
		Number:      number,
		Rooms:       rooms,
		Connections: conns,
	}
}

// Current returns the room the player is in
func (f *Floor) Current() *Room {
	return f.Room(f.CurrentRoom)
}

// Room returns the room at index i, or nil
func (f *Floor) Room(i int) *Room {
	if i < 0 || i >= len(f.Rooms) {
		return nil
	}
	return f.Rooms[i]
}

// Link returns the room behind wall d of room i, or NoRoom
func (f *Floor) Link(i int, d world.Direction) int {
	if i < 0 || i >= len(f.Connections) || !d.IsValid() {
		return NoRoom
	}
	return f.Connections[i][d]
}

// IsFree reports whether wall d of room i has no connection yet
func (f *Floor) IsFree(i int, d world.Direction) bool {
	return f.Link(i, d) == NoRoom
}

// LinkCount returns how many walls of room i are connected
func (f *Floor) LinkCount(i int) int {
	n := 0
	for _, d := range world.AllDirections() {
		if f.Link(i, d) != NoRoom {
			n++
		}
	}
	return n
}

// Connect links wall d of room i to the opposite wall of room j.
func (f *Floor) Connect(i int, d world.Direction, j int) {
	f.Connections[i][d] = j
	f.Connections[j][d.Opposite()] = i
}

// DoorWalls returns the walls of room i that show a door: the template's
// doors plus any wall an unmatched link was routed through.
func (f *Floor) DoorWalls(i int) world.Doors {
	room := f.Room(i)
	if room == nil {
		return 0
	}
	walls := room.Doors
	for _, d := range world.AllDirections() {
		if f.Link(i, d) != NoRoom {
			walls = walls.With(d)
		}
	}
	return walls
}

// Adjacent reports whether rooms i and j share any connection
func (f *Floor) Adjacent(i, j int) bool {
	for _, d := range world.AllDirections() {
		if f.Link(i, d) == j {
			return true
		}
	}
	return false
}

// Reachable returns the set of rooms reachable from start over connections.
func (f *Floor) Reachable(start int) mapset.Set[int] {
	visited := mapset.New[int]()
	if f.Room(start) == nil {
		return visited
	}
	q := queue.New[int]()
	q.Enqueue(start)
	visited.Put(start)

	for !q.Empty() {
		current := q.Dequeue()
		for _, d := range world.AllDirections() {
			next := f.Link(current, d)
			if next != NoRoom && !visited.Has(next) {
				visited.Put(next)
				q.Enqueue(next)
			}
		}
	}
	return visited
}

// Validate checks the structural invariants of a generated floor: symmetric
// links, every room reachable from room 0, and exactly one boss.
func (f *Floor) Validate() error {
	if len(f.Rooms) == 0 {
		return fmt.Errorf("floor %d has no rooms", f.Number)
	}
	if len(f.Connections) != len(f.Rooms) {
		return fmt.Errorf("floor %d has %d rooms but %d adjacency rows", f.Number, len(f.Rooms), len(f.Connections))
	}

	for i := range f.Rooms {
		for _, d := range world.AllDirections() {
			j := f.Link(i, d)
			if j == NoRoom {
				continue
			}
			if f.Room(j) == nil {
				return fmt.Errorf("room %d %s leads to missing room %d", i, d, j)
			}
			if back := f.Link(j, d.Opposite()); back != i {
				return fmt.Errorf("room %d %s -> %d is not mirrored (room %d %s -> %d)", i, d, j, j, d.Opposite(), back)
			}
		}
	}

	if reached := f.Reachable(0).Size(); reached != len(f.Rooms) {
		return fmt.Errorf("only %d of %d rooms reachable from room 0", reached, len(f.Rooms))
	}

	bossRooms := 0
	for _, r := range f.Rooms {
		if !r.IsBossRoom {
			continue
		}
		bossRooms++
		bosses := 0
		for _, e := range r.Enemies {
			if e.IsBoss {
				bosses++
			}
		}
		if bosses != 1 {
			return fmt.Errorf("boss room %d has %d bosses", r.Index, bosses)
		}
	}
	if bossRooms != 1 {
		return fmt.Errorf("floor %d has %d boss rooms", f.Number, bossRooms)
	}
	return nil
}

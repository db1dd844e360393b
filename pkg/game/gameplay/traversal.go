package gameplay

import (
	"math"

	"github.com/charmbracelet/log"

	"pixelshooter/pkg/engine/physics"
	"pixelshooter/pkg/engine/world"
	"pixelshooter/pkg/game/entities"
	"pixelshooter/pkg/game/state"
	gameworld "pixelshooter/pkg/game/world"
)

// Door geometry, in room pixels
const (
	DoorSize = 32

	// DoorZoneDepth is how close to a wall the player must get to use its door.
	DoorZoneDepth = 12

	// EntryClearance is the gap left between an arriving player and the door zone.
	EntryClearance = 4

	// StairsRadius is the reach of the stairs around the room centre.
	StairsRadius = 2 * DoorSize
)

// TransitionKind says what a traversal check did
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionRoom
	TransitionFloor
	TransitionWon
)

// String returns the kind name for logs
func (k TransitionKind) String() string {
	switch k {
	case TransitionRoom:
		return "room"
	case TransitionFloor:
		return "floor"
	case TransitionWon:
		return "won"
	default:
		return "none"
	}
}

// Transition describes a change of room or floor. From and To are room
// indices for TransitionRoom and floor numbers for TransitionFloor.
// Enemies is the list that is now active, shared with the room that owns it.
type Transition struct {
	Kind      TransitionKind
	From      int
	To        int
	Direction world.Direction
	Enemies   []*entities.Enemy
}

// Traverse checks the player's position against the current room's doors and
// stairs and performs at most one transition.
func Traverse(g *state.Game) Transition {
	f := g.Floor
	if f == nil || !g.Running() {
		return Transition{}
	}
	room := f.Current()
	if room == nil {
		return Transition{}
	}

	if d, ok := FindDoorZone(f, g.Player.Position); ok {
		dest := f.Link(f.CurrentRoom, d)
		if dest == gameworld.NoRoom {
			return Transition{}
		}
		return EnterRoom(g, d, dest)
	}

	if f.BossDefeated && room.HasStairs && InStairsZone(room, g.Player.Position) {
		return AdvanceFloor(g)
	}
	return Transition{}
}

// FindDoorZone returns the wall of the current room whose door zone contains pos.
// Walls are tried in top, bottom, left, right order.
func FindDoorZone(f *gameworld.Floor, pos physics.Vec2) (world.Direction, bool) {
	room := f.Current()
	if room == nil {
		return 0, false
	}
	for _, d := range f.DoorWalls(f.CurrentRoom).List() {
		if inDoorZone(room, d, pos) {
			return d, true
		}
	}
	return 0, false
}

func inDoorZone(room *gameworld.Room, d world.Direction, pos physics.Vec2) bool {
	mid := room.Center()
	switch d {
	case world.Top:
		return pos.Y < DoorZoneDepth && math.Abs(pos.X-mid.X) < DoorSize
	case world.Bottom:
		return pos.Y > room.Height-DoorZoneDepth && math.Abs(pos.X-mid.X) < DoorSize
	case world.Left:
		return pos.X < DoorZoneDepth && math.Abs(pos.Y-mid.Y) < DoorSize
	case world.Right:
		return pos.X > room.Width-DoorZoneDepth && math.Abs(pos.Y-mid.Y) < DoorSize
	}
	return false
}

// DoorApproach returns a point inside the door zone of wall d, for callers
// that step through doors without walking up to them.
func DoorApproach(room *gameworld.Room, d world.Direction) physics.Vec2 {
	const depth = DoorZoneDepth / 2
	mid := room.Center()
	switch d {
	case world.Top:
		return physics.Vec2{X: mid.X, Y: depth}
	case world.Bottom:
		return physics.Vec2{X: mid.X, Y: room.Height - depth}
	case world.Left:
		return physics.Vec2{X: depth, Y: mid.Y}
	case world.Right:
		return physics.Vec2{X: room.Width - depth, Y: mid.Y}
	}
	return mid
}

// EntryPosition is where a player who left through wall exit appears in room:
// against the opposite wall, centred on it, clear of that wall's door zone.
func EntryPosition(room *gameworld.Room, exit world.Direction) physics.Vec2 {
	const inset = DoorZoneDepth + entities.PlayerRadius + EntryClearance
	mid := room.Center()
	switch exit.Opposite() {
	case world.Top:
		return physics.Vec2{X: mid.X, Y: inset}
	case world.Bottom:
		return physics.Vec2{X: mid.X, Y: room.Height - inset}
	case world.Left:
		return physics.Vec2{X: inset, Y: mid.Y}
	case world.Right:
		return physics.Vec2{X: room.Width - inset, Y: mid.Y}
	}
	return mid
}

// InStairsZone reports whether pos is close enough to the room centre to take the stairs.
func InStairsZone(room *gameworld.Room, pos physics.Vec2) bool {
	return physics.PointInCircle(pos, room.Center(), StairsRadius)
}

// EnterRoom moves the player through wall exit of the current room into dest.
// The destination keeps its own enemy list, so half-finished fights resume.
func EnterRoom(g *state.Game, exit world.Direction, dest int) Transition {
	f := g.Floor
	from := f.CurrentRoom
	f.CurrentRoom = dest
	room := f.Current()

	firstVisit := !room.Visited
	room.Visited = true
	g.Player.Position = EntryPosition(room, exit)
	g.Bullets = g.Bullets[:0]

	log.Debug("room changed", "floor", f.Number, "from", from, "to", dest, "via", exit)
	if firstVisit && room.IsBossRoom {
		logMessage(g, "BOSS{BOSS_ROOM_ENTERED}")
	}

	return Transition{
		Kind:      TransitionRoom,
		From:      from,
		To:        dest,
		Direction: exit,
		Enemies:   room.Enemies,
	}
}

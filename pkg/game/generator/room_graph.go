// Package generator builds floors: a handful of rooms cut from the template
// catalog, filled with enemies, and wired into a connected door graph.
package generator

import (
	"math/rand"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"pixelshooter/pkg/engine/physics"
	"pixelshooter/pkg/engine/world"
	"pixelshooter/pkg/game/catalog"
	"pixelshooter/pkg/game/entities"
	"pixelshooter/pkg/game/progression"
	gameworld "pixelshooter/pkg/game/world"
)

// Enemies spawn at least this far from every wall.
const spawnMargin = 100

// Builder generates floors as a random spanning tree over the rooms plus a
// few extra edges.
type Builder struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

// NewBuilder creates a builder over cat (nil means the embedded catalog).
// A nil rng is seeded from the clock.
func NewBuilder(cat *catalog.Catalog, rng *rand.Rand) *Builder {
	if cat == nil {
		cat = catalog.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{catalog: cat, rng: rng}
}

// Name returns the name of this generator
func (b *Builder) Name() string {
	return "Room Graph"
}

// Seed resets the random source so the next floors repeat a previous run.
func (b *Builder) Seed(seed int64) {
	b.rng.Seed(seed)
}

// Generate creates a new floor. Room 0 is the start room; the last room holds the boss.
func (b *Builder) Generate(floorNumber int) *gameworld.Floor {
	count := progression.MinRooms + b.rng.Intn(progression.MaxRooms-progression.MinRooms+1)

	rooms := make([]*gameworld.Room, count)
	for i := range rooms {
		tpl := b.catalog.Templates[b.rng.Intn(b.catalog.Len())]
		rooms[i] = gameworld.NewRoom(i, tpl)
		b.populate(rooms[i], floorNumber)
	}

	bossRoom := rooms[count-1]
	bossRoom.IsBossRoom = true
	if n := len(bossRoom.Enemies); n > 0 {
		bossRoom.Enemies[n-1].IsBoss = true
	}

	floor := gameworld.NewFloor(floorNumber, rooms)
	fallbacks := b.connectSpanning(floor)
	extra := b.connectExtra(floor)

	floor.CurrentRoom = 0
	rooms[0].Visited = true

	// Validate the generated floor
	if err := floor.Validate(); err != nil {
		panic("Generated invalid floor: " + err.Error())
	}

	log.Debug("floor generated", "floor", floorNumber, "rooms", count, "extra_edges", extra, "unmatched_links", fallbacks)
	return floor
}

// populate fills a room with the floor's enemies at random spots away from the walls.
func (b *Builder) populate(room *gameworld.Room, floorNumber int) {
	stats := progression.EnemyStatsForFloor(floorNumber)
	for i := 0; i < stats.Count; i++ {
		pos := physics.Vec2{
			X: spawnMargin + b.rng.Float64()*max(room.Width-2*spawnMargin, 0),
			Y: spawnMargin + b.rng.Float64()*max(room.Height-2*spawnMargin, 0),
		}
		room.Enemies = append(room.Enemies, entities.NewEnemy(pos, stats.Speed, stats.Health))
	}
}

// freeDoors returns the walls of room i that list a door, are still
// unconnected, and leave the room within its door budget.
func freeDoors(f *gameworld.Floor, i int) []world.Direction {
	room := f.Room(i)
	if f.LinkCount(i) >= room.Doors.Count() {
		return nil
	}
	var dirs []world.Direction
	for _, d := range room.Doors.List() {
		if f.IsFree(i, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// canAccept reports whether room j can take a door-matched link on wall d.
func canAccept(f *gameworld.Floor, j int, d world.Direction) bool {
	room := f.Room(j)
	return room.Doors.Has(d) && f.IsFree(j, d) && f.LinkCount(j) < room.Doors.Count()
}

// members returns the set's contents in ascending order so a seeded run is repeatable.
func members(s mapset.Set[int]) []int {
	out := make([]int, 0, s.Size())
	s.Each(func(i int) {
		out = append(out, i)
	})
	sort.Ints(out)
	return out
}

// connectSpanning links every room into one tree grown from room 0. When no
// unconnected room has a matching door, any unconnected room is linked through
// the opposite wall anyway. Returns how many such unmatched links were made.
func (b *Builder) connectSpanning(f *gameworld.Floor) int {
	connected := mapset.New[int]()
	connected.Put(0)
	unconnected := mapset.New[int]()
	for i := 1; i < len(f.Rooms); i++ {
		unconnected.Put(i)
	}

	fallbacks := 0
	for unconnected.Size() > 0 {
		var sources []int
		for _, i := range members(connected) {
			if len(freeDoors(f, i)) > 0 {
				sources = append(sources, i)
			}
		}
		if len(sources) == 0 {
			// Only reachable with templates below catalog.MinDoors.
			panic("no connected room has a free door; catalog templates need at least two doors")
		}

		src := sources[b.rng.Intn(len(sources))]
		dirs := freeDoors(f, src)
		dir := dirs[b.rng.Intn(len(dirs))]
		opposite := dir.Opposite()

		var targets []int
		for _, j := range members(unconnected) {
			if canAccept(f, j, opposite) {
				targets = append(targets, j)
			}
		}
		if len(targets) == 0 {
			// An unconnected room has no links, so its opposite wall is always free.
			targets = members(unconnected)
			fallbacks++
		}

		dst := targets[b.rng.Intn(len(targets))]
		f.Connect(src, dir, dst)
		unconnected.Remove(dst)
		connected.Put(dst)
	}
	return fallbacks
}

// edge is a candidate extra link from room i through wall dir to room j.
type edge struct {
	i, j int
	dir  world.Direction
}

// connectExtra tries len(rooms)/3 times to add a loop-forming edge between two
// rooms that both have a matching free door. Attempts with no candidate are skipped.
func (b *Builder) connectExtra(f *gameworld.Floor) int {
	added := 0
	attempts := len(f.Rooms) / 3
	for a := 0; a < attempts; a++ {
		var candidates []edge
		for i := range f.Rooms {
			for _, d := range freeDoors(f, i) {
				for j := i + 1; j < len(f.Rooms); j++ {
					if canAccept(f, j, d.Opposite()) && !f.Adjacent(i, j) {
						candidates = append(candidates, edge{i: i, j: j, dir: d})
					}
				}
			}
		}
		if len(candidates) == 0 {
			continue
		}
		e := candidates[b.rng.Intn(len(candidates))]
		f.Connect(e.i, e.dir, e.j)
		added++
	}
	return added
}

// Package generator tests floor generation: connectivity, link symmetry, the
// single boss, door budgets and enemy scaling.
package generator

import (
	"math/rand"
	"strings"
	"testing"

	"pixelshooter/pkg/engine/world"
	"pixelshooter/pkg/game/catalog"
	"pixelshooter/pkg/game/progression"
	gameworld "pixelshooter/pkg/game/world"
)

// generateMany returns floors for several floor numbers and seeds.
func generateMany(t *testing.T, cat *catalog.Catalog) []*gameworld.Floor {
	t.Helper()
	var floors []*gameworld.Floor
	for seed := int64(1); seed <= 40; seed++ {
		b := NewBuilder(cat, rand.New(rand.NewSource(seed)))
		for floor := 1; floor <= 5; floor++ {
			floors = append(floors, b.Generate(floor))
		}
	}
	return floors
}

// reachableFromZero counts rooms reachable from room 0 by DFS over the raw adjacency rows.
func reachableFromZero(f *gameworld.Floor) int {
	seen := map[int]bool{0: true}
	stack := []int{0}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, j := range f.Connections[i] {
			if j != gameworld.NoRoom && !seen[j] {
				seen[j] = true
				stack = append(stack, j)
			}
		}
	}
	return len(seen)
}

func TestGenerate_AllRoomsReachable(t *testing.T) {
	for _, f := range generateMany(t, nil) {
		if got := reachableFromZero(f); got != len(f.Rooms) {
			t.Fatalf("floor %d: reachable rooms %d != total rooms %d", f.Number, got, len(f.Rooms))
		}
	}
}

func TestGenerate_LinksAreSymmetric(t *testing.T) {
	for _, f := range generateMany(t, nil) {
		for i := range f.Rooms {
			for _, d := range world.AllDirections() {
				j := f.Connections[i][d]
				if j == gameworld.NoRoom {
					continue
				}
				if back := f.Connections[j][d.Opposite()]; back != i {
					t.Fatalf("room %d %s -> %d but room %d %s -> %d", i, d, j, j, d.Opposite(), back)
				}
			}
		}
	}
}

func TestGenerate_SingleBoss(t *testing.T) {
	for _, f := range generateMany(t, nil) {
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
				t.Fatalf("boss room %d has %d bosses, want 1", r.Index, bosses)
			}
		}
		if bossRooms != 1 {
			t.Fatalf("floor has %d boss rooms, want 1", bossRooms)
		}
		last := f.Rooms[len(f.Rooms)-1]
		if !last.IsBossRoom || !last.Enemies[len(last.Enemies)-1].IsBoss {
			t.Fatal("boss should be the last enemy of the last room")
		}
	}
}

func TestGenerate_LinksWithinDoorBudget(t *testing.T) {
	for _, f := range generateMany(t, nil) {
		for i, r := range f.Rooms {
			if f.LinkCount(i) > r.Doors.Count() {
				t.Fatalf("room %d has %d links but template %s has %d doors", i, f.LinkCount(i), r.Template.Name, r.Doors.Count())
			}
		}
	}
}

func TestGenerate_RoomCountAndEnemies(t *testing.T) {
	b := NewBuilder(nil, rand.New(rand.NewSource(11)))
	for floor := 1; floor <= 6; floor++ {
		f := b.Generate(floor)
		if len(f.Rooms) < progression.MinRooms || len(f.Rooms) > progression.MaxRooms {
			t.Errorf("floor %d has %d rooms, want %d..%d", floor, len(f.Rooms), progression.MinRooms, progression.MaxRooms)
		}
		stats := progression.EnemyStatsForFloor(floor)
		for _, r := range f.Rooms {
			if len(r.Enemies) != stats.Count {
				t.Errorf("floor %d room %d has %d enemies, want %d", floor, r.Index, len(r.Enemies), stats.Count)
			}
			for _, e := range r.Enemies {
				if e.Speed != stats.Speed || e.Health != stats.Health {
					t.Errorf("enemy speed/health = %v/%v, want %v/%v", e.Speed, e.Health, stats.Speed, stats.Health)
				}
				if e.Position.X < spawnMargin || e.Position.X > r.Width-spawnMargin ||
					e.Position.Y < spawnMargin || e.Position.Y > r.Height-spawnMargin {
					t.Errorf("enemy at %v outside spawn area of %vx%v room", e.Position, r.Width, r.Height)
				}
			}
		}
		if f.CurrentRoom != 0 || !f.Rooms[0].Visited {
			t.Error("floor should start in visited room 0")
		}
		if f.BossDefeated {
			t.Error("new floor should not start with the boss defeated")
		}
	}
}

func TestGenerate_UnmatchedDoorsStillConnect(t *testing.T) {
	// No template has a bottom or right door, so links through top/left can
	// never find a matching partner and always take the fallback.
	src := `
templates:
  - name: corner
    width: 640
    height: 480
    doors: [top, left]
`
	cat, err := catalog.Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, f := range generateMany(t, cat) {
		if err := f.Validate(); err != nil {
			t.Fatalf("Validate: %v", err)
		}
		for i, r := range f.Rooms {
			if f.LinkCount(i) > r.Doors.Count() {
				t.Fatalf("room %d exceeds door budget: %d links", i, f.LinkCount(i))
			}
		}
	}
}

func TestGenerate_SameSeedSameFloor(t *testing.T) {
	a := NewBuilder(nil, rand.New(rand.NewSource(99))).Generate(2)
	b := NewBuilder(nil, rand.New(rand.NewSource(99))).Generate(2)
	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(a.Rooms), len(b.Rooms))
	}
	for i := range a.Connections {
		if a.Connections[i] != b.Connections[i] {
			t.Errorf("room %d links differ: %v vs %v", i, a.Connections[i], b.Connections[i])
		}
		if a.Rooms[i].Template != b.Rooms[i].Template {
			t.Errorf("room %d template differs", i)
		}
	}
}

func TestConnectExtra_SkipsWhenNoCandidates(t *testing.T) {
	// Two-door corridors in a ring use up every door, leaving nothing for extra edges.
	cat, err := catalog.Load(strings.NewReader(`
templates:
  - name: corridor
    width: 1400
    height: 480
    doors: [left, right]
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tpl := cat.Templates[0]
	rooms := make([]*gameworld.Room, 3)
	for i := range rooms {
		rooms[i] = gameworld.NewRoom(i, tpl)
	}
	f := gameworld.NewFloor(1, rooms)
	f.Connect(0, world.Right, 1)
	f.Connect(1, world.Right, 2)
	f.Connect(2, world.Right, 0)

	b := NewBuilder(cat, rand.New(rand.NewSource(1)))
	if added := b.connectExtra(f); added != 0 {
		t.Errorf("connectExtra added %d edges, want 0", added)
	}
}

func TestDefaultGenerator_Name(t *testing.T) {
	if DefaultGenerator.Name() == "" {
		t.Error("DefaultGenerator has no name")
	}
}

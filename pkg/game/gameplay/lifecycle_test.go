package gameplay

import (
	"math/rand"
	"testing"

	engineinput "pixelshooter/pkg/engine/input"
	"pixelshooter/pkg/engine/physics"
	"pixelshooter/pkg/game/generator"
	"pixelshooter/pkg/game/state"
)

func TestStartRun_SameSeedSameFloor(t *testing.T) {
	useSeededGenerator(t, 1)

	a := state.NewGame()
	StartRun(a, 42)
	b := state.NewGame()
	StartRun(b, 42)

	if a.Status != state.StatusPlaying {
		t.Fatalf("Status = %v, want playing", a.Status)
	}
	if len(a.Floor.Rooms) != len(b.Floor.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(a.Floor.Rooms), len(b.Floor.Rooms))
	}
	for i := range a.Floor.Connections {
		if a.Floor.Connections[i] != b.Floor.Connections[i] {
			t.Errorf("room %d links differ: %v vs %v", i, a.Floor.Connections[i], b.Floor.Connections[i])
		}
	}
	if a.Player.Position != a.Floor.Current().Center() {
		t.Error("player should start in the centre of room 0")
	}
	if !a.Floor.Current().Visited {
		t.Error("start room should be visited")
	}
}

func TestStartRun_StartFloor(t *testing.T) {
	useSeededGenerator(t, 2)
	g := state.NewGame()
	g.StartFloor = 3
	StartRun(g, 7)
	if g.Floor.Number != 3 || g.Player.CurrentFloor != 3 {
		t.Errorf("floor = %d, want 3", g.Floor.Number)
	}

	g.StartFloor = 99
	StartRun(g, 7)
	if g.Floor.Number != 1 {
		t.Errorf("out-of-range start floor gave floor %d, want 1", g.Floor.Number)
	}
}

func TestProcessIntent_StartAndQuit(t *testing.T) {
	useSeededGenerator(t, 3)
	g := state.NewGame()

	if ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionStart}) {
		t.Fatal("start reported quit")
	}
	if g.Status != state.StatusPlaying || g.Floor == nil {
		t.Fatalf("Status = %v, want playing with a floor", g.Status)
	}

	if ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionQuit}) {
		t.Error("quit during play should return to the title, not exit")
	}
	if g.Status != state.StatusTitle {
		t.Errorf("Status = %v, want title", g.Status)
	}
	if !ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionQuit}) {
		t.Error("quit on the title screen should exit")
	}
}

func TestProcessIntent_RestartAfterGameOver(t *testing.T) {
	useSeededGenerator(t, 4)
	g := state.NewGame()
	StartRun(g, 5)
	g.Player.Health = 0
	g.Score = 12
	g.Status = state.StatusGameOver

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionStart})
	if g.Status != state.StatusPlaying || g.Score != 0 || g.Player.IsDead() {
		t.Errorf("restart left status %v, score %d, health %v", g.Status, g.Score, g.Player.Health)
	}
}

func TestCameraOffset(t *testing.T) {
	g := makeGame(t)
	hall := g.Floor.Room(0)
	if got := CameraOffset(hall, physics.Vec2{X: 700, Y: 100}, ViewportWidth, ViewportHeight); got != (physics.Vec2{}) {
		t.Errorf("viewport-sized room offset = %v, want (0,0)", got)
	}

	gallery := g.Floor.Room(1)
	if got := CameraOffset(gallery, physics.Vec2{X: 1150, Y: 300}, ViewportWidth, ViewportHeight); got.X != 400 {
		t.Errorf("offset at the right wall = %v, want x 400", got)
	}
	if got := CameraOffset(gallery, physics.Vec2{X: 600, Y: 300}, ViewportWidth, ViewportHeight); got.X != 200 {
		t.Errorf("offset in the middle = %v, want x 200", got)
	}

	small := g.Floor.Room(0)
	if got := CameraOffset(small, physics.Vec2{}, 1000, 800); got != (physics.Vec2{X: -100, Y: -100}) {
		t.Errorf("small room offset = %v, want centred (-100,-100)", got)
	}
}

func TestSetFloor_UsesCallerFloor(t *testing.T) {
	g := makeGame(t)
	b := generator.NewBuilder(nil, rand.New(rand.NewSource(11)))
	f := b.Generate(3)
	SetFloor(g, f)
	if g.Floor != f {
		t.Fatal("SetFloor did not install the given floor")
	}
	if g.Player.CurrentFloor != 3 {
		t.Errorf("CurrentFloor = %d, want 3", g.Player.CurrentFloor)
	}
	if g.Player.Position != f.Current().Center() {
		t.Errorf("player at %v, want start room centre", g.Player.Position)
	}
}

func TestProcessIntent_TitleStartUsesConfiguredSeed(t *testing.T) {
	useSeededGenerator(t, 6)
	g := state.NewGame()
	g.ConfiguredSeed = 42

	start := engineinput.Intent{Action: engineinput.ActionStart}
	quit := engineinput.Intent{Action: engineinput.ActionQuit}
	ProcessIntent(g, start)
	if g.LevelSeed != 42 {
		t.Fatalf("LevelSeed = %d, want configured 42", g.LevelSeed)
	}
	ProcessIntent(g, quit)
	ProcessIntent(g, start)
	if g.LevelSeed != 42 {
		t.Errorf("second start LevelSeed = %d, want configured 42", g.LevelSeed)
	}
}

func TestProcessIntent_UnseededTitleStartTakesNewSeed(t *testing.T) {
	useSeededGenerator(t, 6)
	g := state.NewGame()

	start := engineinput.Intent{Action: engineinput.ActionStart}
	ProcessIntent(g, start)
	if g.LevelSeed == 0 {
		t.Fatal("unseeded start kept a zero LevelSeed")
	}
	// Mark the used seed so a replay of it is detectable.
	g.LevelSeed = 99
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionQuit})
	ProcessIntent(g, start)
	if g.LevelSeed == 99 {
		t.Error("start from the title replayed the previous run's seed")
	}
	if g.ConfiguredSeed != 0 {
		t.Errorf("ConfiguredSeed = %d, want it left at 0", g.ConfiguredSeed)
	}
}

package gameplay

import (
	"time"

	"github.com/charmbracelet/log"

	"pixelshooter/pkg/game/entities"
	"pixelshooter/pkg/game/generator"
	"pixelshooter/pkg/game/progression"
	"pixelshooter/pkg/game/state"
	gameworld "pixelshooter/pkg/game/world"
)

// GenerateFloor creates a new floor using the default generator
func GenerateFloor(number int) *gameworld.Floor {
	return generator.DefaultGenerator.Generate(number)
}

// StartRun resets the run and enters the starting floor. A zero seed is
// replaced with one from the clock; the seed used is kept on the game.
func StartRun(g *state.Game, seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.LevelSeed = seed
	if s, ok := generator.DefaultGenerator.(generator.Seeder); ok {
		s.Seed(seed)
	}

	g.Player = entities.NewPlayer()
	g.Score = 0
	g.LastShot = time.Time{}
	g.Status = state.StatusPlaying
	g.ClearMessages()

	start := g.StartFloor
	if start < 1 || start > g.TotalFloors {
		start = 1
	}

	log.Info("run started", "seed", seed, "start_floor", start, "total_floors", g.TotalFloors)
	EnterFloor(g, start)
}

// EnterFloor replaces the current floor with a newly generated one and puts
// the player in the centre of its start room.
func EnterFloor(g *state.Game, number int) {
	SetFloor(g, GenerateFloor(number))
}

// SetFloor replaces the current floor with f, which the caller generated.
func SetFloor(g *state.Game, f *gameworld.Floor) {
	number := f.Number
	g.Floor = f
	g.Player.CurrentFloor = number
	g.Player.Position = f.Current().Center()
	g.Bullets = g.Bullets[:0]

	log.Info("floor entered", "floor", number, "rooms", len(f.Rooms))
	logMessage(g, "GT{FLOOR_ENTERED} ACTION{%d}", number)
	logMessage(g, "SUBTLE{%s}", progression.FlavourKey(number, g.TotalFloors))
}

// AdvanceFloor takes the stairs: the next floor is generated, or the run is
// won if this was the last one.
func AdvanceFloor(g *state.Game) Transition {
	from := g.Floor.Number
	next, ok := progression.NextFloor(from, g.TotalFloors)
	if !ok {
		g.Status = state.StatusWon
		log.Info("run won", "floor", from, "score", g.Score)
		logMessage(g, "ITEM{RUN_WON}")
		return Transition{Kind: TransitionWon, From: from, To: from}
	}

	EnterFloor(g, next)
	return Transition{
		Kind:    TransitionFloor,
		From:    from,
		To:      next,
		Enemies: g.ActiveEnemies(),
	}
}

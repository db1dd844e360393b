package state

import (
	"time"

	"pixelshooter/pkg/game/entities"
	"pixelshooter/pkg/game/progression"
	gameworld "pixelshooter/pkg/game/world"
)

// Status is the top-level screen the game is on
type Status int

// Game statuses
const (
	StatusTitle Status = iota
	StatusPlaying
	StatusGameOver
	StatusWon
)

// String returns the status name for logs
func (s Status) String() string {
	switch s {
	case StatusTitle:
		return "title"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Game represents the state of one run
type Game struct {
	Floor   *gameworld.Floor
	Player  *entities.Player
	Bullets []*entities.Bullet

	Score  int
	Status Status

	StartFloor  int
	TotalFloors int
	LastShot    time.Time

	Messages []string

	// ConfiguredSeed seeds runs started from the title; zero means the clock.
	ConfiguredSeed int64
	// LevelSeed is the seed the current run actually used.
	LevelSeed int64
}

// NewGame creates a new game instance on the title screen
func NewGame() *Game {
	return &Game{
		Player:      entities.NewPlayer(),
		Bullets:     make([]*entities.Bullet, 0),
		Status:      StatusTitle,
		StartFloor:  1,
		TotalFloors: progression.DefaultTotalFloors,
		Messages:    make([]string, 0),
	}
}

// Running reports whether the simulation should advance this tick
func (g *Game) Running() bool {
	return g.Status == StatusPlaying
}

// CurrentRoom returns the room the player is in, or nil before the first floor
func (g *Game) CurrentRoom() *gameworld.Room {
	if g.Floor == nil {
		return nil
	}
	return g.Floor.Current()
}

// ActiveEnemies returns the current room's own enemy list
func (g *Game) ActiveEnemies() []*entities.Enemy {
	room := g.CurrentRoom()
	if room == nil {
		return nil
	}
	return room.Enemies
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

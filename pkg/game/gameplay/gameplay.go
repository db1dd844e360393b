// Package gameplay provides core game logic: player movement, combat, room
// traversal and floor progression.
package gameplay

import (
	"pixelshooter/pkg/game/renderer"
	"pixelshooter/pkg/game/state"
)

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	formatted := renderer.ApplyMarkup(msg, a...)
	g.AddMessage(formatted)
}

package renderer

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "pixelshooter/pkg/engine/input"
	"pixelshooter/pkg/game/progression"
	"pixelshooter/pkg/game/state"
)

// HUDLines returns the status lines shown above the play area: floor,
// room and enemy counts, then health and score. Uses gotext.Get with
// constant keys to satisfy vet.
func HUDLines(g *state.Game) []string {
	if g.Floor == nil {
		return nil
	}
	room := g.Floor.Current()
	lines := []string{
		fmt.Sprintf(gotext.Get("HUD_FLOOR"), g.Floor.Number, g.TotalFloors),
		fmt.Sprintf(gotext.Get("HUD_ROOM"), g.Floor.CurrentRoom+1, len(g.Floor.Rooms), len(room.Enemies)),
		fmt.Sprintf(gotext.Get("HUD_HEALTH"), g.Player.Health, g.Score),
	}
	if g.Floor.BossDefeated {
		lines = append(lines, gotext.Get("HUD_STAIRS_OPEN"))
	}
	return lines
}

// StatusBanner returns the full-screen text for the non-playing statuses,
// or "" while playing.
func StatusBanner(g *state.Game) string {
	switch g.Status {
	case state.StatusTitle:
		return gotext.Get("TITLE_BANNER")
	case state.StatusGameOver:
		return fmt.Sprintf(gotext.Get("GAME_OVER_BANNER"), g.Score)
	case state.StatusWon:
		return fmt.Sprintf(gotext.Get("WON_BANNER"), g.Score)
	}
	return ""
}

// FloorBanner returns the flavour line for the current floor
func FloorBanner(g *state.Game) string {
	if g.Floor == nil {
		return ""
	}
	return progression.FlavourText(g.Floor.Number, g.TotalFloors)
}

// BindingLines returns one "Name: codes" line per action, in the given order.
func BindingLines(actions ...engineinput.Action) []string {
	byAction := engineinput.GetBindingsByAction()
	lines := make([]string, 0, len(actions))
	for _, act := range actions {
		codeText := strings.Join(byAction[act], ", ")
		if codeText == "" {
			codeText = "(unbound)"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", engineinput.ActionName(act), codeText))
	}
	return lines
}

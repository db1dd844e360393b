package gameplay

import (
	"github.com/charmbracelet/log"

	engineinput "pixelshooter/pkg/engine/input"
	"pixelshooter/pkg/game/devtools"
	"pixelshooter/pkg/game/state"
)

// ProcessIntent handles a one-shot input intent (key press, not hold). It
// returns true when the player asked to leave the game.
func ProcessIntent(g *state.Game, intent engineinput.Intent) bool {
	switch intent.Action {
	case engineinput.ActionNone:
		return false

	case engineinput.ActionStart:
		if g.Status != state.StatusPlaying {
			seed := int64(0)
			if g.Status == state.StatusTitle {
				seed = g.ConfiguredSeed
			}
			StartRun(g, seed)
		}
		return false

	case engineinput.ActionQuit:
		if g.Status == state.StatusPlaying {
			g.Status = state.StatusTitle
			log.Info("run abandoned", "floor", g.Floor.Number, "score", g.Score)
			return false
		}
		return true

	case engineinput.ActionDumpFloor:
		if g.Floor == nil {
			return false
		}
		path, err := devtools.DumpFloorToFile(g.Floor, g.LevelSeed)
		if err != nil {
			log.Error("floor dump failed", "err", err)
			logMessage(g, "DENIED{DUMP_FAILED}")
		} else {
			logMessage(g, "GT{DUMP_WRITTEN} ITEM{%s}", path)
		}
		return false
	}
	return false
}

package gameplay

import (
	"time"

	"pixelshooter/pkg/engine/input"
	"pixelshooter/pkg/game/state"
)

// Update advances the game one tick: movement, shooting, bullets, enemies,
// then the traversal check. It returns the transition performed, if any.
func Update(g *state.Game, held *input.Held, now time.Time) Transition {
	if !g.Running() || g.Floor == nil {
		return Transition{}
	}

	MovePlayer(g, held)
	if held.Has(input.ActionFire) {
		Shoot(g, now)
	}
	UpdateBullets(g)
	UpdateEnemies(g)

	if !g.Running() {
		return Transition{}
	}
	return Traverse(g)
}

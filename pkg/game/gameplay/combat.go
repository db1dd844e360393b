package gameplay

import (
	"time"

	"github.com/charmbracelet/log"

	"pixelshooter/pkg/engine/physics"
	"pixelshooter/pkg/game/entities"
	"pixelshooter/pkg/game/state"
)

// Combat tuning
const (
	ShotCooldown = 300 * time.Millisecond

	// ContactDamage is taken per tick while an enemy touches the player.
	ContactDamage = 0.5
	ContactPush   = 0.8

	// CrowdPush separates overlapping enemies each tick.
	CrowdPush = 0.3
)

// Shoot fires a bullet along the player's aim if the cooldown has passed.
func Shoot(g *state.Game, now time.Time) bool {
	if now.Sub(g.LastShot) <= ShotCooldown {
		return false
	}
	aim := g.Player.Aim()
	if aim.IsZero() {
		return false
	}
	g.Bullets = append(g.Bullets, entities.NewBullet(g.Player.Position, aim))
	g.LastShot = now
	return true
}

// UpdateBullets moves every bullet, drops the ones that left the room and
// applies hits. Dead enemies are removed from their room and scored.
func UpdateBullets(g *state.Game) {
	room := g.CurrentRoom()
	if room == nil {
		return
	}

	kept := g.Bullets[:0]
	for _, b := range g.Bullets {
		b.Step()
		if !b.Inside(room.Width, room.Height) {
			continue
		}
		hit := false
		for _, e := range room.Enemies {
			if e.IsDead() {
				continue
			}
			if physics.CirclesOverlap(b.Position, entities.BulletSize/2, e.Position, e.Radius()) {
				e.Damage(b.Damage)
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(g.Bullets); i++ {
		g.Bullets[i] = nil
	}
	g.Bullets = kept

	for _, e := range room.RemoveDead() {
		g.Score++
		if e.IsBoss {
			g.Floor.BossDefeated = true
			room.HasStairs = true
			log.Info("boss defeated", "floor", g.Floor.Number, "room", room.Index, "score", g.Score)
			logMessage(g, "BOSS{BOSS_DEFEATED}")
		}
	}
}

// UpdateEnemies moves enemies towards the player, applies contact damage and
// keeps them from stacking. Everyone is kept inside the room afterwards.
func UpdateEnemies(g *state.Game) {
	room := g.CurrentRoom()
	if room == nil {
		return
	}
	p := g.Player

	for i, e := range room.Enemies {
		e.Chase(p.Position)
		if physics.CirclesOverlap(p.Position, entities.PlayerRadius, e.Position, e.Radius()) {
			p.Damage(ContactDamage)
			physics.PushApart(&p.Position, &e.Position, ContactPush)
		}
		for _, other := range room.Enemies[i+1:] {
			if physics.CirclesOverlap(e.Position, e.Radius(), other.Position, other.Radius()) {
				physics.PushApart(&e.Position, &other.Position, CrowdPush)
			}
		}
	}
	for _, e := range room.Enemies {
		clampToRoom(&e.Position, e.Radius(), room)
	}
	clampToRoom(&p.Position, entities.PlayerRadius, room)

	if p.IsDead() {
		g.Status = state.StatusGameOver
		log.Info("game over", "floor", g.Floor.Number, "room", room.Index, "score", g.Score)
		logMessage(g, "DENIED{GAME_OVER}")
	}
}

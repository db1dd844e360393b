package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixelshooter/pkg/engine/physics"
	"pixelshooter/pkg/engine/world"
	"pixelshooter/pkg/game/entities"
	"pixelshooter/pkg/game/gameplay"
	"pixelshooter/pkg/game/minimap"
	"pixelshooter/pkg/game/renderer"
	"pixelshooter/pkg/game/state"
	gameworld "pixelshooter/pkg/game/world"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g := e.game
	if g.Floor == nil {
		e.drawBanner(screen, g)
		return
	}

	room := g.Floor.Current()
	cam := gameplay.CameraOffset(room, g.Player.Position, float64(e.screenWidth), float64(e.screenHeight))

	e.drawRoom(screen, g.Floor, cam)
	e.drawEnemies(screen, room, cam)
	e.drawBullets(screen, g, cam)
	drawCircle(screen, g.Player.Position, entities.PlayerRadius, cam, colorPlayer)

	if e.fadeFrames > 0 {
		fade := colorFade
		fade.A = uint8(255 * e.fadeFrames / roomFadeFrames)
		vector.DrawFilledRect(screen, 0, 0, float32(e.screenWidth), float32(e.screenHeight), fade, false)
	}

	e.drawMiniMap(screen, g.Floor)
	e.drawHUD(screen, g)
	e.drawMessages(screen, g)
	e.drawBanner(screen, g)
	if e.showHelp {
		e.drawHelp(screen)
	}
}

// drawCircle draws a filled circle at a room position
func drawCircle(screen *ebiten.Image, pos physics.Vec2, r float64, cam physics.Vec2, col color.Color) {
	vector.DrawFilledCircle(screen, float32(pos.X-cam.X), float32(pos.Y-cam.Y), float32(r), col, true)
}

// drawRoom draws the floor, walls, doors and stairs of the current room.
// Linked doors are drawn open; listed doors with nothing behind them are sealed.
func (e *EbitenRenderer) drawRoom(screen *ebiten.Image, f *gameworld.Floor, cam physics.Vec2) {
	room := f.Current()
	x0 := float32(-cam.X)
	y0 := float32(-cam.Y)
	w := float32(room.Width)
	h := float32(room.Height)

	vector.DrawFilledRect(screen, x0, y0, w, h, colorRoomFloor, false)
	vector.StrokeRect(screen, x0, y0, w, h, 4, colorWall, false)

	const span = 2 * gameplay.DoorSize
	const depth = gameplay.DoorZoneDepth
	for _, d := range f.DoorWalls(f.CurrentRoom).List() {
		col := colorDoorSealed
		if f.Link(f.CurrentRoom, d) != gameworld.NoRoom {
			col = colorDoorOpen
		}
		switch d {
		case world.Top:
			vector.DrawFilledRect(screen, x0+w/2-span/2, y0, span, depth, col, false)
		case world.Bottom:
			vector.DrawFilledRect(screen, x0+w/2-span/2, y0+h-depth, span, depth, col, false)
		case world.Left:
			vector.DrawFilledRect(screen, x0, y0+h/2-span/2, depth, span, col, false)
		case world.Right:
			vector.DrawFilledRect(screen, x0+w-depth, y0+h/2-span/2, depth, span, col, false)
		}
	}

	if room.HasStairs {
		c := room.Center()
		vector.StrokeCircle(screen, float32(c.X-cam.X), float32(c.Y-cam.Y), gameplay.StairsRadius, 3, colorStairs, true)
		vector.DrawFilledCircle(screen, float32(c.X-cam.X), float32(c.Y-cam.Y), gameplay.StairsRadius/3, colorStairs, true)
	}
}

// drawEnemies draws every enemy in the room with a health bar above it
func (e *EbitenRenderer) drawEnemies(screen *ebiten.Image, room *gameworld.Room, cam physics.Vec2) {
	for _, en := range room.Enemies {
		col := colorEnemy
		if en.IsBoss {
			col = colorBoss
		}
		drawCircle(screen, en.Position, en.Radius(), cam, col)

		barW := float32(healthBarW)
		if en.IsBoss {
			barW *= 2
		}
		x := float32(en.Position.X-cam.X) - barW/2
		y := float32(en.Position.Y-cam.Y-en.Radius()) - healthBarH - 3
		vector.DrawFilledRect(screen, x, y, barW, healthBarH, colorHealthBack, false)
		vector.DrawFilledRect(screen, x, y, barW*float32(en.HealthFraction()), healthBarH, colorHealthFront, false)
	}
}

// drawBullets draws the player's shots
func (e *EbitenRenderer) drawBullets(screen *ebiten.Image, g *state.Game, cam physics.Vec2) {
	for _, b := range g.Bullets {
		drawCircle(screen, b.Position, entities.BulletSize/2, cam, colorBullet)
	}
}

// drawMiniMap draws the floor projection in the top-right corner
func (e *EbitenRenderer) drawMiniMap(screen *ebiten.Image, f *gameworld.Floor) {
	layout := minimap.LayoutFloor(f)
	lo, hi := minimap.Bounds(layout)

	const pitch = miniCell + miniGap
	w := float32(hi.DX-lo.DX+1)*pitch - miniGap
	x0 := float32(e.screenWidth) - w - miniMargin
	y0 := float32(miniMargin)

	cellPos := func(o minimap.Offset) (float32, float32) {
		return x0 + float32(o.DX-lo.DX)*pitch, y0 + float32(o.DY-lo.DY)*pitch
	}

	// Links first so rooms draw over them.
	for room, o := range layout {
		x, y := cellPos(o)
		for _, d := range []world.Direction{world.Right, world.Bottom} {
			next := f.Link(room, d)
			if next == gameworld.NoRoom {
				continue
			}
			nx, ny := cellPos(layout[next])
			vector.StrokeLine(screen, x+miniCell/2, y+miniCell/2, nx+miniCell/2, ny+miniCell/2, 2, colorMiniLink, false)
		}
	}

	for room, o := range layout {
		r := f.Room(room)
		col := colorMiniUnvisited
		if r.Visited {
			col = colorMiniVisited
		}
		if r.IsBossRoom && r.Visited {
			col = colorMiniBoss
		}
		if room == f.CurrentRoom {
			col = colorMiniCurrent
		}
		x, y := cellPos(o)
		vector.DrawFilledRect(screen, x, y, miniCell, miniCell, col, false)
		vector.StrokeRect(screen, x, y, miniCell, miniCell, 1, colorBackground, false)
		if r.HasStairs {
			vector.DrawFilledCircle(screen, x+miniCell/2, y+miniCell/2, 3, colorStairs, true)
		}
	}
}

// drawHUD draws the status lines in the top-left corner
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, g *state.Game) {
	lines := renderer.HUDLines(g)
	vector.DrawFilledRect(screen, hudMargin/2, hudMargin/2, 260, float32(len(lines)*lineSpacing+hudMargin), colorPanel, false)
	for i, line := range lines {
		e.drawColoredText(screen, line, hudMargin, float64(hudMargin+i*lineSpacing), colorText)
	}
}

// drawMessages draws the message log in the bottom-left corner, newest last
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, g *state.Game) {
	y := float64(e.screenHeight - hudMargin - len(g.Messages)*lineSpacing)
	for _, msg := range g.Messages {
		e.drawMarkup(screen, msg, hudMargin, y)
		y += lineSpacing
	}
}

// drawHelp lists the key bindings in a panel under the HUD
func (e *EbitenRenderer) drawHelp(screen *ebiten.Image) {
	lines := renderer.BindingLines(helpActions...)
	top := float64(hudMargin + 5*lineSpacing)
	vector.DrawFilledRect(screen, hudMargin/2, float32(top)-hudMargin/2, 320, float32(len(lines)*lineSpacing+hudMargin), colorPanel, false)
	for i, line := range lines {
		e.drawColoredText(screen, line, hudMargin, top+float64(i*lineSpacing), colorSubtle)
	}
}

// drawBanner overlays the title, game over or win text when not playing
func (e *EbitenRenderer) drawBanner(screen *ebiten.Image, g *state.Game) {
	banner := renderer.StatusBanner(g)
	if banner == "" {
		return
	}
	if g.Floor != nil {
		vector.DrawFilledRect(screen, 0, 0, float32(e.screenWidth), float32(e.screenHeight), colorPanel, false)
	}
	col := colorAction
	if g.Status == state.StatusGameOver {
		col = colorDenied
	}
	e.drawCentredTitle(screen, banner, float64(e.screenHeight)/2-titleFontSize, col)
	if g.Floor != nil && g.Status == state.StatusTitle {
		return
	}
	e.drawCentredTitle(screen, renderer.FloorBanner(g), float64(e.screenHeight)/2+titleFontSize, colorSubtle)
}

package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"pixelshooter/pkg/game/renderer"
)

// segmentColor returns the draw colour for a markup style
func segmentColor(style renderer.TextStyle) color.Color {
	switch style {
	case renderer.StyleAction:
		return colorAction
	case renderer.StyleItem:
		return colorItem
	case renderer.StyleDenied, renderer.StyleBoss:
		return colorDenied
	case renderer.StyleSubtle, renderer.StyleRoom:
		return colorSubtle
	case renderer.StyleStairs:
		return colorStairs
	case renderer.StyleDoor:
		return colorDoorOpen
	case renderer.StylePlayer:
		return colorPlayer
	default:
		return colorText
	}
}

// drawColoredText draws plain text with a specific color using the UI font
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y float64, col color.Color) {
	face := e.getSansFontFace()
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawMarkup draws a message with markup, each segment in its own colour
func (e *EbitenRenderer) drawMarkup(screen *ebiten.Image, msg string, x, y float64) {
	face := e.getSansFontFace()
	for _, seg := range renderer.ParseMarkup(msg) {
		e.drawColoredText(screen, seg.Text, x, y, segmentColor(seg.Style))
		w, _ := text.Measure(seg.Text, face, 0)
		x += w
	}
}

// drawCentredTitle draws a bold line centred horizontally at y
func (e *EbitenRenderer) drawCentredTitle(screen *ebiten.Image, str string, y float64, col color.Color) {
	face := e.getTitleFontFace()
	w, _ := text.Measure(str, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(e.screenWidth)-w)/2, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "pixelshooter/pkg/engine/input"
	"pixelshooter/pkg/game/gameplay"
	"pixelshooter/pkg/game/renderer"
	"pixelshooter/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer. It also drives the
// simulation: Update runs one game tick at Ebiten's fixed 60 TPS.
type EbitenRenderer struct {
	// Logical screen size; the window may be scaled
	screenWidth  int
	screenHeight int
	scale        float64

	// Font sources for text rendering
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource
	cachedSansFace     *text.GoTextFace
	cachedTitleFace    *text.GoTextFace

	game *state.Game
	held *engineinput.Held

	// Frames left in the fade-in after a room or floor change
	fadeFrames int

	showHelp bool

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// New creates a new Ebiten renderer for g. scale multiplies the window size.
func New(g *state.Game, scale float64) *EbitenRenderer {
	if scale <= 0 {
		scale = 1
	}
	return &EbitenRenderer{
		screenWidth:  gameplay.ViewportWidth,
		screenHeight: gameplay.ViewportHeight,
		scale:        scale,
		game:         g,
		held:         engineinput.NewHeld(),
	}
}

// Init sets up the window and loads fonts
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(int(float64(e.screenWidth)*e.scale), int(float64(e.screenHeight)*e.scale))
	ebiten.SetWindowTitle("Pixel Shooter")
	ebiten.SetTPS(60)
	if err := e.loadFonts(); err != nil {
		panic(err)
	}
}

// Clear is a no-op; Ebiten redraws the whole screen every frame
func (e *EbitenRenderer) Clear() {}

// RenderFrame switches the game being drawn
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.game = g
}

// StyleText returns the text unchanged; styling happens when segments are drawn
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText formats a message and keeps its markup for drawing
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.ApplyMarkup(msg, args...)
}

// ShowMessage adds a message to the game's log panel
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.game.AddMessage(msg)
}

// GetViewportSize returns the logical screen size in pixels (rows, cols)
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	return e.screenHeight, e.screenWidth
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.screenWidth, e.screenHeight
}

// Run starts the Ebiten game loop and blocks until the window closes
func (e *EbitenRenderer) Run() error {
	e.Init()
	return ebiten.RunGame(e)
}

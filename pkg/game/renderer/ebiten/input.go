package ebiten

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "pixelshooter/pkg/engine/input"
	"pixelshooter/pkg/game/gameplay"
)

// heldKeys maps physical keys to the raw codes of the binding layer.
// Ebiten reports physical keys, so one code per key covers every layout.
var heldKeys = map[ebiten.Key]string{
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeySpace:      "space",
}

// pressedKeys maps keys that trigger once per press.
var pressedKeys = map[ebiten.Key]string{
	ebiten.KeyEnter:   "enter",
	ebiten.KeyKPEnter: "enter",
	ebiten.KeyEscape:  "escape",
	ebiten.KeyQ:       "q",
	ebiten.KeyF9:      "f9",
	ebiten.KeyH:       "h",
}

// helpActions are listed by the help overlay, in order
var helpActions = []engineinput.Action{
	engineinput.ActionMoveUp,
	engineinput.ActionMoveDown,
	engineinput.ActionMoveLeft,
	engineinput.ActionMoveRight,
	engineinput.ActionFire,
	engineinput.ActionStart,
	engineinput.ActionDumpFloor,
	engineinput.ActionHelp,
	engineinput.ActionQuit,
}

// Update handles input and advances the game one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Info("main window opened", "width", w, "height", h)
	}

	for _, intent := range e.checkInput() {
		if intent.Action == engineinput.ActionHelp {
			e.showHelp = !e.showHelp
			continue
		}
		if gameplay.ProcessIntent(e.game, intent) {
			return ebiten.Termination
		}
	}

	e.pollHeld()
	tr := gameplay.Update(e.game, e.held, time.Now())
	if tr.Kind != gameplay.TransitionNone {
		e.fadeFrames = roomFadeFrames
	}
	if e.fadeFrames > 0 {
		e.fadeFrames--
	}
	return nil
}

// checkInput returns the one-shot intents for keys pressed this tick
func (e *EbitenRenderer) checkInput() []engineinput.Intent {
	var intents []engineinput.Intent
	for key, code := range pressedKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		intents = append(intents, engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: time.Now(),
		})))
	}
	return intents
}

// pollHeld rebuilds the held action set from the keyboard state
func (e *EbitenRenderer) pollHeld() {
	e.held.Reset()
	for key, code := range heldKeys {
		if ebiten.IsKeyPressed(key) {
			e.held.PressCode(code)
		}
	}
}

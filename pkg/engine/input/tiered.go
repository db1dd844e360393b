package input

import (
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Combat
	ActionFire

	// Meta / UI
	ActionStart     // Start or restart from the title, game over or win screens
	ActionQuit      // Leave the game
	ActionNewFloor  // Regenerate the current floor (explorer only)
	ActionDumpFloor // Write a floor dump (F9)
	ActionHelp      // Show or hide the key bindings
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "space").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Held keys are sampled every tick by the renderer, so there is nothing to
// debounce yet; the type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (WASD, arrows, and the same physical keys on a Russian layout)
	"w":           ActionMoveUp,
	"ц":           ActionMoveUp,
	"arrow_up":    ActionMoveUp,
	"s":           ActionMoveDown,
	"ы":           ActionMoveDown,
	"arrow_down":  ActionMoveDown,
	"a":           ActionMoveLeft,
	"ф":           ActionMoveLeft,
	"arrow_left":  ActionMoveLeft,
	"d":           ActionMoveRight,
	"в":           ActionMoveRight,
	"arrow_right": ActionMoveRight,

	// Shooting
	"space": ActionFire,
	" ":     ActionFire,

	// Meta
	"enter":  ActionStart,
	"q":      ActionQuit,
	"й":      ActionQuit,
	"escape": ActionQuit,
	"n":      ActionNewFloor,
	"т":      ActionNewFloor,
	"f9":     ActionDumpFloor,
	"h":      ActionHelp,
	"р":      ActionHelp,
	"?":      ActionHelp,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionForCode is a shortcut through all layers for a single code.
func ActionForCode(code string) Action {
	return MapToIntent(NewDebouncedInput(RawInput{Code: code})).Action
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	case ActionNewFloor:
		return "New Floor"
	case ActionDumpFloor:
		return "Dump Floor"
	case ActionHelp:
		return "Help"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between runs.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// Held is the set of actions whose keys are currently held down. It is
// rebuilt by the renderer every tick and read synchronously by the update.
type Held struct {
	set mapset.Set[Action]
}

// NewHeld creates an empty held set, optionally pre-populated.
func NewHeld(actions ...Action) *Held {
	h := &Held{set: mapset.New[Action]()}
	for _, a := range actions {
		h.Press(a)
	}
	return h
}

// Press marks an action as held.
func (h *Held) Press(a Action) {
	if a == ActionNone {
		return
	}
	h.set.Put(a)
}

// PressCode marks the action bound to code as held.
func (h *Held) PressCode(code string) {
	h.Press(ActionForCode(code))
}

// Release marks an action as no longer held.
func (h *Held) Release(a Action) {
	h.set.Remove(a)
}

// Has reports whether the action is held.
func (h *Held) Has(a Action) bool {
	if h == nil {
		return false
	}
	return h.set.Has(a)
}

// Reset releases everything.
func (h *Held) Reset() {
	h.set = mapset.New[Action]()
}

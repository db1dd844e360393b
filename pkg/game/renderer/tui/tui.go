// Package tui renders a floor as a coloured text map: the minimap projection
// around the current room, an adjacency table and the HUD.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	engineinput "pixelshooter/pkg/engine/input"
	"pixelshooter/pkg/engine/terminal"
	"pixelshooter/pkg/engine/world"
	"pixelshooter/pkg/game/minimap"
	"pixelshooter/pkg/game/renderer"
	"pixelshooter/pkg/game/state"
	gameworld "pixelshooter/pkg/game/world"
)

// Icon constants for the floor map
const (
	PlayerIcon     = "@"
	IconBoss       = "B"
	IconStairs     = "▼"
	IconUnvisited  = "●"
	IconVisited    = "○"
	IconVoid       = " "
	LinkHorizontal = "─"
	LinkVertical   = "│"
)

// Map cell geometry: each room takes cellWidth columns and the gap between
// rooms one column or row.
const (
	cellWidth  = 3
	cellPitchX = cellWidth + 1
	cellPitchY = 2
)

// Viewport fallbacks when the writer is not a terminal
const (
	defaultRows = 24
	defaultCols = 80
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	// rows and cols override the terminal size (SSH sessions report their own)
	rows int
	cols int

	colorRoom   color.Style
	colorAction color.Style
	colorItem   color.Style
	colorDenied color.Style
	colorBoss   color.Style
	colorSubtle color.Style
	colorPlayer color.Style
	colorStairs color.Style
	colorDoor   color.Style
}

// New creates a new TUI renderer writing to out
func New(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out}
}

// SetSize fixes the viewport size instead of asking the local terminal
func (t *TUIRenderer) SetSize(rows, cols int) {
	t.rows = rows
	t.cols = cols
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgGray}
	t.colorAction = color.Style{color.FgMagenta, color.OpBold}
	t.colorItem = color.Style{color.FgGreen, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorBoss = color.Style{color.FgRed}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorStairs = color.Style{color.FgCyan, color.OpBold}
	t.colorDoor = color.Style{color.FgYellow}
}

// Clear clears the screen with an ANSI sequence so it also works over SSH
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, "\033[H\033[2J")
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleBoss:
		return t.colorBoss.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleStairs:
		return t.colorStairs.Sprint(text)
	case renderer.StyleDoor:
		return t.colorDoor.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	var sb strings.Builder
	for _, seg := range renderer.ParseMarkup(renderer.ApplyMarkup(msg, args...)) {
		sb.WriteString(t.StyleText(seg.Text, seg.Style))
	}
	return sb.String()
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.FormatText("%s", msg))
}

// GetViewportSize returns the viewport dimensions
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	if t.rows > 0 && t.cols > 0 {
		return t.rows, t.cols
	}
	if !terminal.IsTerminal() {
		return defaultRows, defaultCols
	}
	cols, rows = terminal.GetSize()
	return rows, cols
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	if banner := renderer.StatusBanner(g); banner != "" && g.Status != state.StatusPlaying && g.Floor == nil {
		fmt.Fprintf(t.out, "%s\n", t.colorAction.Sprint(banner))
		return
	}
	if g.Floor == nil {
		return
	}

	for _, line := range renderer.HUDLines(g) {
		fmt.Fprintln(t.out, t.colorAction.Sprint(line))
	}
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(renderer.FloorBanner(g)))
	fmt.Fprintln(t.out)

	t.printMap(g.Floor)
	fmt.Fprintln(t.out)
	t.printLinks(g.Floor)
	t.printMessagesPane(g)

	if banner := renderer.StatusBanner(g); banner != "" {
		fmt.Fprintf(t.out, "\n%s\n", t.colorDenied.Sprint(banner))
	}
}

// RenderFloor draws one floor on its own, without the HUD
func (t *TUIRenderer) RenderFloor(f *gameworld.Floor) {
	t.printMap(f)
	fmt.Fprintln(t.out)
	t.printLinks(f)
}

// roomIcon returns the styled icon for a room on the map
func (t *TUIRenderer) roomIcon(f *gameworld.Floor, i int) string {
	room := f.Room(i)
	switch {
	case i == f.CurrentRoom:
		return t.colorPlayer.Sprint(PlayerIcon)
	case room.HasStairs:
		return t.colorStairs.Sprint(IconStairs)
	case room.IsBossRoom:
		return t.colorBoss.Sprint(IconBoss)
	case room.Visited:
		return t.colorRoom.Sprint(IconVisited)
	default:
		return t.colorRoom.Sprint(IconUnvisited)
	}
}

// printMap draws the minimap projection. A link is drawn only between rooms
// that the projection placed side by side.
func (t *TUIRenderer) printMap(f *gameworld.Floor) {
	layout := minimap.LayoutFloor(f)
	lo, hi := minimap.Bounds(layout)

	width := (hi.DX-lo.DX)*cellPitchX + cellWidth
	height := (hi.DY-lo.DY)*cellPitchY + 1
	canvas := make([][]string, height)
	for y := range canvas {
		canvas[y] = make([]string, width)
		for x := range canvas[y] {
			canvas[y][x] = IconVoid
		}
	}

	// Lowest index wins a shared cell so the output is stable.
	placed := make(map[minimap.Offset]int, len(layout))
	for room, o := range layout {
		if prev, ok := placed[o]; !ok || room < prev {
			placed[o] = room
		}
	}

	for o, room := range placed {
		x := (o.DX-lo.DX)*cellPitchX + 1
		y := (o.DY - lo.DY) * cellPitchY
		canvas[y][x-1] = t.colorRoom.Sprint("[")
		canvas[y][x] = t.roomIcon(f, room)
		canvas[y][x+1] = t.colorRoom.Sprint("]")

		for _, d := range []world.Direction{world.Right, world.Bottom} {
			next := f.Link(room, d)
			if next == gameworld.NoRoom {
				continue
			}
			dx, dy := d.Delta()
			if layout[next] != (minimap.Offset{DX: o.DX + dx, DY: o.DY + dy}) {
				continue
			}
			if d == world.Right {
				canvas[y][x+2] = t.colorDoor.Sprint(LinkHorizontal)
			} else {
				canvas[y+1][x] = t.colorDoor.Sprint(LinkVertical)
			}
		}
	}

	for _, row := range canvas {
		fmt.Fprintln(t.out, strings.TrimRight(strings.Join(row, ""), " "))
	}
}

// printLinks writes one line per room: its template, doors and where each wall leads
func (t *TUIRenderer) printLinks(f *gameworld.Floor) {
	for i, room := range f.Rooms {
		var links []string
		for _, d := range world.AllDirections() {
			j := f.Link(i, d)
			if j == gameworld.NoRoom {
				continue
			}
			links = append(links, fmt.Sprintf("%s→%d", d, j))
		}
		marker := "  "
		if i == f.CurrentRoom {
			marker = t.colorPlayer.Sprint(PlayerIcon) + " "
		}
		fmt.Fprintf(t.out, "%s%s %-9s %s %s\n",
			marker,
			t.colorAction.Sprintf("%d", i),
			room.Template.Name,
			t.colorSubtle.Sprintf("[%s]", room.Doors),
			t.colorDoor.Sprint(strings.Join(links, " ")),
		)
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	_, width := t.GetViewportSize()

	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))
	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("NO_MESSAGES")))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText("%s", msg))
		}
	}
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

// ShowBindings lists the key bindings for the given actions
func (t *TUIRenderer) ShowBindings(actions ...engineinput.Action) {
	for _, line := range renderer.BindingLines(actions...) {
		fmt.Fprintf(t.out, "  %s\n", t.colorSubtle.Sprint(line))
	}
}

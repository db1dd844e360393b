package tui

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/gookit/color"

	engineinput "pixelshooter/pkg/engine/input"
	"pixelshooter/pkg/engine/world"
	"pixelshooter/pkg/game/catalog"
	"pixelshooter/pkg/game/generator"
	"pixelshooter/pkg/game/state"
	gameworld "pixelshooter/pkg/game/world"
)

// newPlain creates a renderer with colours off so output can be compared.
func newPlain(t *testing.T) (*TUIRenderer, *bytes.Buffer) {
	t.Helper()
	color.Disable()
	t.Cleanup(func() { color.Enable = true })
	var buf bytes.Buffer
	r := New(&buf)
	r.Init()
	r.SetSize(24, 40)
	return r, &buf
}

func TestPrintMap_TwoRoomsSideBySide(t *testing.T) {
	r, buf := newPlain(t)
	tpl := &catalog.Template{Name: "hall", Width: 800, Height: 600, Doors: world.NewDoors(world.Left, world.Right)}
	f := gameworld.NewFloor(1, []*gameworld.Room{gameworld.NewRoom(0, tpl), gameworld.NewRoom(1, tpl)})
	f.Connect(0, world.Right, 1)

	r.printMap(f)
	if got := strings.TrimSpace(buf.String()); got != "[@]─["+IconUnvisited+"]" {
		t.Errorf("printMap = %q", got)
	}
}

func TestRenderFloor_EveryRoomListed(t *testing.T) {
	r, buf := newPlain(t)
	f := generator.NewBuilder(nil, rand.New(rand.NewSource(9))).Generate(1)
	r.RenderFloor(f)

	out := buf.String()
	for _, room := range f.Rooms {
		if !strings.Contains(out, room.Template.Name) {
			t.Errorf("room template %q missing from output", room.Template.Name)
		}
	}
}

func TestRenderFrame_Title(t *testing.T) {
	r, buf := newPlain(t)
	r.RenderFrame(state.NewGame())
	if strings.TrimSpace(buf.String()) == "" {
		t.Error("title screen rendered nothing")
	}
}

func TestShowBindings_OneLinePerAction(t *testing.T) {
	r, buf := newPlain(t)
	r.ShowBindings(engineinput.ActionMoveUp, engineinput.ActionQuit)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("ShowBindings wrote %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "Move Up:") || !strings.Contains(lines[0], "w") {
		t.Errorf("first line = %q", lines[0])
	}
}

package input

import (
	"bufio"
	"strings"
	"testing"
)

func readAll(t *testing.T, s string) []string {
	t.Helper()
	r := bufio.NewReader(strings.NewReader(s))
	var codes []string
	for {
		code, err := ReadCode(r)
		if err != nil {
			return codes
		}
		codes = append(codes, code)
	}
}

func TestReadCode_ArrowKeys(t *testing.T) {
	codes := readAll(t, "\x1b[A\x1b[B\x1bOC\x1b[D")
	want := []string{"arrow_up", "arrow_down", "arrow_right", "arrow_left"}
	if len(codes) != len(want) {
		t.Fatalf("ReadCode gave %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("code %d = %q, want %q", i, codes[i], want[i])
		}
	}
}

func TestReadCode_CyrillicLayout(t *testing.T) {
	codes := readAll(t, "ЦфЫв")
	want := []string{"ц", "ф", "ы", "в"}
	for i := range want {
		if i >= len(codes) || codes[i] != want[i] {
			t.Fatalf("ReadCode gave %v, want %v", codes, want)
		}
	}
	for _, c := range codes {
		if ActionForCode(c) == ActionNone {
			t.Errorf("Cyrillic code %q has no binding", c)
		}
	}
}

func TestReadCode_SpecialKeys(t *testing.T) {
	codes := readAll(t, "W \r")
	want := []string{"w", "space", "enter"}
	for i := range want {
		if i >= len(codes) || codes[i] != want[i] {
			t.Fatalf("ReadCode gave %v, want %v", codes, want)
		}
	}
}

func TestMapToIntent_MovementLayouts(t *testing.T) {
	cases := map[string]Action{
		"w": ActionMoveUp, "ц": ActionMoveUp, "arrow_up": ActionMoveUp,
		"s": ActionMoveDown, "ы": ActionMoveDown,
		"a": ActionMoveLeft, "ф": ActionMoveLeft,
		"d": ActionMoveRight, "в": ActionMoveRight,
		"space": ActionFire,
	}
	for code, want := range cases {
		if got := ActionForCode(code); got != want {
			t.Errorf("ActionForCode(%q) = %s, want %s", code, ActionName(got), ActionName(want))
		}
	}
	if ActionForCode("zz") != ActionNone {
		t.Error("unbound code should map to ActionNone")
	}
}

func TestHeld_PressRelease(t *testing.T) {
	h := NewHeld(ActionFire)
	h.PressCode("w")
	if !h.Has(ActionFire) || !h.Has(ActionMoveUp) {
		t.Error("held set missing pressed actions")
	}
	h.Release(ActionFire)
	if h.Has(ActionFire) {
		t.Error("released action still held")
	}
	h.Reset()
	if h.Has(ActionMoveUp) {
		t.Error("Reset did not clear held actions")
	}
	var none *Held
	if none.Has(ActionMoveUp) {
		t.Error("nil Held should hold nothing")
	}
}

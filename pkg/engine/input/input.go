package input

import (
	"bufio"
	"unicode"
	"unicode/utf8"
)

// ReadCode reads one key press from a terminal stream in raw mode and returns
// its binding code: arrow keys become "arrow_up" etc., Enter "enter", Esc
// "escape", space "space", and printable runes (including Cyrillic) are
// returned lower-cased. An empty code means the bytes were not a key we know.
func ReadCode(r *bufio.Reader) (string, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch b1 {
	case 0x1b:
		return readEscape(r)
	case '\r', '\n':
		return "enter", nil
	case ' ':
		return "space", nil
	case 3: // Ctrl+C
		return "q", nil
	}

	if b1 < utf8.RuneSelf {
		if b1 >= 32 && b1 < 127 {
			return string(unicode.ToLower(rune(b1))), nil
		}
		return "", nil
	}

	if err := r.UnreadByte(); err != nil {
		return "", err
	}
	ch, _, err := r.ReadRune()
	if err != nil {
		return "", err
	}
	if ch == utf8.RuneError || !unicode.IsPrint(ch) {
		return "", nil
	}
	return string(unicode.ToLower(ch)), nil
}

// readEscape decodes the rest of an escape sequence. A lone ESC with nothing
// buffered behind it is the Escape key.
func readEscape(r *bufio.Reader) (string, error) {
	if r.Buffered() == 0 {
		return "escape", nil
	}
	b2, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "", nil
	}
	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}

// Package renderer defines the rendering backend interface and the message
// markup shared by the terminal and graphical renderers.
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// markupRegex matches FUNCTION{content}; FUNCTION may contain underscores.
var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// Segment is a run of message text drawn in one style
type Segment struct {
	Text  string
	Style TextStyle
}

// ApplyMarkup formats a message for the message log. Markup such as
// ACTION{3} or GT{KEY} is kept for the renderer to interpret at draw time.
func ApplyMarkup(msg string, a ...any) string {
	if len(a) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, a...)
}

// styleFor maps a markup function to a text style
func styleFor(function string) TextStyle {
	switch function {
	case "ROOM":
		return StyleRoom
	case "ACTION":
		return StyleAction
	case "ITEM":
		return StyleItem
	case "DENIED":
		return StyleDenied
	case "BOSS":
		return StyleBoss
	case "SUBTLE":
		return StyleSubtle
	case "STAIRS":
		return StyleStairs
	case "DOOR":
		return StyleDoor
	default:
		return StyleNormal
	}
}

// ParseMarkup splits a message into styled segments. Every operand is passed
// through the translation catalog; GT{} operands are translated and drawn plain.
func ParseMarkup(msg string) []Segment {
	var segments []Segment
	lastIndex := 0

	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, Segment{Text: msg[lastIndex:match[0]], Style: StyleNormal})
		}

		function := msg[match[2]:match[3]]
		content := dynamicGet(msg[match[4]:match[5]])
		segments = append(segments, Segment{Text: content, Style: styleFor(function)})

		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, Segment{Text: msg[lastIndex:], Style: StyleNormal})
	}
	return segments
}

// StripMarkup returns the message as plain translated text
func StripMarkup(msg string) string {
	var sb strings.Builder
	for _, seg := range ParseMarkup(msg) {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

package views

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/tview"
)

// sanitizeForTerminal removes codepoints that tcell renders badly or that
// would reach the terminal raw: skin tone modifiers and the zero width joiner
// that build multi-codepoint emoji, variation selectors, and C0/C1 control
// characters other than newline and tab. A thumbs-up with a skin tone becomes
// a plain thumbs-up, two cells wide.
func sanitizeForTerminal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != utf8.RuneError && !isProblematicRune(r) {
			b.WriteRune(r)
		}
		i += size
	}
	return b.String()
}

func isProblematicRune(r rune) bool {
	switch {
	case r >= 0x1F3FB && r <= 0x1F3FF:
		return true
	case r == 0x200D:
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r >= 0xE0100 && r <= 0xE01EF:
		return true
	case r == '\n' || r == '\t':
		return false
	case r < 0x20 || (r >= 0x7F && r <= 0x9F):
		return true
	default:
		return false
	}
}

// display prepares user or seed text for a dynamic-color TextView.
func display(s string) string {
	return tview.Escape(sanitizeForTerminal(s))
}

// singleLine flattens s for table cells.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

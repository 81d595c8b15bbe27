package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText word-wraps text to width display cells, keeping at most maxLines
// lines and marking the cut with "...".
func wrapText(text string, width, maxLines int) string {
	if runewidth.StringWidth(text) <= width {
		return text
	}

	var lines []string
	var current string

	for _, word := range strings.Fields(text) {
		if runewidth.StringWidth(word) > width {
			word = runewidth.Truncate(word, width, "…")
		}
		switch {
		case current == "":
			current = word
		case runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		last := lines[maxLines-1]
		lines[maxLines-1] = runewidth.Truncate(last, width-3, "") + "..."
	}

	return strings.Join(lines, "\n")
}

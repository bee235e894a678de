// Package render lays out sound names, rows and times for the browser.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// cleanRune drops runes that would corrupt the terminal. Non-breaking
// spaces become plain spaces.
func cleanRune(r rune) rune {
	switch {
	case r == '\u00a0':
		return ' '
	case r == utf8.RuneError, r != '\t' && unicode.IsControl(r):
		return -1
	}
	return r
}

// Sanitize strips control characters and invalid UTF-8. Sound names come
// from file names, which may contain anything.
func Sanitize(s string) string {
	return strings.Map(cleanRune, s)
}

// Truncate sanitizes s and cuts it to width cells, ending in an ellipsis
// when something was cut.
func Truncate(s string, width int) string {
	return runewidth.Truncate(Sanitize(s), width, ellipsis)
}

// TruncateStyled is Truncate for strings that already carry ANSI styling.
func TruncateStyled(s string, width int) string {
	return ansi.Truncate(s, width, ellipsis)
}

// TruncateAndPad returns s in exactly width cells.
func TruncateAndPad(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// Row puts left and right at the two ends of a width-cell line, keeping at
// least one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Duration formats d as m:ss.
func Duration(d time.Duration) string {
	secs := int(max(d, 0).Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

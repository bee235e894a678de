// Package catalog holds the read-only snapshot of playable sounds.
package catalog

import (
	"path/filepath"
	"strings"
	"unicode"
)

// FavoritesCategory is the pseudo-category listing favorited tracks.
// It is never a real track category.
const FavoritesCategory = "favorites"

// Track is one playable sound asset.
type Track struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Category string `json:"category"`
}

// DisplayName returns a human-friendly name: extension dropped,
// underscores and dashes turned into spaces, words capitalized.
func (t Track) DisplayName() string {
	return FormatName(t.Name)
}

// FormatName formats a sound file name for display.
func FormatName(filename string) string {
	if filename == "" {
		return ""
	}
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)

	var b strings.Builder
	b.Grow(len(base))
	wordStart := true
	for _, r := range base {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r)
		if isWord && wordStart {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		wordStart = !isWord
	}
	return b.String()
}

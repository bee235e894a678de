package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the browser's color palette. Accent colors follow the sound
// state: Primary marks what is playing, Secondary marks favorites.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	once   sync.Once
	styles *Styles
}

// Styles are the lipgloss styles built from a Theme.
type Styles struct {
	Base, Muted, Subtle, Title lipgloss.Style

	Playing  lipgloss.Style
	Favorite lipgloss.Style
	Cursor   lipgloss.Style

	// Tab is an inactive category tab, TabOn the selected one.
	Tab, TabOn lipgloss.Style

	Success, Error, Warning lipgloss.Style
}

var grass = Theme{
	Primary:     "#5fd75f",
	Secondary:   "#ffd75f",
	FgBase:      "#d0d0d0",
	FgMuted:     "#8a8a8a",
	FgSubtle:    "#5c5c5c",
	BgBase:      "#1c1c1c",
	BgCursor:    "#2e3a2e",
	Border:      "#4e4e4e",
	BorderFocus: "#5fd75f",
	Success:     "#5fd75f",
	Error:       "#ff5f5f",
	Warning:     "#ffaf5f",
}

// T returns the application theme.
func T() *Theme {
	return &grass
}

// S returns the theme's styles, built on first use.
func (t *Theme) S() *Styles {
	t.once.Do(func() { t.styles = t.build() })
	return t.styles
}

func (t *Theme) build() *Styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	tab := lipgloss.NewStyle().Padding(0, 1)
	return &Styles{
		Base:     fg(t.FgBase),
		Muted:    fg(t.FgMuted),
		Subtle:   fg(t.FgSubtle),
		Title:    fg(t.FgBase).Bold(true),
		Playing:  fg(t.Primary).Bold(true),
		Favorite: fg(t.Secondary),
		Cursor:   fg(t.FgBase).Background(t.BgCursor),
		Tab:      tab.Foreground(t.FgMuted),
		TabOn:    tab.Foreground(t.BgBase).Background(t.Primary).Bold(true),
		Success:  fg(t.Success),
		Error:    fg(t.Error),
		Warning:  fg(t.Warning),
	}
}

package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/mcsounds/internal/catalog"
	"github.com/llehouerou/mcsounds/internal/keymap"
	"github.com/llehouerou/mcsounds/internal/playback"
	"github.com/llehouerou/mcsounds/internal/ui/render"
	"github.com/llehouerou/mcsounds/internal/ui/styles"
)

const (
	headerLines = 3 // title, tabs, search
	footerLines = 2 // player bar, status
	panelChrome = 3 // border + panel title

	// minQueueWidth is the terminal width below which the queue panel is
	// hidden.
	minQueueWidth = 72

	progressWidth = 28
)

func (m Model) listHeight() int {
	return max(m.height-headerLines-footerLines-panelChrome, 1)
}

func (m Model) queueWidth() int {
	if m.width < minQueueWidth {
		return 0
	}
	return m.width / 3
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var body string
	if m.showHelp {
		body = m.renderHelp()
	} else {
		browser := m.renderBrowser(m.width - m.queueWidth())
		if qw := m.queueWidth(); qw > 0 {
			body = lipgloss.JoinHorizontal(lipgloss.Top, browser, m.renderQueue(qw))
		} else {
			body = browser
		}
	}

	return strings.Join([]string{
		m.renderHeader(),
		m.renderTabs(),
		m.renderSearch(),
		body,
		m.renderPlayerBar(),
		m.renderStatus(),
	}, "\n")
}

// HeaderCounts returns "N sounds • M favorites".
func HeaderCounts(sounds, favorites int) string {
	return fmt.Sprintf("%s %s • %s %s",
		humanize.Comma(int64(sounds)), english.PluralWord(sounds, "sound", ""),
		humanize.Comma(int64(favorites)), english.PluralWord(favorites, "favorite", ""),
	)
}

func (m Model) renderHeader() string {
	t := styles.T()
	title := styles.Gradient("mcsounds", t.Primary, t.Secondary)
	counts := t.S().Muted.Render(HeaderCounts(m.core.Catalog.Len(), m.core.Favorites.Len()))
	return render.Row(" "+title, counts+" ", m.width)
}

func (m Model) renderTabs() string {
	s := styles.T().S()
	tabs := m.Tabs()
	rendered := make([]string, len(tabs))
	active := 0
	for i, tab := range tabs {
		label := tab
		if tab == catalog.FavoritesCategory {
			label = "★ Favorites"
			if n := m.core.Favorites.Len(); n > 0 {
				label = fmt.Sprintf("★ Favorites (%d)", n)
			}
		}
		if tab == m.tab {
			rendered[i] = s.TabOn.Render(label)
			active = i
		} else {
			rendered[i] = s.Tab.Render(label)
		}
	}

	// Drop tabs from the left until the active one fits.
	start := 0
	for start < active && lipgloss.Width(strings.Join(rendered[start:active+1], "")) > m.width-2 {
		start++
	}
	line := strings.Join(rendered[start:], "")
	if start > 0 {
		line = s.Subtle.Render("‹") + line
	}
	return render.TruncateStyled(line, m.width)
}

func (m Model) renderSearch() string {
	if m.searching || m.search.Value() != "" {
		return m.search.View()
	}
	return styles.T().S().Subtle.Render("  press / to search")
}

func (m Model) renderBrowser(width int) string {
	s := styles.T().S()
	inner := max(width-2, 1)
	height := m.listHeight()
	visible := m.Visible()
	favs := m.core.Favorites.Favorites()
	playing, _ := m.core.Engine.Current()
	showCategory := m.tab == catalog.FavoritesCategory || m.search.Value() != ""

	lines := []string{s.Title.Render(render.Truncate(m.browserTitle(len(visible)), inner))}
	if len(visible) == 0 {
		lines = append(lines, s.Muted.Render(render.Truncate(m.emptyText(), inner)))
	}

	start, end := m.browser.VisibleRange(len(visible), height)
	for i := start; i < end; i++ {
		t := visible[i]
		fav := favs.Has(t.ID)
		isPlaying := t.ID == playing.ID
		star, marker := "  ", "  "
		if fav {
			star = "★ "
		}
		if isPlaying {
			marker = "▶ "
		}
		right := ""
		if showCategory {
			right = t.Category
		}
		nameWidth := max(inner-4-lipgloss.Width(right)-1, 1)
		name := render.Truncate(t.DisplayName(), nameWidth)

		if i == m.browser.Pos() && m.focus == FocusBrowser {
			lines = append(lines, s.Cursor.Render(render.Row(star+marker+name, right, inner)))
			continue
		}
		if fav {
			star = s.Favorite.Render(star)
		}
		if isPlaying {
			marker = s.Playing.Render(marker)
		}
		lines = append(lines, render.Row(star+marker+name, s.Muted.Render(right), inner))
	}

	return m.panel(lines, width, m.focus == FocusBrowser)
}

func (m Model) browserTitle(n int) string {
	name := m.tab
	if name == catalog.FavoritesCategory {
		name = "Favorites"
	}
	return fmt.Sprintf("%s · %s %s", name, humanize.Comma(int64(n)), english.PluralWord(n, "sound", ""))
}

func (m Model) emptyText() string {
	switch {
	case m.core.Catalog.Len() == 0:
		return "No sounds loaded. Run `mcsounds manifest <dir>`."
	case m.search.Value() != "":
		return "No sounds match your search."
	case m.tab == catalog.FavoritesCategory:
		return "No favorites yet. Press f on a sound."
	default:
		return "This category is empty."
	}
}

func (m Model) renderQueue(width int) string {
	s := styles.T().S()
	inner := max(width-2, 1)
	height := m.listHeight()
	snap := m.core.Queue.Snapshot()

	title := "Queue"
	if snap.Loop {
		title += " ⟳"
	}
	lines := []string{s.Title.Render(title)}
	if len(snap.Tracks) == 0 {
		lines = append(lines, s.Muted.Render(render.Truncate("Empty. Press a to queue.", inner)))
	}

	start, end := m.queue.VisibleRange(len(snap.Tracks), height)
	for i := start; i < end; i++ {
		prefix := fmt.Sprintf("%2d ", i+1)
		style := s.Base
		if i == snap.Index {
			prefix = "▶" + prefix[1:]
			style = s.Playing
		}
		row := render.TruncateAndPad(prefix+snap.Tracks[i].DisplayName(), inner)
		if i == m.queue.Pos() && m.focus == FocusQueue {
			row = s.Cursor.Render(row)
		} else {
			row = style.Render(row)
		}
		lines = append(lines, row)
	}

	return m.panel(lines, width, m.focus == FocusQueue)
}

func (m Model) panel(lines []string, width int, focused bool) string {
	height := m.listHeight() + 1
	for len(lines) < height {
		lines = append(lines, "")
	}
	return styles.PanelStyle(focused).
		Width(max(width-2, 1)).
		Height(height).
		Render(strings.Join(lines[:height], "\n"))
}

func (m Model) renderPlayerBar() string {
	s := styles.T().S()
	e := m.core.Engine

	var icon string
	switch e.State() {
	case playback.StatePlaying:
		icon = s.Success.Render("▶")
	case playback.StatePaused:
		icon = s.Warning.Render("⏸")
	case playback.StateLoading:
		icon = s.Muted.Render("…")
	case playback.StateIdle:
		icon = s.Subtle.Render("■")
	}

	left := " " + icon + " "
	if track, ok := e.Current(); ok {
		left += s.Title.Render(track.DisplayName()) + s.Muted.Render("  "+track.Category)
	} else {
		left += s.Muted.Render("Nothing playing")
	}

	var right []string
	if prog, ok := m.core.Sequence.Progress(); ok {
		right = append(right, fmt.Sprintf("%s %d/%d", prog.Category, prog.Position, prog.Total))
	}
	if m.core.Queue.Loop() {
		right = append(right, "loop")
	}
	if e.State().IsActive() {
		right = append(right, render.ProgressBar(e.Position(), e.Duration(), progressWidth))
	}

	return render.Row(render.TruncateStyled(left, max(m.width/2, 1)), s.Muted.Render(strings.Join(right, "  ")+" "), m.width)
}

func (m Model) renderStatus() string {
	text, isErr := m.Status()
	if text == "" {
		return styles.T().S().Subtle.Render(" ? help  q quit")
	}
	style := styles.T().S().Muted
	if isErr {
		style = styles.T().S().Error
	}
	return style.Render(" " + render.Truncate(text, max(m.width-1, 1)))
}

func (m Model) renderHelp() string {
	s := styles.T().S()
	var lines []string
	for _, ctx := range []string{"global", "playback", "browser", "queue"} {
		lines = append(lines, s.Title.Render(strings.ToUpper(ctx[:1])+ctx[1:]))
		for _, b := range keymap.ByContext(ctx) {
			lines = append(lines, "  "+s.Favorite.Width(22).Render(m.keys.Label(b.Action))+b.Description)
		}
	}
	return m.panel(lines, m.width, true)
}

package app

import (
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mcsounds/internal/catalog"
	"github.com/llehouerou/mcsounds/internal/errmsg"
	"github.com/llehouerou/mcsounds/internal/keymap"
	"github.com/llehouerou/mcsounds/internal/playback"
	"github.com/llehouerou/mcsounds/internal/sequence"
	"github.com/llehouerou/mcsounds/internal/ui/cursor"
)

// scrollMargin is the number of rows kept visible around the cursor.
const scrollMargin = 3

// Focus identifies the panel receiving list keys.
type Focus int

const (
	FocusBrowser Focus = iota
	FocusQueue
)

// status is the one-line message under the player bar. Listeners write to
// it, so the model holds it by pointer.
type status struct {
	text    string
	isErr   bool
	version int
	armed   int
}

func (s *status) set(text string, isErr bool) {
	s.text = text
	s.isErr = isErr
	s.version++
}

// expire schedules clearing of a message that has not been scheduled yet.
func (s *status) expire() tea.Cmd {
	if s.text == "" || s.armed == s.version {
		return nil
	}
	s.armed = s.version
	return clearStatusCmd(s.version)
}

// Model is the root bubbletea model. Its Update goroutine is the playback
// loop: every core call happens from Update.
type Model struct {
	core   *Core
	keys   *keymap.Resolver
	stderr <-chan string
	status *status

	tab       string
	search    textinput.Model
	searching bool
	browser   cursor.Cursor
	queue     cursor.Cursor
	focus     Focus
	showHelp  bool
	ticking   bool

	width  int
	height int
}

// New creates the UI over a restored core. stderr may be nil.
func New(core *Core, stderr <-chan string) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search sounds"
	search.CharLimit = 64

	m := Model{
		core:    core,
		keys:    keymap.NewResolver(keymap.Bindings),
		stderr:  stderr,
		status:  &status{},
		search:  search,
		browser: cursor.New(scrollMargin),
		queue:   cursor.New(scrollMargin),
	}
	m.tab = m.initialTab()

	st := m.status
	core.Sequence.Subscribe(func(ev sequence.Event) {
		switch ev.Kind {
		case sequence.EventStarted:
			st.set("Playing "+ev.Progress.Category+" in order", false)
		case sequence.EventFinished:
			st.set("Sequential play "+ev.Reason.String(), false)
		case sequence.EventProgress:
		}
	})
	core.Engine.Subscribe(func(ev playback.Event) {
		if ev.Kind == playback.EventFailed {
			st.set(errmsg.FormatWith(errmsg.OpPlaybackStart, ev.Track.DisplayName(), ev.Err), true)
		}
	})
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return WatchStderr(m.stderr)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width-4, 1)
	case loopMsg:
		msg()
		m.ensureTab()
	case TickMsg:
		m.ticking = false
	case stderrMsg:
		m.core.logger.Debug().Str("line", string(msg)).Msg("audio stderr")
		m.status.set(string(msg), true)
		cmd = WatchStderr(m.stderr)
	case stderrClosedMsg:
	case exportedMsg:
		if msg.err != nil {
			m.core.logger.Warn().Err(msg.err).Str("sound", msg.track.ID).Msg("save sound failed")
			m.setError(errmsg.OpSoundExport, msg.err)
		} else {
			m.setStatus("Saved " + msg.track.DisplayName() + " to " + msg.path)
		}
	case clearStatusMsg:
		if msg.version == m.status.version {
			m.status.text = ""
		}
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	}

	m.clampCursors()
	tick := m.maybeTick()
	expire := m.status.expire()
	return m, tea.Batch(cmd, tick, expire)
}

// maybeTick keeps the position display moving while a sound is audible.
func (m *Model) maybeTick() tea.Cmd {
	if m.ticking {
		return nil
	}
	switch m.core.Engine.State() {
	case playback.StatePlaying, playback.StateLoading:
		m.ticking = true
		return TickCmd()
	case playback.StateIdle, playback.StatePaused:
	}
	return nil
}

// Tabs returns the browser tabs: favorites first, then every category.
func (m Model) Tabs() []string {
	return append([]string{catalog.FavoritesCategory}, m.core.Catalog.Categories()...)
}

// Tab returns the active tab.
func (m Model) Tab() string {
	return m.tab
}

// Focus returns the focused panel.
func (m Model) Focus() Focus {
	return m.focus
}

// Visible returns the sounds listed by the browser.
func (m Model) Visible() []catalog.Track {
	return m.core.Catalog.Filter(catalog.Query{
		Term:      m.search.Value(),
		Category:  m.tab,
		Favorites: m.core.Favorites.Favorites(),
	})
}

// Selected returns the sound under the browser cursor.
func (m Model) Selected() (catalog.Track, bool) {
	visible := m.Visible()
	pos := m.browser.Pos()
	if pos < 0 || pos >= len(visible) {
		return catalog.Track{}, false
	}
	return visible[pos], true
}

// Status returns the current status message.
func (m Model) Status() (string, bool) {
	return m.status.text, m.status.isErr
}

// initialTab opens favorites when there are any, the first category
// otherwise.
func (m Model) initialTab() string {
	categories := m.core.Catalog.Categories()
	if m.core.Favorites.Len() > 0 || len(categories) == 0 {
		return catalog.FavoritesCategory
	}
	return categories[0]
}

// ensureTab falls back to the initial tab when a reload removed the active
// category.
func (m *Model) ensureTab() {
	if !slices.Contains(m.Tabs(), m.tab) {
		m.tab = m.initialTab()
		m.browser.Reset()
	}
}

func (m *Model) switchTab(delta int) {
	tabs := m.Tabs()
	i := slices.Index(tabs, m.tab)
	i = (i + delta + len(tabs)) % len(tabs)
	m.tab = tabs[i]
	m.browser.Reset()
}

func (m *Model) clampCursors() {
	m.browser.Clamp(len(m.Visible()), m.listHeight())
	m.queue.Clamp(m.core.Queue.Len(), m.listHeight())
}

func (m *Model) setStatus(text string) {
	m.status.set(text, false)
}

func (m *Model) setError(op errmsg.Op, err error) {
	m.status.set(errmsg.Format(op, err), true)
}

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mcsounds/internal/app/handler"
	"github.com/llehouerou/mcsounds/internal/errmsg"
	"github.com/llehouerou/mcsounds/internal/keymap"
)

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	action := m.keys.Resolve(key)
	if action == keymap.ActionQuit {
		return m, tea.Quit
	}

	_, cmd := handler.Chain(
		func() handler.Result { return m.handleGlobal(action) },
		func() handler.Result { return m.handlePlayback(action) },
		func() handler.Result {
			if m.focus == FocusQueue {
				return m.handleQueue(action)
			}
			return m.handleBrowser(action)
		},
	)
	return m, cmd
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.browser.Reset()
		return *m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return *m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.browser.Reset()
	return *m, cmd
}

func (m *Model) handleGlobal(action keymap.Action) handler.Result {
	switch action { //nolint:exhaustive // other actions belong to other handlers
	case keymap.ActionSwitchFocus:
		if m.focus == FocusBrowser {
			m.focus = FocusQueue
		} else {
			m.focus = FocusBrowser
		}
		return handler.HandledNoCmd
	case keymap.ActionSearch:
		m.searching = true
		m.focus = FocusBrowser
		return handler.Handled(m.search.Focus())
	case keymap.ActionHelp:
		m.showHelp = true
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handlePlayback(action keymap.Action) handler.Result {
	c := m.core
	switch action { //nolint:exhaustive // other actions belong to other handlers
	case keymap.ActionPlayPause:
		c.TogglePlay()
	case keymap.ActionStop:
		c.StopAll()
	case keymap.ActionRewind:
		c.Engine.Rewind()
	case keymap.ActionNextTrack:
		c.Queue.Next()
	case keymap.ActionPrevTrack:
		c.Queue.Prev()
	case keymap.ActionToggleLoop:
		if c.Queue.ToggleLoop() {
			m.setStatus("Loop on")
		} else {
			m.setStatus("Loop off")
		}
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handleBrowser(action keymap.Action) handler.Result {
	height := m.listHeight()
	visible := len(m.Visible())

	switch action { //nolint:exhaustive // other actions belong to other handlers
	case keymap.ActionMoveUp:
		m.browser.Move(-1, visible, height)
	case keymap.ActionMoveDown:
		m.browser.Move(1, visible, height)
	case keymap.ActionJumpStart:
		m.browser.JumpStart()
	case keymap.ActionJumpEnd:
		m.browser.JumpEnd(visible, height)
	case keymap.ActionPrevCategory:
		m.switchTab(-1)
	case keymap.ActionNextCategory:
		m.switchTab(1)
	case keymap.ActionClearQuery:
		m.search.SetValue("")
		m.browser.Reset()
	case keymap.ActionSequential:
		if err := m.core.Sequence.Start(m.tab); err != nil {
			m.setError(errmsg.OpSequentialGo, err)
		}
	case keymap.ActionSelect, keymap.ActionAdd, keymap.ActionFavorite, keymap.ActionExport:
		track, ok := m.Selected()
		if !ok {
			return handler.HandledNoCmd
		}
		switch action { //nolint:exhaustive // narrowed by the outer case
		case keymap.ActionSelect:
			if err := m.core.PlayNow(track); err != nil {
				m.setError(errmsg.OpPlaybackStart, err)
			}
		case keymap.ActionAdd:
			if m.core.Queue.Enqueue(track) {
				m.setStatus("Queued " + track.DisplayName())
			} else {
				m.setStatus(track.DisplayName() + " is already queued")
			}
		case keymap.ActionFavorite:
			m.core.Favorites.Toggle(track.ID)
		case keymap.ActionExport:
			return handler.Handled(exportCmd(track, m.core.exportDir))
		}
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handleQueue(action keymap.Action) handler.Result {
	q := m.core.Queue
	height := m.listHeight()
	pos := m.queue.Pos()

	switch action { //nolint:exhaustive // other actions belong to other handlers
	case keymap.ActionMoveUp:
		m.queue.Move(-1, q.Len(), height)
	case keymap.ActionMoveDown:
		m.queue.Move(1, q.Len(), height)
	case keymap.ActionJumpStart:
		m.queue.JumpStart()
	case keymap.ActionJumpEnd:
		m.queue.JumpEnd(q.Len(), height)
	case keymap.ActionSelect:
		if err := q.SelectIndex(pos); err != nil {
			m.setError(errmsg.OpQueueSelect, err)
		}
	case keymap.ActionDelete:
		if err := q.Remove(pos); err != nil {
			m.setError(errmsg.OpQueueRemove, err)
		}
	case keymap.ActionMoveItemUp, keymap.ActionMoveItemDown:
		to := pos - 1
		if action == keymap.ActionMoveItemDown {
			to = pos + 1
		}
		if to < 0 || to >= q.Len() {
			return handler.HandledNoCmd
		}
		if err := q.Reorder(pos, to); err != nil {
			m.setError(errmsg.OpQueueMove, err)
			return handler.HandledNoCmd
		}
		m.queue.Jump(to, q.Len(), height)
	case keymap.ActionUndo:
		if !q.Undo() {
			m.setStatus("Nothing to undo")
		}
	case keymap.ActionRedo:
		if !q.Redo() {
			m.setStatus("Nothing to redo")
		}
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

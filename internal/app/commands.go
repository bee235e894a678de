package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mcsounds/internal/catalog"
	"github.com/llehouerou/mcsounds/internal/export"
)

const statusTimeout = 4 * time.Second

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func clearStatusCmd(version int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{version: version}
	})
}

// WatchStderr forwards captured stderr lines, one message per line.
func WatchStderr(lines <-chan string) tea.Cmd {
	if lines == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return stderrClosedMsg{}
		}
		return stderrMsg(line)
	}
}

// exportCmd copies track off the loop goroutine.
func exportCmd(track catalog.Track, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.Sound(track, dir)
		return exportedMsg{track: track, path: path, err: err}
	}
}

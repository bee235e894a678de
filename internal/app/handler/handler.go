// Package handler chains key action handlers until one claims the action.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result represents the outcome of a handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler does not own the action.
var NotHandled = Result{}

// HandledNoCmd is returned by handlers that need no follow-up command.
var HandledNoCmd = Result{Handled: true}

// Handled claims the action and schedules cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle the current action.
type Handler func() Result

// Chain runs handlers in order until one handles the action.
func Chain(handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}

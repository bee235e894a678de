package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mcsounds/internal/loop"
)

// callTimeout bounds how long a D-Bus request waits for the UI goroutine.
const callTimeout = 2 * time.Second

// ErrNotAttached is returned by Call before a program is attached.
var ErrNotAttached = errors.New("bridge not attached to a program")

// Bridge turns the bubbletea Update goroutine into the playback loop.
// Work posted from other goroutines is relayed, in order, as messages that
// Update executes. The relay never blocks posters.
type Bridge struct {
	relay  *loop.Loop
	send   func(tea.Msg)
	cancel context.CancelFunc
}

// NewBridge creates a bridge. Posts are buffered until Attach.
func NewBridge() *Bridge {
	return &Bridge{relay: loop.New()}
}

// Attach starts relaying to send, usually (*tea.Program).Send.
func (b *Bridge) Attach(send func(tea.Msg)) {
	ctx, cancel := context.WithCancel(context.Background())
	b.send = send
	b.cancel = cancel
	go func() { _ = b.relay.Run(ctx) }()
}

// Post schedules fn on the Update goroutine.
func (b *Bridge) Post(fn func()) {
	b.relay.Post(func() { b.send(loopMsg(fn)) })
}

// Call runs fn on the Update goroutine and waits for it. It gives up after
// callTimeout, which covers a program that already exited.
func (b *Bridge) Call(fn func()) error {
	if b.send == nil {
		return ErrNotAttached
	}
	done := make(chan struct{})
	b.Post(func() {
		defer close(done)
		fn()
	})
	select {
	case <-done:
		return nil
	case <-b.relay.Done():
		return loop.ErrStopped
	case <-time.After(callTimeout):
		return context.DeadlineExceeded
	}
}

// AfterFunc runs fn on the Update goroutine once d has elapsed.
func (b *Bridge) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, func() { b.Post(fn) })
	return func() { t.Stop() }
}

// Close stops relaying. Pending posts are dropped.
func (b *Bridge) Close() {
	if b.cancel != nil {
		b.cancel()
	}
}

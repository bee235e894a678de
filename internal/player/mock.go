// internal/player/mock.go
package player

import (
	"context"
	"time"
)

// Mock is a test double for Media.
//
// By default loads complete synchronously inside Load. With Manual set,
// loads stay pending until CompleteLoad or FailLoad is called.
type Mock struct {
	Manual bool

	loads    []*MockLoad
	handles  []*MockHandle
	loadErrs map[string]error
}

// MockLoad is one recorded Load call.
type MockLoad struct {
	Path    string
	Ctx     context.Context
	done    func(Handle, error)
	settled bool
}

// NewMock creates a new mock media backend for testing.
func NewMock() *Mock {
	return &Mock{loadErrs: make(map[string]error)}
}

func (m *Mock) Load(ctx context.Context, path string, done func(Handle, error)) {
	l := &MockLoad{Path: path, Ctx: ctx, done: done}
	m.loads = append(m.loads, l)
	if !m.Manual {
		m.settle(l)
	}
}

func (m *Mock) settle(l *MockLoad) *MockHandle {
	if l.settled {
		return nil
	}
	l.settled = true
	if err := m.loadErrs[l.Path]; err != nil {
		l.done(nil, err)
		return nil
	}
	h := &MockHandle{Path: l.Path, duration: time.Second}
	m.handles = append(m.handles, h)
	l.done(h, nil)
	return h
}

// Test helpers

// SetLoadError makes every load of path fail with err.
func (m *Mock) SetLoadError(path string, err error) { m.loadErrs[path] = err }

// Loads returns every recorded load.
func (m *Mock) Loads() []*MockLoad { return m.loads }

// LoadPaths returns the paths of every recorded load, in call order.
func (m *Mock) LoadPaths() []string {
	paths := make([]string, len(m.loads))
	for i, l := range m.loads {
		paths[i] = l.Path
	}
	return paths
}

// Handles returns every handle created so far.
func (m *Mock) Handles() []*MockHandle { return m.handles }

// LastHandle returns the most recently created handle, or nil.
func (m *Mock) LastHandle() *MockHandle {
	if len(m.handles) == 0 {
		return nil
	}
	return m.handles[len(m.handles)-1]
}

// CompleteLoad settles load i successfully and returns its handle.
func (m *Mock) CompleteLoad(i int) *MockHandle {
	return m.settle(m.loads[i])
}

// FailLoad settles load i with err.
func (m *Mock) FailLoad(i int, err error) {
	l := m.loads[i]
	if l.settled {
		return
	}
	l.settled = true
	l.done(nil, err)
}

// Verify Mock implements Media at compile time.
var _ Media = (*Mock)(nil)

// MockHandle is a test double for Handle.
type MockHandle struct {
	Path     string
	started  bool
	paused   bool
	closed   bool
	rewinds  int
	position time.Duration
	duration time.Duration
	onEnd    func(error)
}

func (h *MockHandle) Start(onEnd func(err error)) {
	h.started = true
	h.onEnd = onEnd
}

func (h *MockHandle) Pause() { h.paused = true }

func (h *MockHandle) Resume() { h.paused = false }

func (h *MockHandle) Rewind() error {
	h.rewinds++
	h.position = 0
	return nil
}

func (h *MockHandle) Position() time.Duration { return h.position }

func (h *MockHandle) Duration() time.Duration { return h.duration }

func (h *MockHandle) Close() error {
	h.closed = true
	return nil
}

// Test helpers

func (h *MockHandle) Started() bool { return h.started }

func (h *MockHandle) Paused() bool { return h.paused }

func (h *MockHandle) Closed() bool { return h.closed }

func (h *MockHandle) Rewinds() int { return h.rewinds }

func (h *MockHandle) SetPosition(d time.Duration) { h.position = d }

// Finish simulates the sound reaching its natural end.
func (h *MockHandle) Finish() { h.end(nil) }

// Fail simulates a decode error during playback.
func (h *MockHandle) Fail(err error) { h.end(err) }

func (h *MockHandle) end(err error) {
	if h.onEnd == nil || h.closed {
		return
	}
	h.onEnd(err)
}

// Verify MockHandle implements Handle at compile time.
var _ Handle = (*MockHandle)(nil)

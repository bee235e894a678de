// internal/playback/engine_test.go
package playback

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/mcsounds/internal/catalog"
	"github.com/llehouerou/mcsounds/internal/player"
)

var (
	trackA = catalog.Track{ID: "a", Name: "a.ogg", Path: "/s/ui/a.ogg", Category: "ui"}
	trackB = catalog.Track{ID: "b", Name: "b.ogg", Path: "/s/ui/b.ogg", Category: "ui"}
	trackC = catalog.Track{ID: "c", Name: "c.ogg", Path: "/s/music/c.ogg", Category: "music"}
)

type recorder struct {
	events []Event
}

func (r *recorder) record(e Event) { r.events = append(r.events, e) }

func (r *recorder) kinds() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind.String() + ":" + e.Track.ID
	}
	return out
}

func (r *recorder) reset() { r.events = nil }

func newTestEngine(t *testing.T) (*Engine, *player.Mock, *recorder) {
	t.Helper()
	m := player.NewMock()
	e := New(m, zerolog.Nop())
	r := &recorder{}
	e.Subscribe(r.record)
	return e, m, r
}

func assertKinds(t *testing.T, r *recorder, want ...string) {
	t.Helper()
	got := r.kinds()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
}

func TestEngine_InitiallyIdle(t *testing.T) {
	e, _, _ := newTestEngine(t)

	if e.State() != StateIdle {
		t.Errorf("State() = %v, want Idle", e.State())
	}
	if _, ok := e.Current(); ok {
		t.Error("Current() ok = true, want false")
	}
	if e.Position() != 0 || e.Duration() != 0 {
		t.Error("Position/Duration should be zero when idle")
	}
}

func TestEngine_Play_StartsSession(t *testing.T) {
	e, m, r := newTestEngine(t)

	e.Play(trackA)

	if e.State() != StatePlaying {
		t.Errorf("State() = %v, want Playing", e.State())
	}
	cur, ok := e.Current()
	if !ok || cur.ID != "a" {
		t.Errorf("Current() = %v, %v; want a", cur, ok)
	}
	if paths := m.LoadPaths(); len(paths) != 1 || paths[0] != trackA.Path {
		t.Errorf("LoadPaths() = %v, want [%s]", paths, trackA.Path)
	}
	if !m.LastHandle().Started() {
		t.Error("handle was not started")
	}
	assertKinds(t, r, "started:a")
}

func TestEngine_Play_ReplacesPrevious_StopBeforeStart(t *testing.T) {
	e, m, r := newTestEngine(t)
	e.Play(trackA)
	first := m.LastHandle()
	r.reset()

	e.Play(trackB)

	assertKinds(t, r, "stopped:a", "started:b")
	if r.events[0].Reason != ReasonReplaced {
		t.Errorf("stop reason = %v, want ReasonReplaced", r.events[0].Reason)
	}
	if !first.Closed() {
		t.Error("first handle should be released before the second plays")
	}
	if len(m.Handles()) != 2 || m.Handles()[1].Closed() {
		t.Error("second handle should be live")
	}
}

func TestEngine_AtMostOneActiveSession(t *testing.T) {
	e, m, _ := newTestEngine(t)

	for _, tr := range []catalog.Track{trackA, trackB, trackC, trackA} {
		e.Play(tr)
		live := 0
		for _, h := range m.Handles() {
			if !h.Closed() {
				live++
			}
		}
		if live != 1 {
			t.Fatalf("after Play(%s): %d live handles, want 1", tr.ID, live)
		}
	}
}

func TestEngine_PauseResume(t *testing.T) {
	e, m, r := newTestEngine(t)
	e.Play(trackA)
	r.reset()

	e.Pause()
	if e.State() != StatePaused || !m.LastHandle().Paused() {
		t.Fatalf("after Pause: state=%v paused=%v", e.State(), m.LastHandle().Paused())
	}
	e.Pause() // no-op when already paused

	e.Resume()
	if e.State() != StatePlaying || m.LastHandle().Paused() {
		t.Fatalf("after Resume: state=%v paused=%v", e.State(), m.LastHandle().Paused())
	}
	e.Resume() // no-op when already playing

	assertKinds(t, r, "paused:a", "resumed:a")
}

func TestEngine_PauseResume_NoOpWhenIdle(t *testing.T) {
	e, _, r := newTestEngine(t)

	e.Pause()
	e.Resume()
	e.Toggle()
	e.Rewind()

	if e.State() != StateIdle {
		t.Errorf("State() = %v, want Idle", e.State())
	}
	assertKinds(t, r)
}

func TestEngine_Toggle(t *testing.T) {
	e, _, r := newTestEngine(t)
	e.Play(trackA)
	r.reset()

	e.Toggle()
	e.Toggle()

	assertKinds(t, r, "paused:a", "resumed:a")
}

func TestEngine_Stop_Idempotent(t *testing.T) {
	e, m, r := newTestEngine(t)
	e.Play(trackA)
	r.reset()

	e.Stop()
	e.Stop()

	if e.State() != StateIdle {
		t.Errorf("State() = %v, want Idle", e.State())
	}
	if !m.LastHandle().Closed() {
		t.Error("handle should be closed")
	}
	assertKinds(t, r, "stopped:a")
	if r.events[0].Reason != ReasonUser {
		t.Errorf("reason = %v, want ReasonUser", r.events[0].Reason)
	}
}

func TestEngine_Stop_FromPaused(t *testing.T) {
	e, _, r := newTestEngine(t)
	e.Play(trackA)
	e.Pause()
	r.reset()

	e.Stop()

	assertKinds(t, r, "stopped:a")
}

func TestEngine_Rewind_KeepsPauseState(t *testing.T) {
	e, m, _ := newTestEngine(t)
	e.Play(trackA)
	e.Pause()
	m.LastHandle().SetPosition(3 * time.Second)

	e.Rewind()

	if e.Position() != 0 {
		t.Errorf("Position() = %v, want 0", e.Position())
	}
	if e.State() != StatePaused {
		t.Errorf("State() = %v, want Paused", e.State())
	}
	if m.LastHandle().Rewinds() != 1 {
		t.Errorf("Rewinds() = %d, want 1", m.LastHandle().Rewinds())
	}
}

func TestEngine_NaturalEnd_EmitsEndedNotStopped(t *testing.T) {
	e, m, r := newTestEngine(t)
	e.Play(trackA)
	r.reset()

	m.LastHandle().Finish()

	if e.State() != StateIdle {
		t.Errorf("State() = %v, want Idle", e.State())
	}
	assertKinds(t, r, "ended:a")
}

func TestEngine_EndWhilePaused(t *testing.T) {
	e, m, r := newTestEngine(t)
	e.Play(trackA)
	e.Pause()
	r.reset()

	m.LastHandle().Finish()

	assertKinds(t, r, "ended:a")
}

func TestEngine_PlaybackError(t *testing.T) {
	e, m, r := newTestEngine(t)
	e.Play(trackA)
	r.reset()
	boom := errors.New("corrupt stream")

	m.LastHandle().Fail(boom)

	if e.State() != StateIdle {
		t.Errorf("State() = %v, want Idle", e.State())
	}
	if _, ok := e.Current(); ok {
		t.Error("no session should remain after an error")
	}
	assertKinds(t, r, "failed:a")
	if !errors.Is(r.events[0].Err, boom) {
		t.Errorf("Err = %v, want boom", r.events[0].Err)
	}
}

func TestEngine_LoadError(t *testing.T) {
	e, m, r := newTestEngine(t)
	boom := errors.New("not found")
	m.SetLoadError(trackA.Path, boom)

	e.Play(trackA)

	if e.State() != StateIdle {
		t.Errorf("State() = %v, want Idle", e.State())
	}
	assertKinds(t, r, "failed:a")

	// The engine recovers for the next request.
	e.Play(trackB)
	if e.State() != StatePlaying {
		t.Errorf("State() = %v, want Playing", e.State())
	}
}

func TestEngine_StaleLoadDiscarded(t *testing.T) {
	e, m, r := newTestEngine(t)
	m.Manual = true

	e.Play(trackA)
	if e.State() != StateLoading {
		t.Fatalf("State() = %v, want Loading", e.State())
	}
	e.Play(trackB)

	if m.Loads()[0].Ctx.Err() == nil {
		t.Error("superseded load context should be cancelled")
	}

	// B completes first, then the stale A completion arrives.
	m.CompleteLoad(1)
	stale := m.CompleteLoad(0)

	if !stale.Closed() {
		t.Error("stale handle should be closed on arrival")
	}
	cur, _ := e.Current()
	if cur.ID != "b" || e.State() != StatePlaying {
		t.Errorf("Current() = %s (%v), want b Playing", cur.ID, e.State())
	}
	assertKinds(t, r, "stopped:a", "started:b")
}

func TestEngine_StaleLoadErrorDiscarded(t *testing.T) {
	e, m, r := newTestEngine(t)
	m.Manual = true

	e.Play(trackA)
	e.Play(trackB)
	m.FailLoad(0, errors.New("late failure"))

	if e.State() != StateLoading {
		t.Errorf("State() = %v, want Loading (B still pending)", e.State())
	}
	assertKinds(t, r, "stopped:a")
}

func TestEngine_StopCancelsLoad(t *testing.T) {
	e, m, r := newTestEngine(t)
	m.Manual = true

	e.Play(trackA)
	e.Stop()
	h := m.CompleteLoad(0)

	if e.State() != StateIdle {
		t.Errorf("State() = %v, want Idle", e.State())
	}
	if !h.Closed() {
		t.Error("late handle should be closed")
	}
	assertKinds(t, r, "stopped:a")
}

func TestEngine_StaleEndIgnored(t *testing.T) {
	e, m, r := newTestEngine(t)
	e.Play(trackA)
	first := m.LastHandle()
	e.Play(trackB)
	r.reset()

	// A replaced handle must never end the new session. MockHandle refuses
	// after Close; force the callback through to exercise the engine guard.
	e.finished(1, nil)
	first.Finish()

	if e.State() != StatePlaying {
		t.Errorf("State() = %v, want Playing", e.State())
	}
	assertKinds(t, r)
}

func TestEngine_ReentrantPlayFromStoppedListener(t *testing.T) {
	e, m, _ := newTestEngine(t)
	e.Play(trackA)
	once := false
	e.Subscribe(func(ev Event) {
		if ev.Kind == EventStopped && !once {
			once = true
			e.Play(trackC)
		}
	})

	e.Play(trackB)

	cur, _ := e.Current()
	if cur.ID != "b" {
		t.Errorf("Current() = %s, want b (outer request wins)", cur.ID)
	}
	live := 0
	for _, h := range m.Handles() {
		if !h.Closed() {
			live++
		}
	}
	if live != 1 {
		t.Errorf("%d live handles, want 1", live)
	}
}

func TestEngine_Close(t *testing.T) {
	e, _, r := newTestEngine(t)
	e.Play(trackA)
	e.Close()
	r.reset()

	e.Play(trackB)

	if len(r.events) != 0 {
		t.Errorf("events after Close = %v, want none", r.kinds())
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateIdle, "Idle"},
		{StateLoading, "Loading"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
	if StateIdle.IsActive() || !StateLoading.IsActive() || !StatePaused.IsActive() {
		t.Error("IsActive() mismatch")
	}
}

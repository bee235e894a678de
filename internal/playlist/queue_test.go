// internal/playlist/queue_test.go
package playlist

import (
	"testing"

	"github.com/llehouerou/mcsounds/internal/catalog"
)

func tr(id string) catalog.Track {
	return catalog.Track{ID: id, Name: id + ".ogg", Path: "/s/" + id + ".ogg", Category: "ui"}
}

func ids(tracks []catalog.Track) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.ID
	}
	return out
}

func assertIDs(t *testing.T, q *Queue, want ...string) {
	t.Helper()
	got := ids(q.Tracks())
	if len(got) != len(want) {
		t.Fatalf("Tracks() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tracks() = %v, want %v", got, want)
		}
	}
}

func TestNewQueue(t *testing.T) {
	q := NewQueue()

	if q.Len() != 0 || !q.IsEmpty() {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
	if q.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() = %d, want -1", q.CurrentIndex())
	}
	if _, ok := q.Current(); ok {
		t.Error("Current() should report false for empty queue")
	}
	if _, ok := q.NextIndex(); ok {
		t.Error("NextIndex() should report false for empty queue")
	}
	if _, ok := q.PrevIndex(); ok {
		t.Error("PrevIndex() should report false for empty queue")
	}
}

func TestQueue_Replace(t *testing.T) {
	tests := []struct {
		name      string
		tracks    []catalog.Track
		start     int
		wantIndex int
	}{
		{"start at zero", []catalog.Track{tr("a"), tr("b")}, 0, 0},
		{"start in range", []catalog.Track{tr("a"), tr("b"), tr("c")}, 2, 2},
		{"start past end clamps", []catalog.Track{tr("a"), tr("b")}, 7, 1},
		{"negative start clamps", []catalog.Track{tr("a"), tr("b")}, -3, 0},
		{"empty", nil, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue()
			q.Append(tr("old"))

			q.Replace(tt.tracks, tt.start)

			if q.Len() != len(tt.tracks) {
				t.Errorf("Len() = %d, want %d", q.Len(), len(tt.tracks))
			}
			if q.CurrentIndex() != tt.wantIndex {
				t.Errorf("CurrentIndex() = %d, want %d", q.CurrentIndex(), tt.wantIndex)
			}
		})
	}
}

func TestQueue_Replace_KeepsLoop(t *testing.T) {
	q := NewQueue()
	q.SetLoop(true)

	q.Replace([]catalog.Track{tr("a")}, 0)

	if !q.Loop() {
		t.Error("Loop() = false, want true")
	}
}

func TestQueue_NextPrevIndex(t *testing.T) {
	tests := []struct {
		name     string
		cur      int
		loop     bool
		wantNext int
		nextOK   bool
		wantPrev int
		prevOK   bool
	}{
		{"middle", 1, false, 2, true, 0, true},
		{"first no loop", 0, false, 1, true, -1, false},
		{"last no loop", 2, false, -1, false, 1, true},
		{"first loop", 0, true, 1, true, 2, true},
		{"last loop", 2, true, 0, true, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue()
			q.Replace([]catalog.Track{tr("a"), tr("b"), tr("c")}, tt.cur)
			q.SetLoop(tt.loop)

			next, ok := q.NextIndex()
			if next != tt.wantNext || ok != tt.nextOK {
				t.Errorf("NextIndex() = %d, %v; want %d, %v", next, ok, tt.wantNext, tt.nextOK)
			}
			prev, ok := q.PrevIndex()
			if prev != tt.wantPrev || ok != tt.prevOK {
				t.Errorf("PrevIndex() = %d, %v; want %d, %v", prev, ok, tt.wantPrev, tt.prevOK)
			}
		})
	}
}

func TestQueue_NextIndex_SingleTrackLoop(t *testing.T) {
	q := NewQueue()
	q.Replace([]catalog.Track{tr("a")}, 0)
	q.SetLoop(true)

	if i, ok := q.NextIndex(); !ok || i != 0 {
		t.Errorf("NextIndex() = %d, %v; want 0, true", i, ok)
	}
}

func TestQueue_MoveTo(t *testing.T) {
	q := NewQueue()
	q.Replace([]catalog.Track{tr("a"), tr("b")}, 0)

	if !q.MoveTo(1) {
		t.Fatal("MoveTo(1) = false")
	}
	if cur, _ := q.Current(); cur.ID != "b" {
		t.Errorf("Current() = %s, want b", cur.ID)
	}
	for _, bad := range []int{-1, 2, 99} {
		if q.MoveTo(bad) {
			t.Errorf("MoveTo(%d) = true, want false", bad)
		}
	}
	if q.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1 (unchanged)", q.CurrentIndex())
	}
}

func TestQueue_Append_Dedup(t *testing.T) {
	q := NewQueue()

	if !q.Append(tr("a")) {
		t.Fatal("first Append should succeed")
	}
	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0 after first append", q.CurrentIndex())
	}
	if !q.Append(tr("b")) {
		t.Fatal("Append(b) should succeed")
	}
	if q.Append(tr("a")) {
		t.Error("Append(a) twice should be rejected")
	}

	assertIDs(t, q, "a", "b")
	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0 (unchanged)", q.CurrentIndex())
	}
}

func TestQueue_Move_PreservesCurrentIdentity(t *testing.T) {
	tests := []struct {
		name      string
		cur       int
		from, to  int
		wantOrder []string
		wantIndex int
	}{
		{"current moves up", 1, 1, 0, []string{"b", "a", "c"}, 0},
		{"other moves over current", 1, 0, 2, []string{"b", "c", "a"}, 0},
		{"other moves before current", 2, 0, 1, []string{"b", "a", "c"}, 2},
		{"current moves to end", 0, 0, 2, []string{"b", "c", "a"}, 2},
		{"unrelated swap after current", 0, 1, 2, []string{"a", "c", "b"}, 0},
		{"same index", 1, 1, 1, []string{"a", "b", "c"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue()
			q.Replace([]catalog.Track{tr("a"), tr("b"), tr("c")}, tt.cur)
			before, _ := q.Current()

			if !q.Move(tt.from, tt.to) {
				t.Fatal("Move() = false")
			}

			assertIDs(t, q, tt.wantOrder...)
			if q.CurrentIndex() != tt.wantIndex {
				t.Errorf("CurrentIndex() = %d, want %d", q.CurrentIndex(), tt.wantIndex)
			}
			after, _ := q.Current()
			if after.ID != before.ID {
				t.Errorf("Current() = %s, want %s", after.ID, before.ID)
			}
		})
	}
}

func TestQueue_Move_InvalidIndex(t *testing.T) {
	q := NewQueue()
	q.Replace([]catalog.Track{tr("a"), tr("b")}, 1)

	for _, c := range [][2]int{{-1, 0}, {0, 2}, {5, 1}} {
		if q.Move(c[0], c[1]) {
			t.Errorf("Move(%d, %d) = true, want false", c[0], c[1])
		}
	}
	assertIDs(t, q, "a", "b")
	if q.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", q.CurrentIndex())
	}
}

func TestQueue_RemoveAt(t *testing.T) {
	tests := []struct {
		name      string
		cur       int
		remove    int
		wantOrder []string
		wantIndex int
	}{
		{"before current", 2, 0, []string{"b", "c"}, 1},
		{"after current", 0, 2, []string{"a", "b"}, 0},
		{"current in middle", 1, 1, []string{"a", "c"}, 1},
		{"current at end", 2, 2, []string{"a", "b"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue()
			q.Replace([]catalog.Track{tr("a"), tr("b"), tr("c")}, tt.cur)

			if !q.RemoveAt(tt.remove) {
				t.Fatal("RemoveAt() = false")
			}
			assertIDs(t, q, tt.wantOrder...)
			if q.CurrentIndex() != tt.wantIndex {
				t.Errorf("CurrentIndex() = %d, want %d", q.CurrentIndex(), tt.wantIndex)
			}
		})
	}
}

func TestQueue_RemoveAt_LastTrack(t *testing.T) {
	q := NewQueue()
	q.Replace([]catalog.Track{tr("a")}, 0)

	q.RemoveAt(0)

	if q.CurrentIndex() != -1 || !q.IsEmpty() {
		t.Errorf("CurrentIndex() = %d, want -1 on empty queue", q.CurrentIndex())
	}
	if q.RemoveAt(0) {
		t.Error("RemoveAt on empty queue should fail")
	}
}

func TestQueue_Clear(t *testing.T) {
	q := NewQueue()
	q.Replace([]catalog.Track{tr("a"), tr("b")}, 1)

	q.Clear()

	if !q.IsEmpty() || q.CurrentIndex() != -1 {
		t.Errorf("after Clear: Len=%d CurrentIndex=%d", q.Len(), q.CurrentIndex())
	}
}

func TestQueue_Tracks_ReturnsCopy(t *testing.T) {
	q := NewQueue()
	q.Replace([]catalog.Track{tr("a")}, 0)

	tracks := q.Tracks()
	tracks[0].ID = "modified"

	if cur, _ := q.Current(); cur.ID != "a" {
		t.Error("Tracks() should return a copy")
	}
}

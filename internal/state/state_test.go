package state

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	dbutil "github.com/llehouerou/mcsounds/internal/db"
)

// setupTestManager creates a manager over an in-memory SQLite database.
func setupTestManager(t *testing.T) *Manager {
	t.Helper()

	db, err := dbutil.Open(dbutil.MemoryPath)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	m, err := New(db, zerolog.Nop())
	if err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestKV_GetMissing(t *testing.T) {
	m := setupTestManager(t)

	v, ok, err := m.Get("favorites")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || v != "" {
		t.Errorf("Get() = %q, %v; want \"\", false", v, ok)
	}
}

func TestKV_SetAndGet(t *testing.T) {
	m := setupTestManager(t)

	if err := m.Set("favorites", `["a"]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := m.Set("favorites", `["a","b"]`); err != nil {
		t.Fatalf("Set (update) failed: %v", err)
	}

	v, ok, err := m.Get("favorites")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || v != `["a","b"]` {
		t.Errorf("Get() = %q, %v; want latest value", v, ok)
	}
}

func TestKV_Delete(t *testing.T) {
	m := setupTestManager(t)
	_ = m.Set("k", "v")

	if err := m.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := m.Get("k"); ok {
		t.Error("key should be gone")
	}
}

func TestGetQueue_Empty(t *testing.T) {
	m := setupTestManager(t)

	q, err := m.GetQueue()
	if err != nil {
		t.Fatalf("GetQueue failed: %v", err)
	}
	if q != nil {
		t.Errorf("expected nil queue on empty db, got %+v", q)
	}
}

func TestSaveAndGetQueue(t *testing.T) {
	m := setupTestManager(t)

	m.SaveQueue(QueueState{TrackIDs: []string{"ui_a", "ui_b", "music_c"}, CurrentIndex: 1, Loop: true})
	m.Flush()

	q, err := m.GetQueue()
	if err != nil {
		t.Fatalf("GetQueue failed: %v", err)
	}
	if q == nil {
		t.Fatal("expected saved queue")
	}
	if len(q.TrackIDs) != 3 || q.TrackIDs[0] != "ui_a" || q.TrackIDs[2] != "music_c" {
		t.Errorf("TrackIDs = %v", q.TrackIDs)
	}
	if q.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", q.CurrentIndex)
	}
	if !q.Loop {
		t.Error("Loop = false, want true")
	}
}

func TestSaveQueue_LatestWins(t *testing.T) {
	m := setupTestManager(t)

	m.SaveQueue(QueueState{TrackIDs: []string{"a", "b", "c"}, CurrentIndex: 2})
	m.SaveQueue(QueueState{TrackIDs: []string{"d"}, CurrentIndex: 0})
	m.Flush()

	q, _ := m.GetQueue()
	if len(q.TrackIDs) != 1 || q.TrackIDs[0] != "d" {
		t.Errorf("TrackIDs = %v, want [d]", q.TrackIDs)
	}
}

func TestSaveQueue_ClearsExisting(t *testing.T) {
	m := setupTestManager(t)

	if err := saveQueue(m.db, QueueState{TrackIDs: []string{"a", "b"}, CurrentIndex: 0}); err != nil {
		t.Fatalf("saveQueue failed: %v", err)
	}
	if err := saveQueue(m.db, QueueState{CurrentIndex: -1}); err != nil {
		t.Fatalf("saveQueue failed: %v", err)
	}

	q, _ := getQueue(m.db)
	if len(q.TrackIDs) != 0 {
		t.Errorf("TrackIDs = %v, want empty", q.TrackIDs)
	}
	if q.CurrentIndex != -1 {
		t.Errorf("CurrentIndex = %d, want -1", q.CurrentIndex)
	}
}

func TestFlush_NothingPending(t *testing.T) {
	m := setupTestManager(t)

	m.Flush()

	if q, _ := m.GetQueue(); q != nil {
		t.Errorf("expected no queue, got %+v", q)
	}
}

func TestClose_FlushesPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	m, err := Open(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	m.SaveQueue(QueueState{TrackIDs: []string{"a"}, CurrentIndex: 0})
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m2, err := Open(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m2.Close()

	q, err := m2.GetQueue()
	if err != nil {
		t.Fatalf("GetQueue failed: %v", err)
	}
	if q == nil || len(q.TrackIDs) != 1 {
		t.Errorf("queue not flushed on close: %+v", q)
	}
}

func TestMock(t *testing.T) {
	m := NewMock()

	_ = m.Set("k", "v")
	v, ok, _ := m.Get("k")
	if !ok || v != "v" {
		t.Errorf("Get() = %q, %v", v, ok)
	}
	m.SaveQueue(QueueState{TrackIDs: []string{"a"}})
	if m.QueueSaves() != 1 {
		t.Errorf("QueueSaves() = %d, want 1", m.QueueSaves())
	}
	_ = m.Close()
	if !m.IsClosed() {
		t.Error("IsClosed() = false")
	}
}

package stats

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func receiveUpdate(t *testing.T, w *Watcher) RangeUpdate {
	t.Helper()
	select {
	case u := <-w.Updates():
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a range update")
		return RangeUpdate{}
	}
}

func TestWatcherInitialCompute(t *testing.T) {
	store := newTestStore(t)
	w := NewWatcher(store)
	defer w.Close()

	w.SetRange("2026-03-01", "2026-03-31")

	u := receiveUpdate(t, w)
	if !errors.Is(u.Err, ErrNoData) {
		t.Errorf("initial update Err = %v, want ErrNoData", u.Err)
	}
	if u.Start != "2026-03-01" || u.End != "2026-03-31" {
		t.Errorf("update range = %s..%s, want 2026-03-01..2026-03-31", u.Start, u.End)
	}
}

func TestWatcherRecomputesOnRelevantChange(t *testing.T) {
	store := newTestStore(t)
	w := NewWatcher(store)
	defer w.Close()

	w.SetRange("2026-03-01", "2026-03-31")
	receiveUpdate(t, w) // drain the initial ErrNoData

	entry := models.NewDayEntry("2026-03-10")
	entry.JournalText = "went for a run"
	if _, err := store.UpsertEntry(entry); err != nil {
		t.Fatalf("failed to upsert entry: %v", err)
	}

	u := receiveUpdate(t, w)
	if u.Err != nil {
		t.Fatalf("update Err = %v, want nil", u.Err)
	}
	if u.Result.EntriesCount != 1 {
		t.Errorf("EntriesCount = %d, want 1", u.Result.EntriesCount)
	}
}

func TestWatcherIgnoresOutOfRangeChange(t *testing.T) {
	store := newTestStore(t)
	w := NewWatcher(store)
	defer w.Close()

	w.SetRange("2026-03-01", "2026-03-31")
	receiveUpdate(t, w)

	if _, err := store.UpsertEntry(models.NewDayEntry("2026-05-01")); err != nil {
		t.Fatalf("failed to upsert entry: %v", err)
	}

	select {
	case u := <-w.Updates():
		t.Errorf("unexpected update for out-of-range change: %+v", u)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherStaleComputeCannotEvictFreshResult(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.UpsertEntry(models.NewDayEntry("2026-04-15")); err != nil {
		t.Fatalf("failed to upsert entry: %v", err)
	}

	w := NewWatcher(store)
	defer w.Close()

	// Aim at April and wait for its result to land on the buffered
	// channel without consuming it.
	w.SetRange("2026-04-01", "2026-04-30")
	deadline := time.After(2 * time.Second)
	for len(w.updates) == 0 {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for the April result to buffer")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}

	// An older computation finishing late must be discarded outright: it
	// may not drain the buffered fresh result and publish its own.
	w.compute(0, "2026-03-01", "2026-03-31")

	u := receiveUpdate(t, w)
	if u.Start != "2026-04-01" {
		t.Fatalf("update range starts %s, want the fresh 2026-04-01 result", u.Start)
	}
	if u.Err != nil {
		t.Fatalf("update Err = %v, want nil", u.Err)
	}
	if u.Result.EntriesCount != 1 {
		t.Errorf("EntriesCount = %d, want 1", u.Result.EntriesCount)
	}
}

func TestWatcherRangeChangeSupersedes(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.UpsertEntry(models.NewDayEntry("2026-04-15")); err != nil {
		t.Fatalf("failed to upsert entry: %v", err)
	}

	w := NewWatcher(store)
	defer w.Close()

	// Re-aim the watcher immediately; whatever lands last on the buffered
	// channel must describe the April range.
	w.SetRange("2026-03-01", "2026-03-31")
	w.SetRange("2026-04-01", "2026-04-30")

	deadline := time.After(2 * time.Second)
	for {
		select {
		case u := <-w.Updates():
			if u.Start == "2026-04-01" {
				if u.Err != nil {
					t.Fatalf("April update Err = %v, want nil", u.Err)
				}
				if u.Result.EntriesCount != 1 {
					t.Errorf("EntriesCount = %d, want 1", u.Result.EntriesCount)
				}
				return
			}
			// A March result may slip through before the April one; the
			// April result must still arrive.
		case <-deadline:
			t.Fatal("never received the April range update")
		}
	}
}

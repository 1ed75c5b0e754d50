// Package autosave coalesces bursts of in-memory entry edits into at
// most one persisted write per idle period.
package autosave

import (
	"errors"
	"sync"
	"time"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
)

// Status is the editing session's save state.
type Status int

const (
	StatusClean Status = iota
	StatusDirty
	StatusSaving
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusDirty:
		return "dirty"
	case StatusSaving:
		return "saving"
	default:
		return "unknown"
	}
}

// Coordinator manages one editing session: a single date's working
// entry. Edits merge into the working copy and (re)start an idle timer;
// only the last state within a burst is ever written. At most one
// upsert is in flight at any time; edits that arrive mid-write mark the
// session dirty again and a new save is scheduled once the write
// settles. A failed write leaves the session dirty with the error
// recorded; there is no automatic retry.
type Coordinator struct {
	store storage.Provider
	clock Clock
	delay time.Duration

	mu      sync.Mutex
	cond    *sync.Cond
	entry   models.DayEntry
	dirty   bool
	saving  bool
	timer   Timer
	lastErr error

	onChange func(Status)
}

// New opens an editing session for the given date, loading the persisted
// entry if one exists or materializing a default draft otherwise.
func New(store storage.Provider, date string) (*Coordinator, error) {
	return NewWithClock(store, date, SystemClock())
}

// NewWithClock is New with an explicit clock, for tests.
func NewWithClock(store storage.Provider, date string, clock Clock) (*Coordinator, error) {
	entry, err := store.GetEntry(date)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		entry = models.NewDayEntry(date)
	}

	c := &Coordinator{
		store: store,
		clock: clock,
		delay: constants.DebounceDelay,
		entry: entry,
	}
	c.cond = sync.NewCond(&c.mu)
	return c, nil
}

// OnStatusChange registers a callback invoked (outside the coordinator's
// lock) whenever the session's status changes.
func (c *Coordinator) OnStatusChange(fn func(Status)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Date returns the session's date key.
func (c *Coordinator) Date() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entry.Date
}

// Entry returns a snapshot of the working entry.
func (c *Coordinator) Entry() models.DayEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entry
}

// Persisted reports whether the session's entry has ever been committed.
func (c *Coordinator) Persisted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entry.Persisted()
}

// Status reports the session's save state.
func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status()
}

func (c *Coordinator) status() Status {
	switch {
	case c.saving:
		return StatusSaving
	case c.dirty:
		return StatusDirty
	default:
		return StatusClean
	}
}

// LastError returns the most recent write failure, cleared by the next
// successful save.
func (c *Coordinator) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// OnEdit merges a partial update into the working entry and (re)starts
// the idle timer. Any edit arriving before the timer fires restarts it,
// so intermediate states within a burst are never written.
func (c *Coordinator) OnEdit(patch models.EntryPatch) {
	c.mu.Lock()
	patch.Apply(&c.entry)
	c.dirty = true

	if !c.saving {
		if c.timer == nil {
			c.timer = c.clock.AfterFunc(c.delay, c.onTimer)
		} else {
			c.timer.Reset(c.delay)
		}
	}
	// While saving, the settle path re-arms the timer; starting one here
	// would risk a second in-flight write.
	status := c.status()
	c.mu.Unlock()

	c.notify(status)
}

func (c *Coordinator) onTimer() {
	c.mu.Lock()
	if c.saving || !c.dirty {
		c.mu.Unlock()
		return
	}
	c.save()
}

// save persists the working entry. Caller must hold c.mu; save releases
// it around the store call and returns with it released.
func (c *Coordinator) save() {
	c.saving = true
	c.dirty = false
	snapshot := c.entry
	c.mu.Unlock()

	c.notify(StatusSaving)

	saved, err := c.store.UpsertEntry(snapshot)

	c.mu.Lock()
	c.saving = false
	if err != nil {
		// Surface the failure and stay dirty so the next edit or an
		// explicit flush can retry.
		c.dirty = true
		c.lastErr = err
		logger.Error("autosave failed", "date", snapshot.Date, "error", err)
	} else {
		c.lastErr = nil
		// Adopt store-assigned identity without clobbering edits that
		// arrived while the write was in flight.
		c.entry.ID = saved.ID
		c.entry.CreatedAt = saved.CreatedAt
		c.entry.UpdatedAt = saved.UpdatedAt

		if c.dirty {
			if c.timer == nil {
				c.timer = c.clock.AfterFunc(c.delay, c.onTimer)
			} else {
				c.timer.Reset(c.delay)
			}
		}
	}
	status := c.status()
	c.cond.Broadcast()
	c.mu.Unlock()

	c.notify(status)
}

// Flush forces an immediate save of any pending edits, waiting for an
// in-flight write to settle first. It returns the session's current
// write error, if any. Used on session teardown.
func (c *Coordinator) Flush() error {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	for c.saving {
		c.cond.Wait()
	}
	if !c.dirty {
		err := c.lastErr
		c.mu.Unlock()
		return err
	}
	c.save()

	c.mu.Lock()
	err := c.lastErr
	c.mu.Unlock()
	return err
}

func (c *Coordinator) notify(s Status) {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(s)
	}
}

package stats

import (
	"sync"

	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/storage"
)

// RangeUpdate carries a recomputed result (or ErrNoData) to a watcher's
// consumer.
type RangeUpdate struct {
	Start  string
	End    string
	Result *StatsResult
	Err    error
}

// Watcher keeps a range aggregation current: it recomputes whenever the
// store publishes a change inside the watched interval, and whenever the
// interval itself changes. Requests carry a generation number so a stale
// in-flight computation can never clobber a newer result
// (last-request-wins, not first-completed-wins).
type Watcher struct {
	agg *Aggregator
	sub *storage.Subscription

	mu    sync.Mutex
	gen   uint64
	start string
	end   string

	updates chan RangeUpdate
	done    chan struct{}
}

// NewWatcher creates a watcher and starts listening on the store's
// change feed. Call SetRange to begin computing.
func NewWatcher(store storage.Provider) *Watcher {
	w := &Watcher{
		agg:     NewAggregator(store),
		sub:     store.Subscribe(),
		updates: make(chan RangeUpdate, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w
}

// Updates delivers recomputed results. Only the latest result is kept:
// a slow consumer sees the freshest state, never a backlog.
func (w *Watcher) Updates() <-chan RangeUpdate {
	return w.updates
}

// SetRange changes the watched interval and triggers a recomputation.
func (w *Watcher) SetRange(start, end string) {
	w.mu.Lock()
	w.start, w.end = start, end
	w.gen++
	gen := w.gen
	w.mu.Unlock()

	go w.compute(gen, start, end)
}

// Close stops the watcher. The updates channel is not closed; consumers
// should stop reading after Close returns.
func (w *Watcher) Close() {
	close(w.done)
	w.sub.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.sub.C:
			if !ok {
				return
			}

			w.mu.Lock()
			relevant := w.start != "" && ev.Date >= w.start && ev.Date <= w.end
			var gen uint64
			var start, end string
			if relevant {
				w.gen++
				gen, start, end = w.gen, w.start, w.end
			}
			w.mu.Unlock()

			if relevant {
				go w.compute(gen, start, end)
			}
		}
	}
}

func (w *Watcher) compute(gen uint64, start, end string) {
	res, err := w.agg.Compute(start, end)

	// The staleness check and the publish must happen under one lock
	// hold: checked-then-unlocked, a newer generation could finish in
	// the gap and this result would evict the fresh one from the
	// capacity-1 channel. The send loop never blocks, so holding the
	// lock across it is safe.
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen {
		logger.Debug("discarding stale aggregation", "start", start, "end", end)
		return
	}

	u := RangeUpdate{Start: start, End: end, Result: res, Err: err}
	for {
		select {
		case w.updates <- u:
			return
		default:
			// Channel full: drop the superseded result and retry.
			select {
			case <-w.updates:
			default:
			}
		}
	}
}

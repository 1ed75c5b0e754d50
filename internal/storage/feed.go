package storage

import (
	"sync"

	"github.com/julianstephens/daybook/internal/logger"
)

// EntryChange is published on the change feed after a successful upsert.
type EntryChange struct {
	Date string
}

const subscriptionBuffer = 64

// Subscription is one consumer's view of the change feed. Events arrive
// on C; Close unregisters the subscription and closes the channel.
type Subscription struct {
	C    chan EntryChange
	feed *Feed
	id   int
}

// Close unregisters the subscription from its feed.
func (s *Subscription) Close() {
	s.feed.unsubscribe(s.id)
}

// Feed fans entry change events out to subscribers. Delivery is
// non-blocking: a subscriber that falls more than a buffer's worth
// behind misses events, which is acceptable because consumers recompute
// from a fresh store snapshot on every notification.
type Feed struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan EntryChange
}

// NewFeed creates an empty change feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[int]chan EntryChange)}
}

// Subscribe registers a new consumer.
func (f *Feed) Subscribe() *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	ch := make(chan EntryChange, subscriptionBuffer)
	f.subs[id] = ch
	return &Subscription{C: ch, feed: f, id: id}
}

func (f *Feed) unsubscribe(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ch, ok := f.subs[id]; ok {
		delete(f.subs, id)
		close(ch)
	}
}

// Publish delivers the event to all current subscribers.
func (f *Feed) Publish(ev EntryChange) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subs {
		select {
		case ch <- ev:
		default:
			logger.Warn("change feed subscriber lagging, dropping event", "date", ev.Date)
		}
	}
}

package storage

import "testing"

func TestFeedFanOut(t *testing.T) {
	feed := NewFeed()

	a := feed.Subscribe()
	b := feed.Subscribe()
	defer a.Close()
	defer b.Close()

	feed.Publish(EntryChange{Date: "2026-03-10"})

	for name, sub := range map[string]*Subscription{"a": a, "b": b} {
		select {
		case ev := <-sub.C:
			if ev.Date != "2026-03-10" {
				t.Errorf("subscriber %s got Date = %s, want 2026-03-10", name, ev.Date)
			}
		default:
			t.Errorf("subscriber %s received no event", name)
		}
	}
}

func TestFeedCloseStopsDelivery(t *testing.T) {
	feed := NewFeed()

	sub := feed.Subscribe()
	sub.Close()

	// Publishing after close must not panic or deliver.
	feed.Publish(EntryChange{Date: "2026-03-10"})

	if _, ok := <-sub.C; ok {
		t.Error("closed subscription delivered an event")
	}
}

func TestFeedDoubleCloseIsSafe(t *testing.T) {
	feed := NewFeed()
	sub := feed.Subscribe()
	sub.Close()
	sub.Close()
}

func TestFeedNonBlockingWhenSubscriberLags(t *testing.T) {
	feed := NewFeed()
	sub := feed.Subscribe()
	defer sub.Close()

	// Overfill the buffer; Publish must never block the writer.
	for i := 0; i < subscriptionBuffer+10; i++ {
		feed.Publish(EntryChange{Date: "2026-03-10"})
	}

	drained := 0
	for {
		select {
		case <-sub.C:
			drained++
			continue
		default:
		}
		break
	}
	if drained != subscriptionBuffer {
		t.Errorf("drained %d events, want exactly the buffer size %d", drained, subscriptionBuffer)
	}
}

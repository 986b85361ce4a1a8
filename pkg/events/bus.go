package events

import (
	"sync"
)

// Bus is the in-process event fan-out. Publish never blocks: a subscriber
// that cannot keep up loses events rather than stalling the turn pipeline.
type Bus struct {
	mu       sync.RWMutex
	subs     map[int]chan Event
	nextID   int
	notifier *PGNotifier
}

// NewBus creates a Bus. notifier may be nil for single-pod deployments and
// tests; when set, every published event is also broadcast via pg_notify.
func NewBus(notifier *PGNotifier) *Bus {
	return &Bus{
		subs:     make(map[int]chan Event),
		notifier: notifier,
	}
}

// Subscribe registers a listener. The returned cancel func must be called to
// release the subscription; the channel is closed by it.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if existing, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(existing)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber that has buffer room and,
// when a notifier is configured, broadcasts it cross-pod. Best-effort.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	b.mu.RUnlock()

	if b.notifier != nil {
		b.notifier.Notify(ev)
	}
}

package events

import (
	"context"
	"sync"
	"time"
)

// subscriberBuffer bounds how far a listener can lag before new events are
// dropped for it.
const subscriberBuffer = 16

// Bus is an in-process EventPublisher. Events sent by the service layer are
// fanned out to every listener. Delivery is best-effort: a listener that has
// stopped draining its channel loses events rather than blocking a mutation.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	seq    int64
	closed bool
}

// NewBus creates a bus with no listeners.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// SendEvent stamps the event with a timestamp and sequence number and
// delivers it to every listener.
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.seq++
	event.SequenceID = b.seq
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}

	return nil
}

// Listen registers a listener. The returned channel closes when ctx is
// canceled or the bus is closed.
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	id := b.nextID
	b.nextID++
	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}()

	return ch, nil
}

// Close drops every listener and rejects further sends.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}

	return nil
}

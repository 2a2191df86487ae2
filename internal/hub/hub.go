// Package hub is the in-process push channel: per-identity delivery plus a
// broadcast-all primitive.  Delivery is at-most-once with no replay; a
// subscriber whose buffer is full simply misses the event and is expected
// to re-fetch state on its next view load.
package hub

import "sync"

// Event is one push notification as serialized to clients.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data,omitempty"`
}

// subscriberBuffer bounds how many undelivered events a subscriber may
// hold before further sends are dropped.
const subscriberBuffer = 16

// Subscriber receives events over C until Unsubscribe closes it.
type Subscriber struct {
	UserID uint64
	C      chan Event
}

// Hub fans events out to connected subscribers.  It holds no booking
// state: events are invalidation hints only.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscriber]struct{}
}

func New() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

// Subscribe registers a new subscriber for the given user identity.
func (h *Hub) Subscribe(userID uint64) *Subscriber {
	sub := &Subscriber{UserID: userID, C: make(chan Event, subscriberBuffer)}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

// Unsubscribe removes the subscriber and closes its channel.  Safe to call
// once per subscriber.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	_, ok := h.subs[sub]
	delete(h.subs, sub)
	h.mu.Unlock()
	if ok {
		close(sub.C)
	}
}

// Publish delivers an event to every subscriber of one user identity.
func (h *Hub) Publish(userID uint64, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		if sub.UserID == userID {
			send(sub, ev)
		}
	}
}

// Broadcast delivers an event to every connected subscriber.
func (h *Hub) Broadcast(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		send(sub, ev)
	}
}

// send never blocks: a full subscriber drops the event.
func send(sub *Subscriber, ev Event) {
	select {
	case sub.C <- ev:
	default:
	}
}

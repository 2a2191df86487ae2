package hub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(sub *Subscriber) []Event {
	var out []Event
	for {
		select {
		case ev := <-sub.C:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestPublishReachesOnlyTargetUser(t *testing.T) {
	t.Parallel()
	h := New()
	a := h.Subscribe(1)
	b := h.Subscribe(2)
	defer h.Unsubscribe(a)
	defer h.Unsubscribe(b)

	h.Publish(1, Event{Name: "slotPending"})

	require.Len(t, drain(a), 1)
	assert.Empty(t, drain(b))
}

func TestPublishReachesEveryConnectionOfUser(t *testing.T) {
	t.Parallel()
	h := New()
	// One user, two tabs.
	first := h.Subscribe(1)
	second := h.Subscribe(1)
	defer h.Unsubscribe(first)
	defer h.Unsubscribe(second)

	h.Publish(1, Event{Name: "slotPending"})

	assert.Len(t, drain(first), 1)
	assert.Len(t, drain(second), 1)
}

func TestBroadcastReachesEveryone(t *testing.T) {
	t.Parallel()
	h := New()
	a := h.Subscribe(1)
	b := h.Subscribe(2)
	defer h.Unsubscribe(a)
	defer h.Unsubscribe(b)

	h.Broadcast(Event{Name: "pendingRequestUpdate"})

	assert.Len(t, drain(a), 1)
	assert.Len(t, drain(b), 1)
}

func TestUnsubscribeClosesChannelOnce(t *testing.T) {
	t.Parallel()
	h := New()
	sub := h.Subscribe(1)

	h.Unsubscribe(sub)
	// A second call must not panic on the already closed channel.
	h.Unsubscribe(sub)

	_, open := <-sub.C
	assert.False(t, open)

	// Events after unsubscribe go nowhere.
	h.Publish(1, Event{Name: "slotPending"})
	h.Broadcast(Event{Name: "pendingRequestUpdate"})
}

func TestFullSubscriberDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()
	h := New()
	sub := h.Subscribe(1)
	defer h.Unsubscribe(sub)

	for i := 0; i < subscriberBuffer+10; i++ {
		h.Publish(1, Event{Name: "slotPending"})
	}
	// Delivery is at-most-once with no replay: the overflow is gone.
	assert.Len(t, drain(sub), subscriberBuffer)
}

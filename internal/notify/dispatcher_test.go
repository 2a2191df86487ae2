package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/booking"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/hub"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/model"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/queue"
)

type fakePusher struct {
	mu         sync.Mutex
	direct     []hub.Event
	directUser []uint64
	broadcasts []hub.Event
}

func (f *fakePusher) Publish(userID uint64, ev hub.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.direct = append(f.direct, ev)
	f.directUser = append(f.directUser, userID)
}

func (f *fakePusher) Broadcast(ev hub.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.broadcasts = append(f.broadcasts, ev)
}

type fakeMailPublisher struct {
	mu     sync.Mutex
	events []queue.BookingApprovedEvent
}

func (f *fakeMailPublisher) PublishBookingApproved(_ context.Context, ev queue.BookingApprovedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return nil
}

func TestDispatchRoutesEvents(t *testing.T) {
	t.Parallel()
	push := &fakePusher{}
	pub := &fakeMailPublisher{}
	d := New(push, pub)

	d.Dispatch([]booking.Event{
		booking.SlotPending{UserID: 7, Room: "R1", Date: "2025-03-21", Period: 5},
		booking.PendingChanged{RequestID: 11},
		booking.ApprovalMail{RequestID: 11, Detail: model.ApprovedDetail{
			Email: "u@example.com", Room: "R1", Date: "2025-03-21", Period: 5, Purpose: "seminar",
		}},
	})

	// Dispatch is fire-and-forget; wait for the background goroutine.
	require.Eventually(t, func() bool {
		push.mu.Lock()
		defer push.mu.Unlock()
		pub.mu.Lock()
		defer pub.mu.Unlock()
		return len(push.direct) == 1 && len(push.broadcasts) == 1 && len(pub.events) == 1
	}, time.Second, 10*time.Millisecond)

	push.mu.Lock()
	defer push.mu.Unlock()
	assert.Equal(t, uint64(7), push.directUser[0])
	assert.Equal(t, "slotPending", push.direct[0].Name)
	assert.Equal(t, "pendingRequestUpdate", push.broadcasts[0].Name)
	assert.Equal(t, map[string]any{"requestId": uint64(11)}, push.broadcasts[0].Data)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	assert.Equal(t, queue.BookingApprovedEvent{
		RequestID: 11, Email: "u@example.com", Room: "R1", Date: "2025-03-21", Period: 5, Purpose: "seminar",
	}, pub.events[0])
}

func TestDispatchNothingOnEmptyList(t *testing.T) {
	t.Parallel()
	push := &fakePusher{}
	d := New(push, &fakeMailPublisher{})

	d.Dispatch(nil)
	d.Dispatch([]booking.Event{})

	time.Sleep(50 * time.Millisecond)
	push.mu.Lock()
	defer push.mu.Unlock()
	assert.Empty(t, push.direct)
	assert.Empty(t, push.broadcasts)
}

func TestDispatchOmitsRequestIDOnCreate(t *testing.T) {
	t.Parallel()
	push := &fakePusher{}
	d := New(push, &fakeMailPublisher{})

	d.Dispatch([]booking.Event{booking.PendingChanged{}})

	require.Eventually(t, func() bool {
		push.mu.Lock()
		defer push.mu.Unlock()
		return len(push.broadcasts) == 1
	}, time.Second, 10*time.Millisecond)

	push.mu.Lock()
	defer push.mu.Unlock()
	assert.Equal(t, map[string]any{}, push.broadcasts[0].Data)
}

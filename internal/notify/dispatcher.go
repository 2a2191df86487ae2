// Package notify fans the engine's post-commit events out to the push hub
// and the mail pipeline.  Dispatch runs outside the transactional path and
// can never fail the transition that produced the events.
package notify

import (
	"context"
	"time"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/booking"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/hub"
	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/queue"
)

// Pusher is the slice of the hub the dispatcher needs: the two push
// primitives named by the design.
type Pusher interface {
	Publish(userID uint64, ev hub.Event)
	Broadcast(ev hub.Event)
}

// MailPublisher hands approval mail events to the broker.
type MailPublisher interface {
	PublishBookingApproved(ctx context.Context, ev queue.BookingApprovedEvent) error
}

// Dispatcher consumes the event lists returned by booking transitions.
type Dispatcher struct {
	hub Pusher
	pub MailPublisher
}

func New(h Pusher, p MailPublisher) *Dispatcher {
	return &Dispatcher{hub: h, pub: p}
}

// Dispatch delivers events in the background.  Callers return to the
// client immediately; publish errors are logged inside the publisher and
// dropped here.
func (d *Dispatcher) Dispatch(events []booking.Event) {
	if len(events) == 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, ev := range events {
			switch e := ev.(type) {
			case booking.SlotPending:
				d.hub.Publish(e.UserID, hub.Event{
					Name: "slotPending",
					Data: map[string]any{"room": e.Room, "date": e.Date, "period": e.Period},
				})
			case booking.PendingChanged:
				data := map[string]any{}
				if e.RequestID != 0 {
					data["requestId"] = e.RequestID
				}
				d.hub.Broadcast(hub.Event{Name: "pendingRequestUpdate", Data: data})
			case booking.ApprovalMail:
				_ = d.pub.PublishBookingApproved(ctx, queue.BookingApprovedEvent{
					RequestID: e.RequestID,
					Email:     e.Detail.Email,
					Room:      e.Detail.Room,
					Date:      e.Detail.Date,
					Period:    e.Detail.Period,
					Purpose:   e.Detail.Purpose,
				})
			}
		}
	}()
}

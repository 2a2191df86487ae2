package booking

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/model"
)

// Service is the booking transition engine.  All state lives in the
// injected Store; the engine recomputes every decision from it per call
// and holds no cached grid.  Race safety for approve/reject rests solely
// on the store's conditional write primitives.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService constructs the engine over the given store.
func NewService(store Store) *Service {
	if store == nil {
		panic("nil store passed to NewService")
	}
	return &Service{store: store, now: time.Now}
}

// RequestInput carries one booking request after transport decoding.
type RequestInput struct {
	Room    string
	Date    string
	Period  int
	Purpose string
	UserID  uint64
}

// Request validates the input, refuses past slots, checks the slot against
// booked records only and inserts a new pending record owned by the acting
// user.  Competing pending records for the same slot are allowed to
// coexist; the HOD resolves the contention.  On success it returns the
// post-commit events: a slotPending notice for the actor and a broadcast
// pending-list invalidation.
func (s *Service) Request(ctx context.Context, in RequestInput) ([]Event, error) {
	if strings.TrimSpace(in.Room) == "" || strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Purpose) == "" {
		return nil, ErrInvalidInput
	}
	endTime, err := SlotEndTime(in.Date, in.Period)
	if err != nil {
		return nil, err
	}
	if !endTime.After(s.now()) {
		return nil, ErrPastSlot
	}

	taken, err := s.store.BookedExists(ctx, in.Room, in.Date, in.Period)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	rec := &model.Booking{
		UserID:  in.UserID,
		Room:    in.Room,
		Date:    in.Date,
		Period:  in.Period,
		EndTime: endTime,
		Purpose: in.Purpose,
		Status:  model.StatusPending,
	}
	if err := s.store.InsertPending(ctx, rec); err != nil {
		return nil, err
	}

	return []Event{
		SlotPending{UserID: in.UserID, Room: in.Room, Date: in.Date, Period: in.Period},
		PendingChanged{},
	}, nil
}

// Approve transitions a pending request to booked via a single conditional
// update.  Whichever of approve/reject reaches the store first wins; the
// loser observes ErrAlreadyProcessed.  The approval mail is advisory: a
// failure to load its details is logged and the approval stands.
func (s *Service) Approve(ctx context.Context, requestID uint64) ([]Event, error) {
	ok, err := s.store.MarkBooked(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadyProcessed
	}

	events := []Event{PendingChanged{RequestID: requestID}}
	detail, err := s.store.ApprovedDetail(ctx, requestID)
	if err != nil {
		log.Printf("booking: fetch approval details for %d failed: %v", requestID, err)
		return events, nil
	}
	return append(events, ApprovalMail{RequestID: requestID, Detail: detail}), nil
}

// Reject deletes a request only while it is still pending, reverting the
// slot to free.  Zero affected rows surfaces as ErrAlreadyProcessed.
func (s *Service) Reject(ctx context.Context, requestID uint64) ([]Event, error) {
	ok, err := s.store.DeletePending(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadyProcessed
	}
	return []Event{PendingChanged{RequestID: requestID}}, nil
}

// Availability returns the viewer's 7-slot view of a room-day, applying
// the per-viewer pending mask.  The sequence is always full length and
// ordered by period ascending.
func (s *Service) Availability(ctx context.Context, room, date string, viewer uint64) ([]SlotView, error) {
	if strings.TrimSpace(room) == "" || strings.TrimSpace(date) == "" {
		return nil, ErrInvalidInput
	}
	records, err := s.store.ListByRoomDate(ctx, room, date)
	if err != nil {
		return nil, err
	}
	return BuildAvailability(records, viewer), nil
}

// Pending returns the HOD's pending-request list with owner display names.
func (s *Service) Pending(ctx context.Context) ([]model.PendingRequest, error) {
	return s.store.ListPending(ctx)
}

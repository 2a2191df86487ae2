package booking

import (
	"context"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/model"
)

// Store is the relational-store contract the engine depends on.  The two
// conditional primitives (MarkBooked, DeletePending) are evaluated
// atomically by the store itself; they report whether a row was affected,
// which is the engine's only concurrency-correctness mechanism.
type Store interface {
	// BookedExists reports whether a booked record occupies (room, date, period).
	BookedExists(ctx context.Context, room, date string, period int) (bool, error)

	// InsertPending stores a new pending booking and fills in its generated ID.
	InsertPending(ctx context.Context, b *model.Booking) error

	// MarkBooked transitions a record from pending to booked.  It returns
	// false when no row matched (id missing or no longer pending).
	MarkBooked(ctx context.Context, id uint64) (bool, error)

	// DeletePending removes a record only while it is still pending.  It
	// returns false when no row matched.
	DeletePending(ctx context.Context, id uint64) (bool, error)

	// ListByRoomDate returns every stored record for (room, date),
	// regardless of status or owner.
	ListByRoomDate(ctx context.Context, room, date string) ([]model.Booking, error)

	// ListPending returns all pending requests joined with their owners'
	// display names, oldest first.
	ListPending(ctx context.Context) ([]model.PendingRequest, error)

	// ApprovedDetail loads the owner email and slot particulars of a
	// booking for the approval mail.
	ApprovedDetail(ctx context.Context, id uint64) (model.ApprovedDetail, error)
}

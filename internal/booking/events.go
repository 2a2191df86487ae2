package booking

import "github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/model"

// Transitions return a list of post-commit events instead of firing side
// effects inline.  The caller hands the list to a dispatcher outside the
// transactional path; delivery is fire-and-forget and never affects the
// outcome of the transition that produced it.

// Event is a marker for the engine's post-commit notifications.
type Event interface {
	event()
}

// SlotPending is addressed to the requesting user only: their request was
// recorded and awaits HOD approval.
type SlotPending struct {
	UserID uint64
	Room   string
	Date   string
	Period int
}

// PendingChanged is broadcast to all connected clients whenever the
// pending-request list changes (create, approve, reject).  Clients treat
// it purely as an invalidation hint and re-fetch authoritative state.
type PendingChanged struct {
	RequestID uint64 // zero on create
}

// ApprovalMail requests an email to the booking owner.  Produced on
// approval only.
type ApprovalMail struct {
	RequestID uint64
	Detail    model.ApprovedDetail
}

func (SlotPending) event()    {}
func (PendingChanged) event() {}
func (ApprovalMail) event()   {}

package booking

import "github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/model"

// SlotView is one position of the 7-element availability sequence returned
// to a viewer.  Status and Purpose are pointers so free slots serialize
// with explicit nulls, which is what the browser client expects.
type SlotView struct {
	Booked  bool    `json:"booked"`
	Status  *string `json:"status"`
	Purpose *string `json:"purpose"`
}

// BuildAvailability computes the slot view of a room-day for one viewer.
// All 7 positions start free; each stored record then marks its period
// occupied unless it is another user's pending request, which stays masked
// so that several users can attempt to claim a contended slot.  The real
// conflict check happens at request time against booked records only.
// Booked records are never masked for anyone.
func BuildAvailability(records []model.Booking, viewer uint64) []SlotView {
	views := make([]SlotView, PeriodsPerDay)
	for _, rec := range records {
		idx := rec.Period - 1
		if idx < 0 || idx >= PeriodsPerDay {
			continue
		}
		if rec.Status == model.StatusPending && rec.UserID != viewer {
			continue // keep available for other users
		}
		status := rec.Status
		purpose := rec.Purpose
		views[idx] = SlotView{Booked: true, Status: &status, Purpose: &purpose}
	}
	return views
}

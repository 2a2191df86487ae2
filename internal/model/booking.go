package model

import "time"

// Booking status values as stored in bookings.status and reported on the
// wire.  A slot with no row is free; a pending row becomes booked on
// approval or is deleted on rejection.  No other transitions exist.
const (
    StatusPending = "pending"
    StatusBooked  = "booked"
)

// Booking mirrors a row of the `bookings` table: one occupied slot,
// identified by (room, date, period), owned by a user.
//
// Fields:
//  ID        – primary key identifier, used as the request id by approve/reject.
//  UserID    – owner of the request.
//  Room      – room name as submitted by the client.
//  Date      – booking day, formatted YYYY-MM-DD.
//  Period    – period index in [1,7].
//  EndTime   – wall-clock end of the slot, derived from the period table.
//  Purpose   – free-text purpose shown to viewers of an occupied slot.
//  Status    – pending or booked.
//  CreatedAt – timestamp of creation.
type Booking struct {
    ID        uint64    // bookings.id
    UserID    uint64    // bookings.user_id
    Room      string    // bookings.room
    Date      string    // bookings.date (YYYY-MM-DD)
    Period    int       // bookings.period
    EndTime   time.Time // bookings.end_time
    Purpose   string    // bookings.purpose
    Status    string    // bookings.status
    CreatedAt time.Time // bookings.created_at
}

// PendingRequest is a row of the HOD's pending list: a pending booking
// joined with its owner's display name.
type PendingRequest struct {
    ID          uint64 `json:"id"`
    DisplayName string `json:"username"`
    Room        string `json:"room"`
    Date        string `json:"date"`
    Period      int    `json:"period"`
    Purpose     string `json:"purpose"`
}

// ApprovedDetail carries what the approval mail needs: the owner's
// address and the slot particulars.  Fetched after the conditional
// update succeeds.
type ApprovedDetail struct {
    Email   string
    Room    string
    Date    string
    Period  int
    Purpose string
}

// Room is a row of the seeded `rooms` catalog.
type Room struct {
    ID          uint64 `json:"id"`
    Name        string `json:"name"`
    Description string `json:"description"`
}

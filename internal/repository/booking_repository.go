package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/model"
)

// BookingRepo provides access to the bookings table.  It implements the
// booking engine's Store contract: the conditional UPDATE/DELETE guarded
// by the current status are the primitives that make pending→terminal
// transitions exclusive; no in-process locking exists anywhere above.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// BookedExists reports whether an approved booking occupies the slot.
// Pending rows are deliberately not considered: competing pending requests
// for one slot may coexist.
func (r *BookingRepo) BookedExists(ctx context.Context, room, date string, period int) (bool, error) {
	var id uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM bookings WHERE room=? AND date=? AND period=? AND status=? LIMIT 1",
		room, date, period, model.StatusBooked).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// InsertPending stores a new pending booking and populates its ID.
func (r *BookingRepo) InsertPending(ctx context.Context, b *model.Booking) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (user_id, room, date, period, end_time, purpose, status) VALUES (?,?,?,?,?,?,?)",
		b.UserID, b.Room, b.Date, b.Period, b.EndTime.UTC(), b.Purpose, model.StatusPending)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// MarkBooked performs the conditional pending→booked update.  The database
// evaluates the WHERE clause atomically, so at most one of the racing
// approve/reject calls observes an affected row.
func (r *BookingRepo) MarkBooked(ctx context.Context, id uint64) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE id=? AND status=?",
		model.StatusBooked, id, model.StatusPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeletePending removes a booking only while it is still pending.
func (r *BookingRepo) DeletePending(ctx context.Context, id uint64) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM bookings WHERE id=? AND status=?",
		id, model.StatusPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListByRoomDate returns every booking row for (room, date), any status.
func (r *BookingRepo) ListByRoomDate(ctx context.Context, room, date string) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, user_id, room, date, period, end_time, purpose, status, created_at FROM bookings WHERE room=? AND date=?",
		room, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

// ListPending returns all pending requests joined with their owners'
// display names, oldest first, for the HOD view.
func (r *BookingRepo) ListPending(ctx context.Context) ([]model.PendingRequest, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT b.id, u.display_name, b.room, b.date, b.period, b.purpose
		 FROM bookings b
		 JOIN users u ON u.id = b.user_id
		 WHERE b.status = ?
		 ORDER BY b.created_at ASC`, model.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.PendingRequest, 0)
	for rows.Next() {
		var p model.PendingRequest
		var day time.Time
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.Room, &day, &p.Period, &p.Purpose); err != nil {
			return nil, err
		}
		p.Date = day.Format("2006-01-02")
		out = append(out, p)
	}
	return out, rows.Err()
}

// ApprovedDetail loads the owner's email plus the slot particulars of one
// booking, used to compose the approval mail.
func (r *BookingRepo) ApprovedDetail(ctx context.Context, id uint64) (model.ApprovedDetail, error) {
	var d model.ApprovedDetail
	var day time.Time
	err := r.DB.QueryRowContext(ctx,
		`SELECT u.email, b.room, b.date, b.period, b.purpose
		 FROM bookings b
		 JOIN users u ON u.id = b.user_id
		 WHERE b.id = ?`, id).Scan(&d.Email, &d.Room, &day, &d.Period, &d.Purpose)
	if err != nil {
		return model.ApprovedDetail{}, err
	}
	d.Date = day.Format("2006-01-02")
	return d, nil
}

// ListByUser returns the caller's own requests, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, user_id, room, date, period, end_time, purpose, status, created_at FROM bookings WHERE user_id=? ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func scanBookings(rows *sql.Rows) ([]model.Booking, error) {
	out := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		var day time.Time
		if err := rows.Scan(&b.ID, &b.UserID, &b.Room, &day, &b.Period, &b.EndTime, &b.Purpose, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.Date = day.Format("2006-01-02")
		out = append(out, b)
	}
	return out, rows.Err()
}

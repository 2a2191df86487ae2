package repository

import (
	"context"
	"database/sql"

	"github.com/AbhinavS2004/Seminar-Hall-and-Lab-Booking-System/internal/model"
)

// RoomRepo reads the seeded room catalog.  Rooms are reference data for
// clients building the booking form; bookings store the room name
// directly.
type RoomRepo struct{ DB *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{DB: db} }

// List returns all rooms ordered by name.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, description FROM rooms ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Room, 0)
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Description); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

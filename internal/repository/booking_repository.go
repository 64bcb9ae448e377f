package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/spot-rental/internal/model"
)

type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts a booking for the current user.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (spot_id, user_id, start_date, end_date) VALUES (?,?,?,?)",
		b.SpotID, b.UserID, b.StartDate, b.EndDate)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM bookings WHERE id=?", b.ID).Scan(&b.CreatedAt)
}

// ListByUser returns the caller's bookings together with a short spot
// description, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.BookingWithSpot, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT b.id, b.spot_id, b.user_id, b.start_date, b.end_date, b.created_at,
		 s.name, s.city, s.country
		 FROM bookings b JOIN spots s ON s.id = b.spot_id
		 WHERE b.user_id = ? ORDER BY b.start_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.BookingWithSpot{}
	for rows.Next() {
		var b model.BookingWithSpot
		var start, end time.Time
		if err := rows.Scan(&b.ID, &b.SpotID, &b.UserID, &start, &end, &b.CreatedAt,
			&b.SpotName, &b.City, &b.Country); err != nil {
			return nil, err
		}
		b.StartDate = start.Format("2006-01-02")
		b.EndDate = end.Format("2006-01-02")
		out = append(out, b)
	}
	return out, rows.Err()
}

// RenterOf returns the booking's renter id for the ownership gate.
func (r *BookingRepo) RenterOf(ctx context.Context, id uint64) (uint64, error) {
	var renter uint64
	err := r.DB.QueryRowContext(ctx, "SELECT user_id FROM bookings WHERE id=?", id).Scan(&renter)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	return renter, err
}

// Delete cancels a booking.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM bookings WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

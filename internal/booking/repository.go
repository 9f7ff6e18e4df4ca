package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrBookingNotFound = errors.New("booking not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = "id, name, email, phone, service_id, starts_at, slot_time, status, notes, created_at"

// CreateWithSlot inserts the booking and flips the matching time slot to
// unavailable in one transaction. The slot row is created on the spot when
// the admin never generated it; UNIQUE(slot_date, slot_time) turns the
// concurrent double-book into a plain row update instead of a duplicate.
func (r *repository) CreateWithSlot(ctx context.Context, b *Booking, slotDate time.Time) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	insertBooking := `
		INSERT INTO bookings (name, email, phone, service_id, starts_at, slot_time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + bookingColumns

	var created Booking
	err = tx.GetContext(ctx, &created, insertBooking,
		b.Name, b.Email, b.Phone, b.ServiceID, b.StartsAt, b.Time, b.Status, b.Notes)
	if err != nil {
		return nil, err
	}

	upsertSlot := `
		INSERT INTO time_slots (slot_date, slot_time, available, service_id)
		VALUES ($1, $2, FALSE, $3)
		ON CONFLICT (slot_date, slot_time)
		DO UPDATE SET available = FALSE, service_id = EXCLUDED.service_id
	`

	if _, err := tx.ExecContext(ctx, upsertSlot, slotDate, b.Time, b.ServiceID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*BookingWithService, error) {
	query := `
		SELECT
			b.id, b.name, b.email, b.phone, b.service_id, b.starts_at,
			b.slot_time, b.status, b.notes, b.created_at,
			s.name AS service_name,
			s.category AS service_category
		FROM bookings b
		JOIN services s ON b.service_id = s.id
		WHERE b.id = $1
	`

	var b BookingWithService
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) List(ctx context.Context) ([]BookingWithService, error) {
	query := `
		SELECT
			b.id,
			b.name,
			b.email,
			b.phone,
			b.service_id,
			b.starts_at,
			b.slot_time,
			b.status,
			b.notes,
			b.created_at,
			s.name AS service_name,
			s.category AS service_category
		FROM bookings b
		JOIN services s ON b.service_id = s.id
		ORDER BY b.created_at DESC
	`

	var bookings []BookingWithService
	err := r.db.SelectContext(ctx, &bookings, query)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status string) (*Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = $2
		RETURNING ` + bookingColumns

	var b Booking
	err := r.db.GetContext(ctx, &b, query, status, id)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

package slot

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrSlotNotFound = errors.New("time slot not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const slotColumns = "id, slot_date, slot_time, available, service_id, created_at"

func (r *repository) Create(ctx context.Context, date time.Time, timeLabel string, available bool) (*TimeSlot, error) {
	query := `
		INSERT INTO time_slots (slot_date, slot_time, available)
		VALUES ($1, $2, $3)
		RETURNING ` + slotColumns

	var slot TimeSlot
	err := r.db.GetContext(ctx, &slot, query, date, timeLabel, available)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) List(ctx context.Context, date *time.Time) ([]TimeSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM time_slots`
	args := []interface{}{}

	if date != nil {
		query += ` WHERE slot_date = $1`
		args = append(args, *date)
	}

	query += ` ORDER BY slot_date ASC, slot_time ASC`

	var slots []TimeSlot
	err := r.db.SelectContext(ctx, &slots, query, args...)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) ListAvailable(ctx context.Context, date time.Time) ([]TimeSlot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM time_slots
		WHERE slot_date = $1 AND available = TRUE
		ORDER BY slot_time ASC
	`

	var slots []TimeSlot
	err := r.db.SelectContext(ctx, &slots, query, date)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) SetAvailability(ctx context.Context, id int, available bool) (*TimeSlot, error) {
	query := `
		UPDATE time_slots
		SET available = $1
		WHERE id = $2
		RETURNING ` + slotColumns

	var slot TimeSlot
	err := r.db.GetContext(ctx, &slot, query, available, id)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM time_slots WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// InsertMissing creates any of the given slots that do not already exist.
// The UNIQUE(slot_date, slot_time) constraint makes duplicates a no-op.
func (r *repository) InsertMissing(ctx context.Context, slots []TimeSlot) (int, error) {
	query := `
		INSERT INTO time_slots (slot_date, slot_time, available)
		VALUES ($1, $2, $3)
		ON CONFLICT (slot_date, slot_time) DO NOTHING
	`

	created := 0
	for _, s := range slots {
		result, err := r.db.ExecContext(ctx, query, s.Date, s.Time, s.Available)
		if err != nil {
			return created, err
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return created, err
		}
		created += int(rowsAffected)
	}

	return created, nil
}

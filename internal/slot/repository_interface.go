package slot

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, date time.Time, timeLabel string, available bool) (*TimeSlot, error)
	List(ctx context.Context, date *time.Time) ([]TimeSlot, error)
	ListAvailable(ctx context.Context, date time.Time) ([]TimeSlot, error)
	SetAvailability(ctx context.Context, id int, available bool) (*TimeSlot, error)
	Delete(ctx context.Context, id int) error
	InsertMissing(ctx context.Context, slots []TimeSlot) (int, error)
}

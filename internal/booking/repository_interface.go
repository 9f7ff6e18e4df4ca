package booking

import (
	"context"
	"time"
)

type Repository interface {
	CreateWithSlot(ctx context.Context, b *Booking, slotDate time.Time) (*Booking, error)
	GetByID(ctx context.Context, id int) (*BookingWithService, error)
	List(ctx context.Context) ([]BookingWithService, error)
	UpdateStatus(ctx context.Context, id int, status string) (*Booking, error)
	Delete(ctx context.Context, id int) error
}

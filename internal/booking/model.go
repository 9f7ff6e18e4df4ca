package booking

import "time"

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

// ValidStatus reports whether s is one of the four booking statuses.
// Transitions themselves are unrestricted: admins may move a booking
// between any two statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

type Booking struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	ServiceID int       `db:"service_id" json:"serviceId"`
	StartsAt  time.Time `db:"starts_at" json:"date"`
	Time      string    `db:"slot_time" json:"time"`
	Status    string    `db:"status" json:"status"`
	Notes     *string   `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type BookingWithService struct {
	Booking
	ServiceName     string `db:"service_name" json:"serviceName"`
	ServiceCategory string `db:"service_category" json:"serviceCategory"`
}

type CreateBookingRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,min=10"`
	Service string `json:"service" binding:"required,min=1"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Notes   string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateBookingResponse struct {
	Success bool     `json:"success"`
	Booking *Booking `json:"booking"`
}

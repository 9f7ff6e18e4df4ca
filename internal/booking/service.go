package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cldxciv/ascendcare/internal/catalog"
	"github.com/cldxciv/ascendcare/internal/email"
	"github.com/cldxciv/ascendcare/internal/logger"
	"github.com/cldxciv/ascendcare/internal/metrics"
)

var (
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrInvalidDate   = errors.New("invalid date")
)

type Service interface {
	Create(ctx context.Context, req *CreateBookingRequest) (*Booking, error)
	List(ctx context.Context) ([]BookingWithService, error)
	UpdateStatus(ctx context.Context, id int, status string) (*Booking, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo    Repository
	catalog catalog.Catalog
	email   *email.Service
}

func NewService(repo Repository, cat catalog.Catalog, emailService *email.Service) Service {
	return &service{repo: repo, catalog: cat, email: emailService}
}

// Create resolves the requested service by name, combines the date string and
// the 12-hour label into a timestamp, and writes the booking together with
// the slot flip in one transaction.
func (s *service) Create(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	svc, err := s.catalog.FindOrCreateByName(ctx, req.Service)
	if err != nil {
		return nil, err
	}

	startsAt, err := CombineDateTime(req.Date, req.Time)
	if err != nil {
		if errors.Is(err, ErrInvalidTimeLabel) {
			return nil, err
		}
		return nil, ErrInvalidDate
	}
	slotDate, err := ParseSlotDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}

	b := &Booking{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		ServiceID: svc.ID,
		StartsAt:  startsAt,
		Time:      req.Time,
		Status:    StatusPending,
		Notes:     notes,
	}

	created, err := s.repo.CreateWithSlot(ctx, b, slotDate)
	if err != nil {
		return nil, err
	}

	metrics.RecordBooking(svc.Name)

	// Confirmation emails go through the queue; a broken mail path must not
	// fail the booking that already committed.
	if err := s.email.SendBookingReceived(ctx, created.Email, created.Name, svc.Name, req.Date, req.Time); err != nil {
		logger.WithError(err).Error("failed to queue booking confirmation email")
	}
	if err := s.email.SendClinicNotification(ctx, created.Name, created.Email, created.Phone, svc.Name, req.Date, req.Time); err != nil {
		logger.WithError(err).Error("failed to queue clinic notification email")
	}

	return created, nil
}

func (s *service) List(ctx context.Context) ([]BookingWithService, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id int, status string) (*Booking, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if current.Status == status {
		return &current.Booking, nil
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	metrics.RecordBookingStatusChange(status)

	dateLabel := updated.StartsAt.Format("2006-01-02")
	if err := s.email.SendStatusUpdate(ctx, updated.Email, updated.Name, current.ServiceName, dateLabel, updated.Time, status); err != nil {
		logger.WithError(err).Error("failed to queue status update email")
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		return err
	}
	return nil
}

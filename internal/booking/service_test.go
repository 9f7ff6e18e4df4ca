package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cldxciv/ascendcare/internal/catalog"
	"github.com/cldxciv/ascendcare/internal/email"
)

type MockBookingRepo struct{ mock.Mock }
type MockCatalog struct{ mock.Mock }

func (m *MockBookingRepo) CreateWithSlot(ctx context.Context, b *Booking, slotDate time.Time) (*Booking, error) {
	args := m.Called(ctx, b, slotDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int) (*BookingWithService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BookingWithService), args.Error(1)
}

func (m *MockBookingRepo) List(ctx context.Context) ([]BookingWithService, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookingWithService), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int, status string) (*Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalog) Create(ctx context.Context, req catalog.CreateServiceRequest) (*catalog.Service, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockCatalog) Update(ctx context.Context, id int, req catalog.UpdateServiceRequest) (*catalog.Service, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockCatalog) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalog) GetBySlug(ctx context.Context, slug string) (*catalog.Service, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockCatalog) ListAll(ctx context.Context) ([]catalog.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Service), args.Error(1)
}

func (m *MockCatalog) ListActive(ctx context.Context) ([]catalog.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Service), args.Error(1)
}

func (m *MockCatalog) FindOrCreateByName(ctx context.Context, name string) (*catalog.Service, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func newTestEmailService() *email.Service {
	return email.New("noreply@test.com", "Test Clinic", "clinic@test.com", "localhost", "1025", "", "", "localhost:6379")
}

func TestCreateBooking(t *testing.T) {
	repo := new(MockBookingRepo)
	cat := new(MockCatalog)
	svc := NewService(repo, cat, newTestEmailService())

	therapy := &catalog.Service{ID: 3, Name: "Speech Therapy"}
	cat.On("FindOrCreateByName", mock.Anything, "Speech Therapy").Return(therapy, nil)

	slotDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	created := &Booking{ID: 1, Name: "Jane Doe", Status: StatusPending, ServiceID: 3}
	repo.On("CreateWithSlot", mock.Anything, mock.MatchedBy(func(b *Booking) bool {
		return b.ServiceID == 3 &&
			b.Status == StatusPending &&
			b.StartsAt.Equal(time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)) &&
			b.Time == "2:00 PM" &&
			b.Notes == nil
	}), slotDate).Return(created, nil)

	got, err := svc.Create(context.Background(), &CreateBookingRequest{
		Name:    "Jane Doe",
		Email:   "jane@test.com",
		Phone:   "5551234567",
		Service: "Speech Therapy",
		Date:    "2026-03-15",
		Time:    "2:00 PM",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, got.ID)
	repo.AssertExpectations(t)
	cat.AssertExpectations(t)
}

func TestCreateBooking_InvalidTime(t *testing.T) {
	repo := new(MockBookingRepo)
	cat := new(MockCatalog)
	svc := NewService(repo, cat, newTestEmailService())

	cat.On("FindOrCreateByName", mock.Anything, "Speech Therapy").Return(&catalog.Service{ID: 3, Name: "Speech Therapy"}, nil)

	_, err := svc.Create(context.Background(), &CreateBookingRequest{
		Name:    "Jane Doe",
		Email:   "jane@test.com",
		Phone:   "5551234567",
		Service: "Speech Therapy",
		Date:    "2026-03-15",
		Time:    "not a time",
	})

	assert.ErrorIs(t, err, ErrInvalidTimeLabel)
	repo.AssertNotCalled(t, "CreateWithSlot")
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	repo := new(MockBookingRepo)
	cat := new(MockCatalog)
	svc := NewService(repo, cat, newTestEmailService())

	cat.On("FindOrCreateByName", mock.Anything, "Speech Therapy").Return(&catalog.Service{ID: 3, Name: "Speech Therapy"}, nil)

	_, err := svc.Create(context.Background(), &CreateBookingRequest{
		Name:    "Jane Doe",
		Email:   "jane@test.com",
		Phone:   "5551234567",
		Service: "Speech Therapy",
		Date:    "15-03-2026",
		Time:    "2:00 PM",
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
	repo.AssertNotCalled(t, "CreateWithSlot")
}

func TestCreateBooking_RepoError(t *testing.T) {
	repo := new(MockBookingRepo)
	cat := new(MockCatalog)
	svc := NewService(repo, cat, newTestEmailService())

	cat.On("FindOrCreateByName", mock.Anything, "Speech Therapy").Return(&catalog.Service{ID: 3, Name: "Speech Therapy"}, nil)
	repo.On("CreateWithSlot", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Create(context.Background(), &CreateBookingRequest{
		Name:    "Jane Doe",
		Email:   "jane@test.com",
		Phone:   "5551234567",
		Service: "Speech Therapy",
		Date:    "2026-03-15",
		Time:    "2:00 PM",
	})

	assert.Error(t, err)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := new(MockBookingRepo)
	svc := NewService(repo, new(MockCatalog), newTestEmailService())

	_, err := svc.UpdateStatus(context.Background(), 1, "SHIPPED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestUpdateStatus_NoChange(t *testing.T) {
	repo := new(MockBookingRepo)
	svc := NewService(repo, new(MockCatalog), newTestEmailService())

	current := &BookingWithService{
		Booking:     Booking{ID: 1, Status: StatusConfirmed},
		ServiceName: "Speech Therapy",
	}
	repo.On("GetByID", mock.Anything, 1).Return(current, nil)

	got, err := svc.UpdateStatus(context.Background(), 1, StatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, got.Status)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestUpdateStatus_Confirms(t *testing.T) {
	repo := new(MockBookingRepo)
	svc := NewService(repo, new(MockCatalog), newTestEmailService())

	current := &BookingWithService{
		Booking:     Booking{ID: 1, Status: StatusPending, Email: "jane@test.com", Name: "Jane Doe", Time: "2:00 PM"},
		ServiceName: "Speech Therapy",
	}
	updated := &Booking{ID: 1, Status: StatusConfirmed, Email: "jane@test.com", Name: "Jane Doe", Time: "2:00 PM"}

	repo.On("GetByID", mock.Anything, 1).Return(current, nil)
	repo.On("UpdateStatus", mock.Anything, 1, StatusConfirmed).Return(updated, nil)

	got, err := svc.UpdateStatus(context.Background(), 1, StatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, got.Status)
	repo.AssertExpectations(t)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	repo := new(MockBookingRepo)
	svc := NewService(repo, new(MockCatalog), newTestEmailService())

	repo.On("Delete", mock.Anything, 42).Return(ErrBookingNotFound)

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListBookings(t *testing.T) {
	repo := new(MockBookingRepo)
	svc := NewService(repo, new(MockCatalog), newTestEmailService())

	rows := []BookingWithService{
		{Booking: Booking{ID: 2, Name: "Sam"}, ServiceName: "OT", ServiceCategory: "Therapy"},
		{Booking: Booking{ID: 1, Name: "Jane"}, ServiceName: "Speech Therapy", ServiceCategory: "Therapy"},
	}
	repo.On("List", mock.Anything).Return(rows, nil)

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Sam", got[0].Name)
}

package slot

import (
	"context"
	"errors"
	"time"

	"github.com/cldxciv/ascendcare/internal/metrics"
)

var ErrInvalidDate = errors.New("invalid date")

const generatedDays = 7

type Service interface {
	Create(ctx context.Context, req CreateSlotRequest) (*TimeSlot, error)
	List(ctx context.Context, dateStr string) ([]TimeSlot, error)
	ListAvailable(ctx context.Context, dateStr string) ([]TimeSlot, error)
	SetAvailability(ctx context.Context, id int, available bool) (*TimeSlot, error)
	Delete(ctx context.Context, id int) error
	GenerateWeek(ctx context.Context, startDateStr string) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateSlotRequest) (*TimeSlot, error) {
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return s.repo.Create(ctx, date, req.Time, true)
}

func (s *service) List(ctx context.Context, dateStr string) ([]TimeSlot, error) {
	if dateStr == "" {
		return s.repo.List(ctx, nil)
	}

	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return s.repo.List(ctx, &date)
}

func (s *service) ListAvailable(ctx context.Context, dateStr string) ([]TimeSlot, error) {
	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return s.repo.ListAvailable(ctx, date)
}

func (s *service) SetAvailability(ctx context.Context, id int, available bool) (*TimeSlot, error) {
	slot, err := s.repo.SetAvailability(ctx, id, available)
	if err != nil {
		return nil, ErrSlotNotFound
	}
	return slot, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// GenerateWeek builds the full schedule grid for seven days starting at the
// given date and inserts the pairs that do not exist yet.
func (s *service) GenerateWeek(ctx context.Context, startDateStr string) (int, error) {
	startDate, err := ParseDate(startDateStr)
	if err != nil {
		return 0, ErrInvalidDate
	}

	slots := WeekGrid(startDate)

	created, err := s.repo.InsertMissing(ctx, slots)
	if err != nil {
		return created, err
	}

	metrics.RecordSlotsGenerated(created)
	return created, nil
}

// WeekGrid returns the seven-day slot grid starting at startDate, one entry
// per DailyTimes label per day, all available.
func WeekGrid(startDate time.Time) []TimeSlot {
	slots := make([]TimeSlot, 0, generatedDays*len(DailyTimes))
	for day := 0; day < generatedDays; day++ {
		date := startDate.AddDate(0, 0, day)
		for _, label := range DailyTimes {
			slots = append(slots, TimeSlot{
				Date:      date,
				Time:      label,
				Available: true,
			})
		}
	}
	return slots
}

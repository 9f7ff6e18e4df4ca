package slot

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, date time.Time, timeLabel string, available bool) (*TimeSlot, error) {
	args := m.Called(ctx, date, timeLabel, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TimeSlot), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, date *time.Time) ([]TimeSlot, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TimeSlot), args.Error(1)
}

func (m *MockRepository) ListAvailable(ctx context.Context, date time.Time) ([]TimeSlot, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TimeSlot), args.Error(1)
}

func (m *MockRepository) SetAvailability(ctx context.Context, id int, available bool) (*TimeSlot, error) {
	args := m.Called(ctx, id, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TimeSlot), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) InsertMissing(ctx context.Context, slots []TimeSlot) (int, error) {
	args := m.Called(ctx, slots)
	return args.Int(0), args.Error(1)
}

func TestWeekGrid(t *testing.T) {
	start, err := ParseDate("2025-01-06")
	require.NoError(t, err)

	slots := WeekGrid(start)

	assert.Len(t, slots, 7*len(DailyTimes))

	// every (date, time) pair is distinct
	seen := make(map[string]bool)
	for _, s := range slots {
		key := fmt.Sprintf("%s|%s", s.Date.Format("2006-01-02"), s.Time)
		assert.False(t, seen[key], "duplicate pair %s", key)
		seen[key] = true
		assert.True(t, s.Available)
	}

	assert.Equal(t, "2025-01-06", slots[0].Date.Format("2006-01-02"))
	assert.Equal(t, "9:00 AM", slots[0].Time)
	last := slots[len(slots)-1]
	assert.Equal(t, "2025-01-12", last.Date.Format("2006-01-02"))
	assert.Equal(t, "5:00 PM", last.Time)
}

func TestGenerateWeek(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	mockRepo.On("InsertMissing", mock.Anything, mock.MatchedBy(func(slots []TimeSlot) bool {
		return len(slots) == 63
	})).Return(63, nil)

	created, err := svc.GenerateWeek(context.Background(), "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, 63, created)
	mockRepo.AssertExpectations(t)
}

func TestGenerateWeek_InvalidDate(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	_, err := svc.GenerateWeek(context.Background(), "06/01/2025")
	assert.Equal(t, ErrInvalidDate, err)
	mockRepo.AssertNotCalled(t, "InsertMissing")
}

func TestListAvailable_InvalidDate(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	_, err := svc.ListAvailable(context.Background(), "tomorrow")
	assert.Equal(t, ErrInvalidDate, err)
}

func TestList_NoFilter(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	mockRepo.On("List", mock.Anything, (*time.Time)(nil)).Return([]TimeSlot{}, nil)

	_, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

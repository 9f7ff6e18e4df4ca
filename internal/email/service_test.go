package email

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(rdb *redis.Client) *Service {
	return &Service{
		redis:       rdb,
		from:        "noreply@ascendcare.local",
		fromName:    "AscendCare",
		clinicInbox: "bookings@ascendcare.local",
		smtpHost:    "smtp.test.com",
		smtpPort:    "587",
		smtpUser:    "test@example.com",
		smtpPass:    "password",
	}
}

func TestSend(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.Send(ctx, "jane@x.com", "Jane Doe", "Hello", "Test body")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendBookingReceived(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.SendBookingReceived(ctx, "jane@x.com", "Jane Doe", "1:1 ABA Therapy", "2025-01-10", "10:00 AM")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendStatusUpdate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.SendStatusUpdate(ctx, "jane@x.com", "Jane Doe", "1:1 ABA Therapy", "2025-01-10", "10:00 AM", "CONFIRMED")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendClinicNotification(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.SendClinicNotification(ctx, "Jane Doe", "jane@x.com", "9055551234", "1:1 ABA Therapy", "2025-01-10", "10:00 AM")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendClinicNotification_NoInboxConfigured(t *testing.T) {
	db, mock := redismock.NewClientMock()

	svc := newTestService(db)
	svc.clinicInbox = ""

	err := svc.SendClinicNotification(context.Background(), "Jane Doe", "jane@x.com", "9055551234", "1:1 ABA Therapy", "2025-01-10", "10:00 AM")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailJobRoundTrip(t *testing.T) {
	job := EmailJob{
		To:      "jane@x.com",
		Name:    "Jane Doe",
		Subject: "Booking CONFIRMED - 1:1 ABA Therapy",
		Body:    "body",
		Tries:   1,
	}

	data, err := json.Marshal(job)
	require.NoError(t, err)

	var decoded EmailJob
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, job.To, decoded.To)
	assert.Equal(t, job.Tries, decoded.Tries)
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()

	mock.ExpectLLen(queueKey).SetVal(4)

	svc := newTestService(db)
	assert.Equal(t, int64(4), svc.QueueLength(context.Background()))
}

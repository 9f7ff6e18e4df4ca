package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("POST", "/api/bookings", "201", 0.25)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/bookings", "201"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("GET", "/api/slots/available", "200", 0.1)
	RecordHTTPRequest("GET", "/api/slots/available", "200", 0.2)
	RecordHTTPRequest("GET", "/api/slots/available", "400", 0.05)

	okCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/slots/available", "200"))
	badCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/slots/available", "400"))

	assert.Equal(t, float64(2), okCount)
	assert.Equal(t, float64(1), badCount)
}

func TestRecordBooking(t *testing.T) {
	BookingsTotal.Reset()

	RecordBooking("1:1 ABA Therapy")
	RecordBooking("1:1 ABA Therapy")
	RecordBooking("Social Skills Groups")

	abaCount := testutil.ToFloat64(BookingsTotal.WithLabelValues("1:1 ABA Therapy"))
	groupCount := testutil.ToFloat64(BookingsTotal.WithLabelValues("Social Skills Groups"))

	assert.Equal(t, float64(2), abaCount)
	assert.Equal(t, float64(1), groupCount)
}

func TestRecordBookingStatusChange(t *testing.T) {
	BookingStatusChangesTotal.Reset()

	RecordBookingStatusChange("CONFIRMED")
	RecordBookingStatusChange("CONFIRMED")
	RecordBookingStatusChange("CANCELLED")

	confirmed := testutil.ToFloat64(BookingStatusChangesTotal.WithLabelValues("CONFIRMED"))
	cancelled := testutil.ToFloat64(BookingStatusChangesTotal.WithLabelValues("CANCELLED"))

	assert.Equal(t, float64(2), confirmed)
	assert.Equal(t, float64(1), cancelled)
}

func TestRecordUpload(t *testing.T) {
	UploadsTotal.Reset()

	RecordUpload("success")
	RecordUpload("failed")
	RecordUpload("success")

	success := testutil.ToFloat64(UploadsTotal.WithLabelValues("success"))
	failed := testutil.ToFloat64(UploadsTotal.WithLabelValues("failed"))

	assert.Equal(t, float64(2), success)
	assert.Equal(t, float64(1), failed)
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("booking_received", "success")
	RecordEmail("booking_received", "failed")
	RecordEmail("status_update", "success")

	receivedSuccess := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_received", "success"))
	receivedFailed := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_received", "failed"))
	statusSuccess := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("status_update", "success"))

	assert.Equal(t, float64(1), receivedSuccess)
	assert.Equal(t, float64(1), receivedFailed)
	assert.Equal(t, float64(1), statusSuccess)
}

func TestEmailQueueLength(t *testing.T) {
	EmailQueueLength.Set(10)
	assert.Equal(t, float64(10), testutil.ToFloat64(EmailQueueLength))

	EmailQueueLength.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(EmailQueueLength))
}

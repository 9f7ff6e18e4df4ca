package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ascendcare_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ascendcare_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ascendcare_bookings_total",
			Help: "Total number of bookings created",
		},
		[]string{"service"},
	)

	BookingStatusChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ascendcare_booking_status_changes_total",
			Help: "Total number of admin booking status changes",
		},
		[]string{"status"},
	)

	SlotsGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ascendcare_slots_generated_total",
			Help: "Total number of time slots created by bulk generation",
		},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ascendcare_uploads_total",
			Help: "Total number of file uploads",
		},
		[]string{"status"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ascendcare_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ascendcare_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(service string) {
	BookingsTotal.WithLabelValues(service).Inc()
}

func RecordBookingStatusChange(status string) {
	BookingStatusChangesTotal.WithLabelValues(status).Inc()
}

func RecordSlotsGenerated(n int) {
	SlotsGeneratedTotal.Add(float64(n))
}

func RecordUpload(status string) {
	UploadsTotal.WithLabelValues(status).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

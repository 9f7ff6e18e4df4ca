package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cldxciv/ascendcare/internal/logger"
	"github.com/cldxciv/ascendcare/internal/metrics"
)

const (
	queueKey       = "emails"
	failedQueueKey = "emails:failed"
	maxTries       = 3
)

type EmailJob struct {
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis       *redis.Client
	from        string
	fromName    string
	clinicInbox string
	smtpHost    string
	smtpPort    string
	smtpUser    string
	smtpPass    string
}

func New(fromEmail, fromName, clinicInbox, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:        fromEmail,
		fromName:    fromName,
		clinicInbox: clinicInbox,
		smtpHost:    smtpHost,
		smtpPort:    smtpPort,
		smtpUser:    smtpUser,
		smtpPass:    smtpPass,
	}
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	job := EmailJob{
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Tries:   0,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		return err
	}

	metrics.EmailQueueLength.Set(float64(s.QueueLength(ctx)))
	logger.Infof("Email queued: %s to %s", subject, to)
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Email service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	metrics.EmailQueueLength.Set(float64(s.QueueLength(ctx)))

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	logger.Infof("Sending email to %s (attempt %d)", job.To, job.Tries)
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < maxTries {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			logger.Infof("Retrying email to %s (attempt %d)", job.To, job.Tries+1)
		} else {
			logger.Errorf("Email to %s failed after %d attempts", job.To, maxTries)
			metrics.RecordEmail("delivery", "failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordEmail("delivery", "success")
	logger.Infof("Email sent successfully to %s", job.To)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedQueueKey, data)
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) SendBookingReceived(ctx context.Context, to, name, serviceName, dateLabel, timeLabel string) error {
	subject := "We received your booking request - " + serviceName
	body := fmt.Sprintf(`Hi %s,

Thank you for booking with AscendCare!

Program: %s
Date: %s
Time: %s

Your request is pending review. We will confirm your appointment shortly.

- The AscendCare Team`, name, serviceName, dateLabel, timeLabel)

	return s.Send(ctx, to, name, subject, body)
}

func (s *Service) SendStatusUpdate(ctx context.Context, to, name, serviceName, dateLabel, timeLabel, status string) error {
	subject := fmt.Sprintf("Booking %s - %s", status, serviceName)
	body := fmt.Sprintf(`Hi %s,

There is an update on your booking:

Program: %s
Date: %s
Time: %s
Status: %s

If you have questions, reply to this email and we will help.

- The AscendCare Team`, name, serviceName, dateLabel, timeLabel, status)

	return s.Send(ctx, to, name, subject, body)
}

// SendClinicNotification alerts the clinic inbox about a new booking request.
func (s *Service) SendClinicNotification(ctx context.Context, clientName, clientEmail, clientPhone, serviceName, dateLabel, timeLabel string) error {
	if s.clinicInbox == "" {
		return nil
	}

	subject := "New booking request - " + serviceName
	body := fmt.Sprintf(`A new booking request came in:

Client: %s
Email: %s
Phone: %s
Program: %s
Date: %s
Time: %s

Review it in the admin dashboard.`, clientName, clientEmail, clientPhone, serviceName, dateLabel, timeLabel)

	return s.Send(ctx, s.clinicInbox, "Clinic", subject, body)
}

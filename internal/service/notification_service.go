package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fmontiron/portfolio-api/internal/models"
	"github.com/fmontiron/portfolio-api/pkg/jobs"
	"github.com/fmontiron/portfolio-api/pkg/mailer"
)

const jobTypeContactEmail = "contact_email"

// NotificationService dispatches best-effort email notifications on a
// background queue. It is its own failure domain: a failed send is
// retried by the queue and then logged, never reported to the submitter.
type NotificationService struct {
	queue  *jobs.Queue
	mail   mailer.Mailer
	logger *zap.Logger
}

// NewNotificationService wires the mailer behind a worker queue. A nil
// mailer disables delivery (no provider key configured) while keeping
// the contact flow unchanged.
func NewNotificationService(mail mailer.Mailer, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &NotificationService{mail: mail, logger: logger}
	s.queue = jobs.NewQueue("notifications", s.handle, jobs.QueueConfig{
		Workers:    1,
		MaxRetries: 2,
		Logger:     logger,
	})
	return s
}

// Start launches the queue workers.
func (s *NotificationService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the queue workers.
func (s *NotificationService) Stop() {
	s.queue.Stop()
}

// NotifyContact enqueues a notification for a stored contact message.
// Errors are logged and swallowed; the caller has already committed.
func (s *NotificationService) NotifyContact(m models.ContactMessage) {
	if s.mail == nil {
		s.logger.Debug("mail provider not configured, skipping contact notification")
		return
	}
	err := s.queue.Enqueue(jobs.Job{
		ID:      uuid.NewString(),
		Type:    jobTypeContactEmail,
		Payload: m,
	})
	if err != nil {
		s.logger.Warn("failed to enqueue contact notification", zap.Error(err))
	}
}

func (s *NotificationService) handle(ctx context.Context, job jobs.Job) error {
	m, ok := job.Payload.(models.ContactMessage)
	if !ok {
		s.logger.Error("unexpected notification payload", zap.String("type", job.Type))
		return nil
	}

	reason := "not specified"
	if m.Reason != nil && *m.Reason != "" {
		reason = *m.Reason
	}

	msg := mailer.Message{
		Subject: fmt.Sprintf("New portfolio contact from %s", m.Name),
		Text: fmt.Sprintf("Name: %s\nEmail: %s\nReason: %s\n\n%s",
			m.Name, m.Email, reason, m.Message),
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		return err
	}

	s.logger.Info("contact notification sent", zap.Int64("message_id", m.ID))
	return nil
}

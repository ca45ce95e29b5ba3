package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fmontiron/portfolio-api/internal/dto"
	"github.com/fmontiron/portfolio-api/internal/models"
	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
)

type contactRepository interface {
	Create(ctx context.Context, m *models.ContactMessage) error
	List(ctx context.Context) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id int64) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type contactNotifier interface {
	NotifyContact(m models.ContactMessage)
}

// ContactService handles public submissions and admin message management.
type ContactService struct {
	repo      contactRepository
	notifier  contactNotifier
	validator *validator.Validate
	logger    *zap.Logger
}

// NewContactService constructs a ContactService instance. The notifier
// may be nil when no outbound provider is configured.
func NewContactService(repo contactRepository, notifier contactNotifier, validate *validator.Validate, logger *zap.Logger) *ContactService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{repo: repo, notifier: notifier, validator: validate, logger: logger}
}

// Create validates and persists a submission, then hands the stored
// message to the notifier. The notification can never fail or delay the
// response: the write has already committed when it is dispatched.
func (s *ContactService) Create(ctx context.Context, req dto.CreateContactRequest) (*models.ContactMessage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "name, email and message are required")
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if req.Reason != "" {
		reason := req.Reason
		message.Reason = &reason
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save message")
	}

	s.logger.Info("contact message received",
		zap.Int64("id", message.ID),
		zap.String("name", message.Name))

	if s.notifier != nil {
		s.notifier.NotifyContact(*message)
	}
	return message, nil
}

// List returns all messages, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch messages")
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	return messages, nil
}

// MarkRead flips the read flag on a message.
func (s *ContactService) MarkRead(ctx context.Context, id int64) error {
	affected, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update message")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "message not found")
	}
	return nil
}

// Delete removes a message.
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete message")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "message not found")
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/repository"
	"github.com/sefazor/ttravel-backend/pkg/email"
	"github.com/sefazor/ttravel-backend/pkg/events"
	"github.com/sefazor/ttravel-backend/pkg/utils"
	"go.uber.org/zap"
)

type ContactService struct {
	contactRepo repository.ContactRepository
	contentRepo repository.ContentRepository
	mailer      email.Mailer
	publisher   events.Publisher
	validator   *utils.Validator
	logger      *zap.Logger
	async       runner
}

func NewContactService(
	contactRepo repository.ContactRepository,
	contentRepo repository.ContentRepository,
	mailer email.Mailer,
	publisher events.Publisher,
	validator *utils.Validator,
	logger *zap.Logger,
) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		contentRepo: contentRepo,
		mailer:      mailer,
		publisher:   publisher,
		validator:   validator,
		logger:      logger.Named("contact"),
		async:       goroutine,
	}
}

// Submit stores a contact form submission as pending and notifies the agency.
// Notification failures are logged and never reach the submitter.
func (s *ContactService) Submit(ctx context.Context, req models.CreateContactRequest) (*models.ContactSubmission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	submission := models.ContactSubmission{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.ContactPending,
	}
	if err := s.contactRepo.Create(ctx, &submission); err != nil {
		return nil, err
	}
	s.logger.Info("contact submission received", zap.String("id", submission.ID))

	saved := submission
	bg, cancel := detach(ctx)
	s.async(func() {
		defer cancel()
		s.notify(bg, saved)
	})
	return &submission, nil
}

func (s *ContactService) notify(ctx context.Context, submission models.ContactSubmission) {
	err := s.publisher.Publish(ctx, events.ContactSubmitted, events.ContactSubmittedEvent{
		SubmissionID: submission.ID,
		Email:        submission.Email,
		Subject:      submission.Subject,
		CreatedAt:    submission.CreatedAt,
	})
	if err != nil {
		s.logger.Warn("failed to publish contact event", zap.String("id", submission.ID), zap.Error(err))
	}

	to := contentValue(ctx, s.contentRepo, "contact.email", "")
	if to == "" {
		return
	}
	err = s.mailer.SendContactNotification(ctx, to, email.ContactNotice{
		SiteName:    contentValue(ctx, s.contentRepo, "site.name", defaultSiteName),
		FirstName:   submission.FirstName,
		LastName:    submission.LastName,
		Email:       submission.Email,
		Subject:     submission.Subject,
		Message:     submission.Message,
		SubmittedAt: submission.CreatedAt,
	})
	if err != nil {
		s.logger.Warn("failed to send contact notification", zap.String("id", submission.ID), zap.Error(err))
	}
}

// List returns every submission, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.ContactSubmission, error) {
	return s.contactRepo.List(ctx)
}

// SetStatus applies a status change. Submissions only ever move from pending
// to responded; asking for pending leaves a pending submission untouched and
// is rejected once it has been responded to.
func (s *ContactService) SetStatus(ctx context.Context, id string, req models.UpdateContactStatusRequest) (*models.ContactSubmission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if req.Status == models.ContactResponded {
		return s.MarkResponded(ctx, id)
	}

	current, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != req.Status {
		return nil, utils.ValidationErrors{{
			Field:   "status",
			Problem: fmt.Sprintf("cannot change from %s to %s", current.Status, req.Status),
		}}
	}
	return current, nil
}

// MarkResponded moves a submission to responded. Repeating it is harmless.
func (s *ContactService) MarkResponded(ctx context.Context, id string) (*models.ContactSubmission, error) {
	return s.contactRepo.SetStatus(ctx, id, models.ContactResponded)
}

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/repository"
	"github.com/sefazor/ttravel-backend/pkg/email"
	"github.com/sefazor/ttravel-backend/pkg/events"
	"github.com/sefazor/ttravel-backend/pkg/utils"
	"go.uber.org/zap"
)

type NewsletterService struct {
	newsletterRepo repository.NewsletterRepository
	contentRepo    repository.ContentRepository
	mailer         email.Mailer
	publisher      events.Publisher
	validator      *utils.Validator
	logger         *zap.Logger
	async          runner
}

func NewNewsletterService(
	newsletterRepo repository.NewsletterRepository,
	contentRepo repository.ContentRepository,
	mailer email.Mailer,
	publisher events.Publisher,
	validator *utils.Validator,
	logger *zap.Logger,
) *NewsletterService {
	return &NewsletterService{
		newsletterRepo: newsletterRepo,
		contentRepo:    contentRepo,
		mailer:         mailer,
		publisher:      publisher,
		validator:      validator,
		logger:         logger.Named("newsletter"),
		async:          goroutine,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Subscribe adds the email to the list. An inactive subscription for the same
// email is reactivated and an active one is returned unchanged.
func (s *NewsletterService) Subscribe(ctx context.Context, req models.SubscribeRequest) (*models.NewsletterSubscription, repository.SubscribeOutcome, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, 0, err
	}

	sub, outcome, err := s.newsletterRepo.Subscribe(ctx, req.Email)
	if err != nil {
		return nil, 0, err
	}
	if outcome == repository.SubscribeExisting {
		return sub, outcome, nil
	}

	s.logger.Info("newsletter subscription", zap.String("id", sub.ID), zap.Bool("reactivated", outcome == repository.SubscribeReactivated))

	saved := *sub
	bg, cancel := detach(ctx)
	s.async(func() {
		defer cancel()
		s.welcome(bg, saved, outcome == repository.SubscribeReactivated)
	})
	return sub, outcome, nil
}

func (s *NewsletterService) welcome(ctx context.Context, sub models.NewsletterSubscription, reactivated bool) {
	err := s.publisher.Publish(ctx, events.NewsletterSubscribed, events.NewsletterSubscribedEvent{
		SubscriptionID: sub.ID,
		Email:          sub.Email,
		Reactivated:    reactivated,
	})
	if err != nil {
		s.logger.Warn("failed to publish newsletter event", zap.String("id", sub.ID), zap.Error(err))
	}

	err = s.mailer.SendNewsletterWelcome(ctx, email.Welcome{
		SiteName: contentValue(ctx, s.contentRepo, "site.name", defaultSiteName),
		Email:    sub.Email,
	})
	if err != nil {
		s.logger.Warn("failed to send newsletter welcome", zap.String("id", sub.ID), zap.Error(err))
	}
}

// Unsubscribe deactivates the subscription for email. Unknown emails are not
// an error so callers cannot learn who is on the list.
func (s *NewsletterService) Unsubscribe(ctx context.Context, req models.SubscribeRequest) error {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	sub, err := s.newsletterRepo.GetByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.newsletterRepo.SetActive(ctx, sub.ID, false)
}

// List returns active subscriptions in sign-up order.
func (s *NewsletterService) List(ctx context.Context) ([]models.NewsletterSubscription, error) {
	return s.newsletterRepo.List(ctx, false)
}

// Deactivate soft-deletes a subscription by id.
func (s *NewsletterService) Deactivate(ctx context.Context, id string) error {
	return s.newsletterRepo.SetActive(ctx, id, false)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/repository"
	"github.com/sefazor/ttravel-backend/pkg/utils"
	"go.uber.org/zap"
)

type ContentService struct {
	contentRepo repository.ContentRepository
	validator   *utils.Validator
	logger      *zap.Logger
}

func NewContentService(contentRepo repository.ContentRepository, validator *utils.Validator, logger *zap.Logger) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		validator:   validator,
		logger:      logger.Named("content"),
	}
}

func (s *ContentService) List(ctx context.Context) ([]models.Content, error) {
	return s.contentRepo.List(ctx)
}

// Map flattens the content store into key -> value.
func (s *ContentService) Map(ctx context.Context) (map[string]string, error) {
	content, err := s.contentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(content))
	for _, c := range content {
		out[c.Key] = c.Value
	}
	return out, nil
}

// Update upserts every pair. The whole batch is validated first, so a bad
// entry means nothing is written.
func (s *ContentService) Update(ctx context.Context, updates []models.ContentUpdate) ([]models.Content, error) {
	var problems utils.ValidationErrors
	entries := make([]models.ContentEntry, 0, len(updates))
	for i, u := range updates {
		if err := s.validator.Struct(u); err != nil {
			var verrs utils.ValidationErrors
			if !errors.As(err, &verrs) {
				return nil, err
			}
			problems = append(problems, verrs.Prefix(fmt.Sprintf("[%d]", i))...)
			continue
		}
		entries = append(entries, u.Entry())
	}
	if len(problems) > 0 {
		return nil, problems
	}

	content, err := s.contentRepo.Upsert(ctx, entries)
	if err != nil {
		return nil, err
	}
	s.logger.Info("content updated", zap.Int("keys", len(content)))
	return content, nil
}

package service

import (
	"context"

	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/repository"
	"github.com/sefazor/ttravel-backend/pkg/utils"
	"go.uber.org/zap"
)

type DestinationService struct {
	destinationRepo repository.DestinationRepository
	validator       *utils.Validator
	logger          *zap.Logger
}

func NewDestinationService(destinationRepo repository.DestinationRepository, validator *utils.Validator, logger *zap.Logger) *DestinationService {
	return &DestinationService{
		destinationRepo: destinationRepo,
		validator:       validator,
		logger:          logger.Named("destination"),
	}
}

func (s *DestinationService) List(ctx context.Context, includeInactive bool) ([]models.Destination, error) {
	return s.destinationRepo.List(ctx, models.DestinationFilter{IncludeInactive: includeInactive})
}

// ListByType lists active destinations of one type. Any type other than
// domestic or international is a validation error.
func (s *DestinationService) ListByType(ctx context.Context, typ string) ([]models.Destination, error) {
	t := models.DestinationType(typ)
	if !t.Valid() {
		return nil, utils.ValidationErrors{{Field: "type", Problem: "must be one of: domestic, international"}}
	}
	return s.destinationRepo.List(ctx, models.DestinationFilter{Type: t})
}

// Get returns the destination whether or not it is active.
func (s *DestinationService) Get(ctx context.Context, id string) (*models.Destination, error) {
	return s.destinationRepo.GetByID(ctx, id)
}

func (s *DestinationService) Create(ctx context.Context, req models.CreateDestinationRequest) (*models.Destination, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	destination := req.Destination()
	if err := s.destinationRepo.Create(ctx, &destination); err != nil {
		return nil, err
	}
	s.logger.Info("destination created", zap.String("id", destination.ID), zap.String("name", destination.Name))
	return &destination, nil
}

// Update merges the supplied fields over the stored destination.
func (s *DestinationService) Update(ctx context.Context, id string, req models.UpdateDestinationRequest) (*models.Destination, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	return s.destinationRepo.Update(ctx, id, req.Apply)
}

// Delete hides the destination from listings. The row is kept.
func (s *DestinationService) Delete(ctx context.Context, id string) error {
	if err := s.destinationRepo.SetActive(ctx, id, false); err != nil {
		return err
	}
	s.logger.Info("destination deactivated", zap.String("id", id))
	return nil
}

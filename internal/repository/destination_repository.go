package repository

import (
	"context"

	"github.com/sefazor/ttravel-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*models.Destination, error) {
	var destination models.Destination
	if err := r.db.WithContext(ctx).First(&destination, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &destination, nil
}

func (r *destinationRepository) List(ctx context.Context, filter models.DestinationFilter) ([]models.Destination, error) {
	query := r.db.WithContext(ctx).Model(&models.Destination{})
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	destinations := []models.Destination{}
	err := query.Order("created_at ASC").Order("id ASC").Find(&destinations).Error
	return destinations, err
}

func (r *destinationRepository) Create(ctx context.Context, destination *models.Destination) error {
	return translate(r.db.WithContext(ctx).Create(destination).Error)
}

func (r *destinationRepository) Update(ctx context.Context, id string, apply func(*models.Destination)) (*models.Destination, error) {
	var destination models.Destination
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&destination, "id = ?", id).Error; err != nil {
			return err
		}
		stored := destination.ID
		apply(&destination)
		destination.ID = stored
		return tx.Save(&destination).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &destination, nil
}

func (r *destinationRepository) SetActive(ctx context.Context, id string, active bool) error {
	return requireRow(r.db.WithContext(ctx).Model(&models.Destination{}).
		Where("id = ?", id).
		Update("is_active", active))
}

package repository

import (
	"context"

	"github.com/sefazor/ttravel-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{
		db: db,
	}
}

func (r *packageRepository) GetByID(ctx context.Context, id string) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &pkg, nil
}

func (r *packageRepository) List(ctx context.Context, filter models.PackageFilter) ([]models.Package, error) {
	query := r.db.WithContext(ctx).Model(&models.Package{})
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.DestinationID != "" {
		query = query.Where("destination_id = ?", filter.DestinationID)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}

	packages := []models.Package{}
	err := query.Order("created_at ASC").Order("id ASC").Find(&packages).Error
	return packages, err
}

func (r *packageRepository) Create(ctx context.Context, pkg *models.Package) error {
	return translate(r.db.WithContext(ctx).Create(pkg).Error)
}

func (r *packageRepository) Update(ctx context.Context, id string, apply func(*models.Package)) (*models.Package, error) {
	var pkg models.Package
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&pkg, "id = ?", id).Error; err != nil {
			return err
		}
		stored := pkg.ID
		apply(&pkg)
		pkg.ID = stored
		return tx.Save(&pkg).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &pkg, nil
}

func (r *packageRepository) SetActive(ctx context.Context, id string, active bool) error {
	return requireRow(r.db.WithContext(ctx).Model(&models.Package{}).
		Where("id = ?", id).
		Update("is_active", active))
}

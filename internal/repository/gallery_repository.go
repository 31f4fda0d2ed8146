package repository

import (
	"context"

	"github.com/sefazor/ttravel-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{
		db: db,
	}
}

func (r *galleryRepository) GetByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &image, nil
}

func (r *galleryRepository) List(ctx context.Context, approvedOnly bool) ([]models.GalleryImage, error) {
	query := r.db.WithContext(ctx).Model(&models.GalleryImage{})
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}
	images := []models.GalleryImage{}
	err := query.Order("created_at ASC").Order("id ASC").Find(&images).Error
	return images, err
}

func (r *galleryRepository) Create(ctx context.Context, image *models.GalleryImage) error {
	return translate(r.db.WithContext(ctx).Create(image).Error)
}

func (r *galleryRepository) Approve(ctx context.Context, id string) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&image, "id = ?", id).Error; err != nil {
			return err
		}
		image.IsApproved = true
		return tx.Model(&image).Update("is_approved", true).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &image, nil
}

func (r *galleryRepository) Delete(ctx context.Context, id string) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&image, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.GalleryImage{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &image, nil
}

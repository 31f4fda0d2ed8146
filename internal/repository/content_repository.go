package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sefazor/ttravel-backend/internal/models"
	"gorm.io/gorm"
)

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) List(ctx context.Context) ([]models.Content, error) {
	content := []models.Content{}
	err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&content).Error
	return content, err
}

func (r *contentRepository) GetByKey(ctx context.Context, key string) (*models.Content, error) {
	var content models.Content
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&content).Error; err != nil {
		return nil, translate(err)
	}
	return &content, nil
}

func (r *contentRepository) Upsert(ctx context.Context, entries []models.ContentEntry) ([]models.Content, error) {
	out := make([]models.Content, 0, len(entries))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for _, e := range entries {
			var content models.Content
			err := tx.Where("key = ?", e.Key).First(&content).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				content = models.Content{Key: e.Key, Value: e.Value, UpdatedAt: now, CreatedAt: now}
				if err := tx.Create(&content).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				content.Value = e.Value
				content.UpdatedAt = now
				if err := tx.Save(&content).Error; err != nil {
					return err
				}
			}
			out = append(out, content)
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

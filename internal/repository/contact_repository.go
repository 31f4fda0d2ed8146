package repository

import (
	"context"

	"github.com/sefazor/ttravel-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*models.ContactSubmission, error) {
	var submission models.ContactSubmission
	if err := r.db.WithContext(ctx).First(&submission, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &submission, nil
}

func (r *contactRepository) List(ctx context.Context) ([]models.ContactSubmission, error) {
	submissions := []models.ContactSubmission{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *contactRepository) Create(ctx context.Context, submission *models.ContactSubmission) error {
	return translate(r.db.WithContext(ctx).Create(submission).Error)
}

func (r *contactRepository) SetStatus(ctx context.Context, id string, status models.ContactStatus) (*models.ContactSubmission, error) {
	var submission models.ContactSubmission
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&submission, "id = ?", id).Error; err != nil {
			return err
		}
		submission.Status = status
		return tx.Model(&submission).Update("status", status).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &submission, nil
}

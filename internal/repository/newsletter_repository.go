package repository

import (
	"context"
	"errors"

	"github.com/sefazor/ttravel-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) GetByID(ctx context.Context, id string) (*models.NewsletterSubscription, error) {
	var sub models.NewsletterSubscription
	if err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &sub, nil
}

func (r *newsletterRepository) GetByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	var sub models.NewsletterSubscription
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, translate(err)
	}
	return &sub, nil
}

func (r *newsletterRepository) List(ctx context.Context, includeInactive bool) ([]models.NewsletterSubscription, error) {
	query := r.db.WithContext(ctx).Model(&models.NewsletterSubscription{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	subs := []models.NewsletterSubscription{}
	err := query.Order("created_at ASC").Order("id ASC").Find(&subs).Error
	return subs, err
}

func (r *newsletterRepository) Subscribe(ctx context.Context, email string) (*models.NewsletterSubscription, SubscribeOutcome, error) {
	var sub models.NewsletterSubscription
	outcome := SubscribeExisting

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("email = ?", email).First(&sub).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			sub = models.NewsletterSubscription{Email: email, IsActive: true}
			outcome = SubscribeCreated
			return tx.Create(&sub).Error
		case err != nil:
			return err
		case !sub.IsActive:
			sub.IsActive = true
			outcome = SubscribeReactivated
			return tx.Model(&sub).Update("is_active", true).Error
		}
		return nil
	})
	if err != nil {
		return nil, 0, translate(err)
	}
	return &sub, outcome, nil
}

func (r *newsletterRepository) SetActive(ctx context.Context, id string, active bool) error {
	return requireRow(r.db.WithContext(ctx).Model(&models.NewsletterSubscription{}).
		Where("id = ?", id).
		Update("is_active", active))
}

package service

import (
	"context"
	"math"
	"time"

	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/repository"
)

type StatsService struct {
	contactRepo    repository.ContactRepository
	newsletterRepo repository.NewsletterRepository
	now            func() time.Time
}

func NewStatsService(contactRepo repository.ContactRepository, newsletterRepo repository.NewsletterRepository) *StatsService {
	return &StatsService{
		contactRepo:    contactRepo,
		newsletterRepo: newsletterRepo,
		now:            time.Now,
	}
}

func (s *StatsService) Get(ctx context.Context) (*models.Stats, error) {
	contacts, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.newsletterRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(contacts, subs, s.now())
	return &stats, nil
}

// ComputeStats derives dashboard counters. Months are calendar months in
// now's location. Growth compares this month with last month as a whole
// percentage rounded half up, and is 0 when last month had nothing.
func ComputeStats(contacts []models.ContactSubmission, subs []models.NewsletterSubscription, now time.Time) models.Stats {
	thisStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastStart := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())

	contactThis, contactLast := 0, 0
	for _, c := range contacts {
		switch monthBucket(c.CreatedAt, thisStart, lastStart) {
		case 1:
			contactThis++
		case 2:
			contactLast++
		}
	}

	subsThis, subsLast := 0, 0
	for _, n := range subs {
		switch monthBucket(n.CreatedAt, thisStart, lastStart) {
		case 1:
			subsThis++
		case 2:
			subsLast++
		}
	}

	return models.Stats{
		ContactForms:        len(contacts),
		Newsletter:          len(subs),
		ThisMonth:           contactThis,
		Growth:              growth(contactThis, contactLast),
		NewsletterThisMonth: subsThis,
		NewsletterGrowth:    growth(subsThis, subsLast),
	}
}

// monthBucket returns 1 for this month, 2 for last month, 0 otherwise.
func monthBucket(t, thisStart, lastStart time.Time) int {
	switch {
	case t.IsZero():
		return 0
	case !t.Before(thisStart):
		return 1
	case !t.Before(lastStart):
		return 2
	}
	return 0
}

func growth(this, last int) int {
	if last == 0 {
		return 0
	}
	pct := float64(this-last) / float64(last) * 100
	return int(math.Floor(pct + 0.5))
}

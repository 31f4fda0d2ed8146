package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sefazor/ttravel-backend/internal/models"
)

// collection is a keyed set of records that remembers insertion order.
// Records are copied on the way in and out so callers never share memory
// with the stored value.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	order []string
	clone func(T) T
}

func newCollection[T any](clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{items: make(map[string]*T), clone: clone}
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.clone(*v), true
}

func (c *collection[T]) list(match func(*T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.listLocked(match)
}

func (c *collection[T]) listLocked(match func(*T) bool) []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		v := c.items[id]
		if match == nil || match(v) {
			out = append(out, c.clone(*v))
		}
	}
	return out
}

func (c *collection[T]) findLocked(match func(*T) bool) (*T, bool) {
	for _, id := range c.order {
		if v := c.items[id]; match(v) {
			return v, true
		}
	}
	return nil, false
}

func (c *collection[T]) insertLocked(id string, v T) {
	stored := c.clone(v)
	c.items[id] = &stored
	c.order = append(c.order, id)
}

// mutate runs fn against the stored record under the write lock.
func (c *collection[T]) mutate(id string, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(v)
	return c.clone(*v), true
}

func (c *collection[T]) remove(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return *v, true
}

func stamp(id *string, createdAt *time.Time, now time.Time) {
	if *id == "" {
		*id = models.NewID()
	}
	if createdAt.IsZero() {
		*createdAt = now
	}
}

// NewMemoryStore returns a Store whose repositories keep everything in
// process memory. Each collection serializes its own writes.
func NewMemoryStore() *Store {
	return &Store{
		Users:        &memoryUsers{c: newCollection[models.User](nil)},
		Destinations: &memoryDestinations{c: newCollection[models.Destination](nil)},
		Content:      &memoryContent{c: newCollection[models.Content](nil)},
		Contacts:     &memoryContacts{c: newCollection[models.ContactSubmission](nil)},
		Newsletter:   &memoryNewsletter{c: newCollection[models.NewsletterSubscription](nil)},
		Packages:     &memoryPackages{c: newCollection(models.Package.Clone)},
		Gallery:      &memoryGallery{c: newCollection[models.GalleryImage](nil)},
	}
}

type memoryUsers struct {
	c *collection[models.User]
}

func (r *memoryUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.c.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *memoryUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	u, ok := r.c.findLocked(func(u *models.User) bool { return u.Username == username })
	if !ok {
		return nil, ErrNotFound
	}
	found := *u
	return &found, nil
}

func (r *memoryUsers) Create(_ context.Context, user *models.User) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	if _, exists := r.c.findLocked(func(u *models.User) bool { return u.Username == user.Username }); exists {
		return ErrConflict
	}
	if user.ID == "" {
		user.ID = models.NewID()
	}
	r.c.insertLocked(user.ID, *user)
	return nil
}

func (r *memoryUsers) UpdatePassword(_ context.Context, id, password string) error {
	if _, ok := r.c.mutate(id, func(u *models.User) { u.Password = password }); !ok {
		return ErrNotFound
	}
	return nil
}

type memoryDestinations struct {
	c *collection[models.Destination]
}

func (r *memoryDestinations) GetByID(_ context.Context, id string) (*models.Destination, error) {
	d, ok := r.c.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (r *memoryDestinations) List(_ context.Context, filter models.DestinationFilter) ([]models.Destination, error) {
	return r.c.list(filter.Match), nil
}

func (r *memoryDestinations) Create(_ context.Context, d *models.Destination) error {
	stamp(&d.ID, &d.CreatedAt, time.Now())
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.insertLocked(d.ID, *d)
	return nil
}

func (r *memoryDestinations) Update(_ context.Context, id string, apply func(*models.Destination)) (*models.Destination, error) {
	d, ok := r.c.mutate(id, func(d *models.Destination) {
		stored := d.ID
		apply(d)
		d.ID = stored
	})
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (r *memoryDestinations) SetActive(_ context.Context, id string, active bool) error {
	if _, ok := r.c.mutate(id, func(d *models.Destination) { d.IsActive = active }); !ok {
		return ErrNotFound
	}
	return nil
}

type memoryContent struct {
	c *collection[models.Content]
}

func (r *memoryContent) List(_ context.Context) ([]models.Content, error) {
	return r.c.list(nil), nil
}

func (r *memoryContent) GetByKey(_ context.Context, key string) (*models.Content, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	v, ok := r.c.findLocked(func(c *models.Content) bool { return c.Key == key })
	if !ok {
		return nil, ErrNotFound
	}
	found := *v
	return &found, nil
}

func (r *memoryContent) Upsert(_ context.Context, entries []models.ContentEntry) ([]models.Content, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	now := time.Now()
	out := make([]models.Content, 0, len(entries))
	for _, e := range entries {
		if existing, ok := r.c.findLocked(func(c *models.Content) bool { return c.Key == e.Key }); ok {
			existing.Value = e.Value
			existing.UpdatedAt = now
			out = append(out, *existing)
			continue
		}
		created := models.Content{ID: models.NewID(), Key: e.Key, Value: e.Value, UpdatedAt: now, CreatedAt: now}
		r.c.insertLocked(created.ID, created)
		out = append(out, created)
	}
	return out, nil
}

type memoryContacts struct {
	c *collection[models.ContactSubmission]
}

func (r *memoryContacts) GetByID(_ context.Context, id string) (*models.ContactSubmission, error) {
	s, ok := r.c.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *memoryContacts) List(_ context.Context) ([]models.ContactSubmission, error) {
	out := r.c.list(nil)
	// Stable so equal timestamps keep reverse insertion order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryContacts) Create(_ context.Context, s *models.ContactSubmission) error {
	stamp(&s.ID, &s.CreatedAt, time.Now())
	if s.Status == "" {
		s.Status = models.ContactPending
	}
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.insertLocked(s.ID, *s)
	return nil
}

func (r *memoryContacts) SetStatus(_ context.Context, id string, status models.ContactStatus) (*models.ContactSubmission, error) {
	s, ok := r.c.mutate(id, func(s *models.ContactSubmission) { s.Status = status })
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

type memoryNewsletter struct {
	c *collection[models.NewsletterSubscription]
}

func (r *memoryNewsletter) GetByID(_ context.Context, id string) (*models.NewsletterSubscription, error) {
	s, ok := r.c.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *memoryNewsletter) GetByEmail(_ context.Context, email string) (*models.NewsletterSubscription, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	s, ok := r.c.findLocked(func(s *models.NewsletterSubscription) bool { return strings.EqualFold(s.Email, email) })
	if !ok {
		return nil, ErrNotFound
	}
	found := *s
	return &found, nil
}

func (r *memoryNewsletter) List(_ context.Context, includeInactive bool) ([]models.NewsletterSubscription, error) {
	return r.c.list(func(s *models.NewsletterSubscription) bool { return includeInactive || s.IsActive }), nil
}

func (r *memoryNewsletter) Subscribe(_ context.Context, email string) (*models.NewsletterSubscription, SubscribeOutcome, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if s, ok := r.c.findLocked(func(s *models.NewsletterSubscription) bool { return strings.EqualFold(s.Email, email) }); ok {
		outcome := SubscribeExisting
		if !s.IsActive {
			s.IsActive = true
			outcome = SubscribeReactivated
		}
		found := *s
		return &found, outcome, nil
	}

	s := models.NewsletterSubscription{ID: models.NewID(), Email: email, IsActive: true, CreatedAt: time.Now()}
	r.c.insertLocked(s.ID, s)
	return &s, SubscribeCreated, nil
}

func (r *memoryNewsletter) SetActive(_ context.Context, id string, active bool) error {
	if _, ok := r.c.mutate(id, func(s *models.NewsletterSubscription) { s.IsActive = active }); !ok {
		return ErrNotFound
	}
	return nil
}

type memoryPackages struct {
	c *collection[models.Package]
}

func (r *memoryPackages) GetByID(_ context.Context, id string) (*models.Package, error) {
	p, ok := r.c.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *memoryPackages) List(_ context.Context, filter models.PackageFilter) ([]models.Package, error) {
	return r.c.list(filter.Match), nil
}

func (r *memoryPackages) Create(_ context.Context, p *models.Package) error {
	stamp(&p.ID, &p.CreatedAt, time.Now())
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.insertLocked(p.ID, *p)
	return nil
}

func (r *memoryPackages) Update(_ context.Context, id string, apply func(*models.Package)) (*models.Package, error) {
	p, ok := r.c.mutate(id, func(p *models.Package) {
		stored := p.ID
		apply(p)
		p.ID = stored
	})
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *memoryPackages) SetActive(_ context.Context, id string, active bool) error {
	if _, ok := r.c.mutate(id, func(p *models.Package) { p.IsActive = active }); !ok {
		return ErrNotFound
	}
	return nil
}

type memoryGallery struct {
	c *collection[models.GalleryImage]
}

func (r *memoryGallery) GetByID(_ context.Context, id string) (*models.GalleryImage, error) {
	g, ok := r.c.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &g, nil
}

func (r *memoryGallery) List(_ context.Context, approvedOnly bool) ([]models.GalleryImage, error) {
	return r.c.list(func(g *models.GalleryImage) bool { return !approvedOnly || g.IsApproved }), nil
}

func (r *memoryGallery) Create(_ context.Context, g *models.GalleryImage) error {
	stamp(&g.ID, &g.CreatedAt, time.Now())
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.insertLocked(g.ID, *g)
	return nil
}

func (r *memoryGallery) Approve(_ context.Context, id string) (*models.GalleryImage, error) {
	g, ok := r.c.mutate(id, func(g *models.GalleryImage) { g.IsApproved = true })
	if !ok {
		return nil, ErrNotFound
	}
	return &g, nil
}

func (r *memoryGallery) Delete(_ context.Context, id string) (*models.GalleryImage, error) {
	g, ok := r.c.remove(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &g, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/repository"
	"github.com/sefazor/ttravel-backend/pkg/events"
	"github.com/sefazor/ttravel-backend/pkg/storage"
	"github.com/sefazor/ttravel-backend/pkg/utils"
	"go.uber.org/zap"
)

const galleryPrefix = "gallery"

type GalleryService struct {
	galleryRepo repository.GalleryRepository
	storage     storage.ObjectStorage
	publisher   events.Publisher
	validator   *utils.Validator
	logger      *zap.Logger
	async       runner
}

// NewGalleryService builds the gallery service. objects may be nil, in which
// case embedded images are stored inline.
func NewGalleryService(
	galleryRepo repository.GalleryRepository,
	objects storage.ObjectStorage,
	publisher events.Publisher,
	validator *utils.Validator,
	logger *zap.Logger,
) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		storage:     objects,
		publisher:   publisher,
		validator:   validator,
		logger:      logger.Named("gallery"),
		async:       goroutine,
	}
}

func (s *GalleryService) List(ctx context.Context, approvedOnly bool) ([]models.GalleryImage, error) {
	return s.galleryRepo.List(ctx, approvedOnly)
}

// Submit stores a visitor photo as unapproved. Embedded data URIs are moved
// to object storage when it is configured; the bytes are not modified.
func (s *GalleryService) Submit(ctx context.Context, req models.CreateGalleryImageRequest) (*models.GalleryImage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	image := models.GalleryImage{
		ImageURL:      req.ImageURL,
		Title:         req.Title,
		Review:        req.Review,
		UploaderName:  req.UploaderName,
		UploaderEmail: req.UploaderEmail,
		IsApproved:    false,
	}

	if s.storage != nil && utils.IsDataURI(req.ImageURL) {
		contentType, data, err := utils.ParseDataURI(req.ImageURL)
		if err != nil {
			return nil, utils.ValidationErrors{{Field: "imageUrl", Problem: "must be an http(s) URL or a base64 data:image URI"}}
		}
		key := storage.ObjectKey(galleryPrefix, contentType)
		url, err := s.storage.Upload(ctx, key, contentType, data)
		if err != nil {
			return nil, fmt.Errorf("failed to store gallery image: %w", err)
		}
		image.ImageURL = url
		image.StorageKey = key
	}

	if err := s.galleryRepo.Create(ctx, &image); err != nil {
		if image.StorageKey != "" {
			s.removeObject(ctx, image.StorageKey)
		}
		return nil, err
	}
	s.logger.Info("gallery image submitted", zap.String("id", image.ID), zap.Bool("offloaded", image.StorageKey != ""))

	s.emit(ctx, events.GallerySubmitted, image)
	return &image, nil
}

// Approve makes the image public. Approving twice is harmless.
func (s *GalleryService) Approve(ctx context.Context, id string) (*models.GalleryImage, error) {
	current, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.IsApproved {
		return current, nil
	}

	image, err := s.galleryRepo.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("gallery image approved", zap.String("id", id))
	s.emit(ctx, events.GalleryApproved, *image)
	return image, nil
}

// Delete removes the image for good, including any stored object.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	image, err := s.galleryRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if image.StorageKey != "" {
		s.removeObject(ctx, image.StorageKey)
	}
	s.logger.Info("gallery image deleted", zap.String("id", id))
	return nil
}

func (s *GalleryService) removeObject(ctx context.Context, key string) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to delete gallery object", zap.String("key", key), zap.Error(err))
	}
}

func (s *GalleryService) emit(ctx context.Context, subject string, image models.GalleryImage) {
	bg, cancel := detach(ctx)
	s.async(func() {
		defer cancel()
		err := s.publisher.Publish(bg, subject, events.GalleryImageEvent{
			ImageID:      image.ID,
			Title:        image.Title,
			UploaderName: image.UploaderName,
			At:           time.Now(),
		})
		if err != nil {
			s.logger.Warn("failed to publish gallery event", zap.String("subject", subject), zap.Error(err))
		}
	})
}

package service

import (
	"context"

	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/repository"
	"github.com/sefazor/ttravel-backend/pkg/qrcode"
	"github.com/sefazor/ttravel-backend/pkg/utils"
	"go.uber.org/zap"
)

type PackageService struct {
	packageRepo repository.PackageRepository
	qrService   *qrcode.QRService
	validator   *utils.Validator
	logger      *zap.Logger
}

func NewPackageService(packageRepo repository.PackageRepository, qrService *qrcode.QRService, validator *utils.Validator, logger *zap.Logger) *PackageService {
	return &PackageService{
		packageRepo: packageRepo,
		qrService:   qrService,
		validator:   validator,
		logger:      logger.Named("package"),
	}
}

func (s *PackageService) List(ctx context.Context, filter models.PackageFilter) ([]models.Package, error) {
	return s.packageRepo.List(ctx, filter)
}

// Get returns a package by id. Inactive packages are reported as not found
// unless includeInactive is set.
func (s *PackageService) Get(ctx context.Context, id string, includeInactive bool) (*models.Package, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !includeInactive && !pkg.IsActive {
		return nil, ErrNotFound
	}
	return pkg, nil
}

func (s *PackageService) Create(ctx context.Context, req models.CreatePackageRequest) (*models.Package, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	pkg := req.Package()
	if err := s.packageRepo.Create(ctx, &pkg); err != nil {
		return nil, err
	}
	s.logger.Info("package created", zap.String("id", pkg.ID), zap.String("name", pkg.Name))
	return &pkg, nil
}

func (s *PackageService) Update(ctx context.Context, id string, req models.UpdatePackageRequest) (*models.Package, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	return s.packageRepo.Update(ctx, id, req.Apply)
}

// Delete hides the package from listings. The row is kept.
func (s *PackageService) Delete(ctx context.Context, id string) error {
	if err := s.packageRepo.SetActive(ctx, id, false); err != nil {
		return err
	}
	s.logger.Info("package deactivated", zap.String("id", id))
	return nil
}

// BuyNowQRCode renders the buy-now link of an active package as a PNG.
func (s *PackageService) BuyNowQRCode(ctx context.Context, id string, size int) ([]byte, error) {
	pkg, err := s.Get(ctx, id, false)
	if err != nil {
		return nil, err
	}
	return s.qrService.GenerateQRCode(pkg.BuyNowURL, size)
}

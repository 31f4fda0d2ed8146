package service

import (
	"context"

	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/repository"
	"github.com/sefazor/ttravel-backend/pkg/password"
	"github.com/sefazor/ttravel-backend/pkg/utils"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo  repository.UserRepository
	hasher    password.Hasher
	validator *utils.Validator
	logger    *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, hasher password.Hasher, validator *utils.Validator, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo:  userRepo,
		hasher:    hasher,
		validator: validator,
		logger:    logger.Named("user"),
	}
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ChangePassword overwrites the stored password after re-checking the
// current one. No history is kept.
func (s *UserService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Matches(user.Password, req.CurrentPassword) {
		return ErrIncorrectPassword
	}

	stored, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, stored); err != nil {
		return err
	}
	s.logger.Info("password changed", zap.String("user_id", user.ID))
	return nil
}

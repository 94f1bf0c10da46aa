package service

import (
	"context"

	"go.uber.org/zap"

	"health-screen/internal/cache"
	"health-screen/internal/domain"
	"health-screen/internal/dto"
	"health-screen/internal/logger"
)

// UserService defines the interface for account operations of a signed-in
// user.
type UserService interface {
	GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	// DeleteAccount removes the user together with every survey, analysis
	// and posture record stored for them.
	DeleteAccount(ctx context.Context, userID string) error
}

type userServiceImpl struct {
	userRepo  domain.UserRepository
	txManager domain.TransactionManager
	cache     domain.Cache
}

// NewUserService creates a new instance of UserService. cache may be nil.
func NewUserService(userRepo domain.UserRepository, txManager domain.TransactionManager, c domain.Cache) UserService {
	return &userServiceImpl{
		userRepo:  userRepo,
		txManager: txManager,
		cache:     c,
	}
}

// GetUserProfile retrieves a user's profile information.
func (s *userServiceImpl) GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get user profile", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}
	profile := toUserProfile(user)
	return &profile, nil
}

func (s *userServiceImpl) DeleteAccount(ctx context.Context, userID string) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.userRepo.DeleteUserData(txCtx, userID)
	})
	if err != nil {
		if domain.IsCode(err, domain.CodeNotFound) {
			return err
		}
		return domain.NewInternalError("failed to delete account", err)
	}

	if s.cache != nil {
		if err := s.cache.DeleteByPrefix(ctx, cache.ServicePrefix(cache.ServiceDashboard)); err != nil {
			logger.Get().Warn("Failed to invalidate dashboard cache", zap.Error(err))
		}
	}
	logger.Get().Info("Account deleted", zap.String("userID", userID))
	return nil
}

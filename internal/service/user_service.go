package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/microblogd/microblog/internal/apperror"
	"github.com/microblogd/microblog/internal/db"
	"github.com/microblogd/microblog/internal/models"
	"github.com/microblogd/microblog/pkg/logging"
	"github.com/microblogd/microblog/pkg/telemetry"
)

// UserService handles user registration
type UserService struct {
	repo   *db.Repository
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(repo *db.Repository) *UserService {
	return &UserService{
		repo:   repo,
		logger: logging.WithComponent("user-service"),
	}
}

// Register creates a new user and returns it
func (s *UserService) Register(ctx context.Context, name string) (*models.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "user.register")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.InvalidInput("name is required")
	}

	user := &models.User{Name: name}
	if err := db.NewUserRepository(s.repo).Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.Int64("user_id", user.ID))
	return user, nil
}

// Delete removes a user and all dependent rows. There is no HTTP
// endpoint for this; it exists as the documented cascade contract of
// the store.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	ctx, span := telemetry.StartSpan(ctx, "user.delete")
	defer span.End()

	userRepo := db.NewUserRepository(s.repo)
	user, err := userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("user", id)
	}
	return userRepo.Delete(ctx, id)
}

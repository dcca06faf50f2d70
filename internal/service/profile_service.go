package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/microblogd/microblog/internal/apperror"
	"github.com/microblogd/microblog/internal/db"
	"github.com/microblogd/microblog/pkg/logging"
	"github.com/microblogd/microblog/pkg/telemetry"
)

// ProfileService builds user profile views
type ProfileService struct {
	repo   *db.Repository
	logger *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(repo *db.Repository) *ProfileService {
	return &ProfileService{
		repo:   repo,
		logger: logging.WithComponent("profile-service"),
	}
}

// Get returns the profile of the given user with resolved follower and
// following lists, each in user-id order.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*ProfileView, error) {
	ctx, span := telemetry.StartSpan(ctx, "profile.get")
	defer span.End()

	userRepo := db.NewUserRepository(s.repo)
	user, err := userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user", userID)
	}

	followRepo := db.NewFollowRepository(s.repo)

	followerEdges, err := followRepo.FindFollowersOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	followingEdges, err := followRepo.FindFollowingOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	followerIDs := make([]int64, 0, len(followerEdges))
	for _, edge := range followerEdges {
		followerIDs = append(followerIDs, edge.FollowerID)
	}
	followingIDs := make([]int64, 0, len(followingEdges))
	for _, edge := range followingEdges {
		followingIDs = append(followingIDs, edge.AuthorID)
	}

	followers, err := s.resolveRefs(ctx, userRepo, followerIDs)
	if err != nil {
		return nil, err
	}
	following, err := s.resolveRefs(ctx, userRepo, followingIDs)
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		ID:        user.ID,
		Name:      user.Name,
		Followers: followers,
		Following: following,
	}, nil
}

func (s *ProfileService) resolveRefs(ctx context.Context, userRepo *db.UserRepository, ids []int64) ([]UserRef, error) {
	users, err := userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	refs := make([]UserRef, 0, len(users))
	for _, user := range users {
		refs = append(refs, UserRef{ID: user.ID, Name: user.Name})
	}
	return refs, nil
}

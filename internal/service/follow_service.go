package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/microblogd/microblog/internal/apperror"
	"github.com/microblogd/microblog/internal/db"
	"github.com/microblogd/microblog/internal/models"
	"github.com/microblogd/microblog/pkg/logging"
	"github.com/microblogd/microblog/pkg/telemetry"
)

// FollowService manages follow edges
type FollowService struct {
	repo   *db.Repository
	feed   *FeedService
	logger *zap.Logger
}

// NewFollowService creates a new follow service
func NewFollowService(repo *db.Repository, feed *FeedService) *FollowService {
	return &FollowService{
		repo:   repo,
		feed:   feed,
		logger: logging.WithComponent("follow-service"),
	}
}

// Follow creates the edge "follower follows author". Checks run in a
// fixed order inside one transaction: self-follow, then target
// existence, then duplicate edge.
func (s *FollowService) Follow(ctx context.Context, followerID, authorID int64) error {
	ctx, span := telemetry.StartSpan(ctx, "follow.create")
	defer span.End()

	if followerID == authorID {
		return apperror.SelfFollow()
	}

	err := s.repo.Transaction(ctx, func(tx *db.Repository) error {
		author, err := db.NewUserRepository(tx).GetByID(ctx, authorID)
		if err != nil {
			return err
		}
		if author == nil {
			return apperror.NotFound("author", authorID)
		}

		followRepo := db.NewFollowRepository(tx)
		existing, err := followRepo.Get(ctx, authorID, followerID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperror.AlreadyExists("subscription already exists")
		}

		return followRepo.Create(ctx, &models.Follow{
			AuthorID:   authorID,
			FollowerID: followerID,
		})
	})
	if err != nil {
		return err
	}

	s.feed.invalidateUserFeed(ctx, followerID)
	s.logger.Info("Follow created", zap.Int64("follower_id", followerID), zap.Int64("author_id", authorID))
	return nil
}

// Unfollow removes the edge "follower follows author"
func (s *FollowService) Unfollow(ctx context.Context, followerID, authorID int64) error {
	ctx, span := telemetry.StartSpan(ctx, "follow.delete")
	defer span.End()

	err := s.repo.Transaction(ctx, func(tx *db.Repository) error {
		followRepo := db.NewFollowRepository(tx)
		existing, err := followRepo.Get(ctx, authorID, followerID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperror.NotFound("subscription to author", authorID)
		}
		return followRepo.Delete(ctx, authorID, followerID)
	})
	if err != nil {
		return err
	}

	s.feed.invalidateUserFeed(ctx, followerID)
	return nil
}

// ListFollowers returns the users following the given user, in id order
func (s *FollowService) ListFollowers(ctx context.Context, userID int64) ([]UserRef, error) {
	follows, err := db.NewFollowRepository(s.repo).FindFollowersOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, follow.FollowerID)
	}
	return s.resolveUserRefs(ctx, ids)
}

// ListFollowing returns the users the given user follows, in id order
func (s *FollowService) ListFollowing(ctx context.Context, userID int64) ([]UserRef, error) {
	follows, err := db.NewFollowRepository(s.repo).FindFollowingOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, follow.AuthorID)
	}
	return s.resolveUserRefs(ctx, ids)
}

func (s *FollowService) resolveUserRefs(ctx context.Context, ids []int64) ([]UserRef, error) {
	users, err := db.NewUserRepository(s.repo).GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	refs := make([]UserRef, 0, len(users))
	for _, user := range users {
		refs = append(refs, UserRef{ID: user.ID, Name: user.Name})
	}
	return refs, nil
}

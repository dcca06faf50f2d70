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

// LikeService manages like rows per (user, publication) pair
type LikeService struct {
	repo   *db.Repository
	feed   *FeedService
	logger *zap.Logger
}

// NewLikeService creates a new like service
func NewLikeService(repo *db.Repository, feed *FeedService) *LikeService {
	return &LikeService{
		repo:   repo,
		feed:   feed,
		logger: logging.WithComponent("like-service"),
	}
}

// Add inserts a like for (userID, tweetID). The existence check and
// the insert run in one transaction, so two concurrent calls cannot
// both pass the duplicate check.
func (s *LikeService) Add(ctx context.Context, userID, tweetID int64) error {
	ctx, span := telemetry.StartSpan(ctx, "like.add")
	defer span.End()

	var authorID int64
	err := s.repo.Transaction(ctx, func(tx *db.Repository) error {
		pub, err := db.NewPublicationRepository(tx).GetByID(ctx, tweetID)
		if err != nil {
			return err
		}
		if pub == nil {
			return apperror.NotFound("tweet", tweetID)
		}
		authorID = pub.AuthorID

		likeRepo := db.NewLikeRepository(tx)
		existing, err := likeRepo.Get(ctx, tweetID, userID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperror.AlreadyExists("tweet already liked")
		}

		return likeRepo.Create(ctx, &models.Like{
			PublicationID: tweetID,
			AuthorID:      userID,
			IsLiked:       true,
		})
	})
	if err != nil {
		return err
	}

	s.feed.invalidateAuthorFeeds(ctx, authorID)
	s.logger.Info("Like added", zap.Int64("tweet_id", tweetID), zap.Int64("user_id", userID))
	return nil
}

// Remove deletes the like for (userID, tweetID)
func (s *LikeService) Remove(ctx context.Context, userID, tweetID int64) error {
	ctx, span := telemetry.StartSpan(ctx, "like.remove")
	defer span.End()

	var authorID int64
	err := s.repo.Transaction(ctx, func(tx *db.Repository) error {
		likeRepo := db.NewLikeRepository(tx)
		existing, err := likeRepo.Get(ctx, tweetID, userID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperror.NotFound("like for tweet", tweetID)
		}
		pub, err := db.NewPublicationRepository(tx).GetByID(ctx, tweetID)
		if err != nil {
			// Only cache invalidation depends on the author; the
			// unlike itself still proceeds
			s.logger.Warn("Failed to resolve tweet author for feed invalidation", zap.Int64("tweet_id", tweetID), zap.Error(err))
		} else if pub != nil {
			authorID = pub.AuthorID
		}
		return likeRepo.Delete(ctx, tweetID, userID)
	})
	if err != nil {
		return err
	}

	if authorID != 0 {
		s.feed.invalidateAuthorFeeds(ctx, authorID)
	}
	return nil
}

// Get returns the like for (userID, tweetID), or a not-found error
func (s *LikeService) Get(ctx context.Context, userID, tweetID int64) (*models.Like, error) {
	like, err := db.NewLikeRepository(s.repo).Get(ctx, tweetID, userID)
	if err != nil {
		return nil, err
	}
	if like == nil {
		return nil, apperror.NotFound("like for tweet", tweetID)
	}
	return like, nil
}

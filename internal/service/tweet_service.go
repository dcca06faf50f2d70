package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/microblogd/microblog/internal/apperror"
	"github.com/microblogd/microblog/internal/db"
	"github.com/microblogd/microblog/internal/models"
	"github.com/microblogd/microblog/pkg/logging"
	"github.com/microblogd/microblog/pkg/telemetry"
)

// TweetService creates and deletes publications
type TweetService struct {
	repo   *db.Repository
	feed   *FeedService
	logger *zap.Logger
}

// NewTweetService creates a new tweet service
func NewTweetService(repo *db.Repository, feed *FeedService) *TweetService {
	return &TweetService{
		repo:   repo,
		feed:   feed,
		logger: logging.WithComponent("tweet-service"),
	}
}

// Create inserts a publication and links the given pre-uploaded media
// to it. The whole sequence runs in one transaction, so a failed media
// link leaves no orphan publication behind.
func (s *TweetService) Create(ctx context.Context, authorID int64, content string, mediaIDs []int64) (int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "tweet.create")
	defer span.End()

	if strings.TrimSpace(content) == "" {
		return 0, apperror.InvalidInput("tweet_data is required")
	}

	var tweetID int64
	err := s.repo.Transaction(ctx, func(tx *db.Repository) error {
		pub := &models.Publication{
			Content:  content,
			AuthorID: authorID,
		}
		if err := db.NewPublicationRepository(tx).Create(ctx, pub); err != nil {
			return err
		}

		attRepo := db.NewAttachmentRepository(tx)
		for _, mediaID := range mediaIDs {
			att, err := attRepo.GetByID(ctx, mediaID)
			if err != nil {
				return err
			}
			if att == nil {
				return apperror.NotFound("media", mediaID)
			}
			if att.PublicationID.Valid {
				return apperror.AlreadyExists(fmt.Sprintf("media %d already attached", mediaID))
			}
			if err := attRepo.Attach(ctx, mediaID, pub.ID); err != nil {
				return err
			}
		}

		tweetID = pub.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.feed.invalidateAuthorFeeds(ctx, authorID)
	s.logger.Info("Tweet created", zap.Int64("tweet_id", tweetID), zap.Int64("author_id", authorID))
	return tweetID, nil
}

// Delete removes a publication owned by the caller, cascading its
// likes and attachments. Ownership is enforced by the query predicate:
// a tweet that exists but belongs to someone else reads as not found.
func (s *TweetService) Delete(ctx context.Context, authorID, tweetID int64) error {
	ctx, span := telemetry.StartSpan(ctx, "tweet.delete")
	defer span.End()

	err := s.repo.Transaction(ctx, func(tx *db.Repository) error {
		pubRepo := db.NewPublicationRepository(tx)
		pub, err := pubRepo.GetByIDAndAuthor(ctx, tweetID, authorID)
		if err != nil {
			return err
		}
		if pub == nil {
			return apperror.NotFound("tweet", tweetID)
		}
		return pubRepo.Delete(ctx, tweetID)
	})
	if err != nil {
		return err
	}

	s.feed.invalidateAuthorFeeds(ctx, authorID)
	s.logger.Info("Tweet deleted", zap.Int64("tweet_id", tweetID), zap.Int64("author_id", authorID))
	return nil
}

// ListByAuthor returns a user's own publications ordered by id
func (s *TweetService) ListByAuthor(ctx context.Context, authorID int64) ([]*models.Publication, error) {
	return db.NewPublicationRepository(s.repo).ListByAuthors(ctx, []int64{authorID})
}

// Get retrieves a publication by id
func (s *TweetService) Get(ctx context.Context, tweetID int64) (*models.Publication, error) {
	pub, err := db.NewPublicationRepository(s.repo).GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, apperror.NotFound("tweet", tweetID)
	}
	return pub, nil
}

package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/microblogd/microblog/internal/cache"
	"github.com/microblogd/microblog/internal/db"
	"github.com/microblogd/microblog/internal/models"
	"github.com/microblogd/microblog/pkg/logging"
	"github.com/microblogd/microblog/pkg/telemetry"
)

// FeedService composes a user's feed: their own publications plus the
// publications of everyone they follow, each enriched with attachments
// and like lists.
type FeedService struct {
	repo   *db.Repository
	cache  *cache.Cache
	logger *zap.Logger
}

// NewFeedService creates a new feed service. feedCache may be nil.
func NewFeedService(repo *db.Repository, feedCache *cache.Cache) *FeedService {
	return &FeedService{
		repo:   repo,
		cache:  feedCache,
		logger: logging.WithComponent("feed-service"),
	}
}

// GetFeed returns the requester's feed ordered by publication id.
// Enrichment is batched: one query per relation instead of per-post
// lookups.
func (s *FeedService) GetFeed(ctx context.Context, requesterID int64) ([]TweetView, error) {
	ctx, span := telemetry.StartSpan(ctx, "feed.get")
	defer span.End()

	if cached, err := s.cache.Get(ctx, cache.FeedKey(requesterID)); err == nil {
		var views []TweetView
		if err := json.Unmarshal([]byte(cached), &views); err == nil {
			return views, nil
		}
	}

	views, err := s.compose(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(views); err == nil {
			if err := s.cache.Set(ctx, cache.FeedKey(requesterID), string(encoded), cache.FeedTTL); err != nil {
				s.logger.Warn("Failed to cache feed", zap.Int64("user_id", requesterID), zap.Error(err))
			}
		}
	}

	return views, nil
}

func (s *FeedService) compose(ctx context.Context, requesterID int64) ([]TweetView, error) {
	follows, err := db.NewFollowRepository(s.repo).FindFollowingOf(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	// The requester plus everyone they follow
	authorIDs := make([]int64, 0, len(follows)+1)
	authorIDs = append(authorIDs, requesterID)
	for _, follow := range follows {
		authorIDs = append(authorIDs, follow.AuthorID)
	}

	pubs, err := db.NewPublicationRepository(s.repo).ListByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	pubIDs := make([]int64, 0, len(pubs))
	for _, pub := range pubs {
		pubIDs = append(pubIDs, pub.ID)
	}

	attachments, err := db.NewAttachmentRepository(s.repo).ListByPublications(ctx, pubIDs)
	if err != nil {
		return nil, err
	}
	likes, err := db.NewLikeRepository(s.repo).ListByPublications(ctx, pubIDs)
	if err != nil {
		return nil, err
	}

	users, err := s.resolveUsers(ctx, pubs, likes)
	if err != nil {
		return nil, err
	}

	linksByPub := make(map[int64][]string)
	for _, att := range attachments {
		if att.PublicationID.Valid {
			pubID := att.PublicationID.Int64
			linksByPub[pubID] = append(linksByPub[pubID], att.Link)
		}
	}

	likesByPub := make(map[int64][]LikeRef)
	for _, like := range likes {
		ref := LikeRef{UserID: like.AuthorID}
		if user, ok := users[like.AuthorID]; ok {
			ref.Name = user.Name
		}
		likesByPub[like.PublicationID] = append(likesByPub[like.PublicationID], ref)
	}

	views := make([]TweetView, 0, len(pubs))
	for _, pub := range pubs {
		view := TweetView{
			ID:          pub.ID,
			Content:     pub.Content,
			Attachments: []string{},
			Author:      UserRef{ID: pub.AuthorID},
			Likes:       []LikeRef{},
		}
		if user, ok := users[pub.AuthorID]; ok {
			view.Author.Name = user.Name
		}
		if links, ok := linksByPub[pub.ID]; ok {
			view.Attachments = links
		}
		if refs, ok := likesByPub[pub.ID]; ok {
			view.Likes = refs
		}
		views = append(views, view)
	}

	return views, nil
}

// resolveUsers loads every user referenced as a publication author or
// a liker, keyed by id.
func (s *FeedService) resolveUsers(ctx context.Context, pubs []*models.Publication, likes []*models.Like) (map[int64]*models.User, error) {
	seen := make(map[int64]bool)
	ids := make([]int64, 0, len(pubs))
	for _, pub := range pubs {
		if !seen[pub.AuthorID] {
			seen[pub.AuthorID] = true
			ids = append(ids, pub.AuthorID)
		}
	}
	for _, like := range likes {
		if !seen[like.AuthorID] {
			seen[like.AuthorID] = true
			ids = append(ids, like.AuthorID)
		}
	}

	users, err := db.NewUserRepository(s.repo).GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*models.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	return byID, nil
}

// invalidateUserFeed drops one user's cached feed, after the user's
// own follow set changed.
func (s *FeedService) invalidateUserFeed(ctx context.Context, userID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.FeedKey(userID)); err != nil && err != cache.ErrCacheDisabled {
		s.logger.Warn("Failed to invalidate feed cache", zap.Int64("user_id", userID), zap.Error(err))
	}
}

// invalidateAuthorFeeds drops every cached feed that contains the
// author's publications: the author's own and each follower's. Best
// effort; a missed invalidation only lives until the cache TTL.
func (s *FeedService) invalidateAuthorFeeds(ctx context.Context, authorID int64) {
	if s.cache == nil {
		return
	}
	keys := []string{cache.FeedKey(authorID)}
	follows, err := db.NewFollowRepository(s.repo).FindFollowersOf(ctx, authorID)
	if err != nil {
		s.logger.Warn("Failed to list followers for feed invalidation", zap.Int64("author_id", authorID), zap.Error(err))
	} else {
		for _, follow := range follows {
			keys = append(keys, cache.FeedKey(follow.FollowerID))
		}
	}
	if err := s.cache.Delete(ctx, keys...); err != nil && err != cache.ErrCacheDisabled {
		s.logger.Warn("Failed to invalidate feed cache", zap.Int64("author_id", authorID), zap.Error(err))
	}
}

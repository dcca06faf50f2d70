package service

import (
	"github.com/microblogd/microblog/internal/cache"
	"github.com/microblogd/microblog/internal/db"
	"github.com/microblogd/microblog/internal/media"
)

// Services bundles all domain services over a shared repository.
type Services struct {
	Users   *UserService
	Tweets  *TweetService
	Likes   *LikeService
	Follows *FollowService
	Media   *MediaService
	Feed    *FeedService
	Profile *ProfileService
}

// New wires up the domain services. feedCache may be nil (disabled).
func New(repo *db.Repository, store *media.Store, feedCache *cache.Cache) *Services {
	feed := NewFeedService(repo, feedCache)
	return &Services{
		Users:   NewUserService(repo),
		Tweets:  NewTweetService(repo, feed),
		Likes:   NewLikeService(repo, feed),
		Follows: NewFollowService(repo, feed),
		Media:   NewMediaService(repo, store),
		Feed:    feed,
		Profile: NewProfileService(repo),
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/microblogd/microblog/internal/apperror"
)

func TestCreateTweetRoundtrip(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, services, "alice")

	tweetID, err := services.Tweets.Create(ctx, alice, "hello world", nil)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	pub, err := services.Tweets.Get(ctx, tweetID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if pub.Content != "hello world" {
		t.Errorf("content = %s, want hello world", pub.Content)
	}
	if pub.AuthorID != alice {
		t.Errorf("author_id = %d, want %d", pub.AuthorID, alice)
	}
}

func TestCreateTweetEmptyContent(t *testing.T) {
	services, _ := newTestServices(t)
	alice := registerUser(t, services, "alice")

	if _, err := services.Tweets.Create(context.Background(), alice, "   ", nil); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateTweetWithMedia(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, services, "alice")

	mediaID, err := services.Media.Upload(ctx, "cat.png", []byte("pixels"))
	if err != nil {
		t.Fatalf("Upload() error: %v", err)
	}

	tweetID, err := services.Tweets.Create(ctx, alice, "look at my cat", []int64{mediaID})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	att, err := services.Media.Get(ctx, mediaID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !att.PublicationID.Valid || att.PublicationID.Int64 != tweetID {
		t.Errorf("attachment not linked: %+v", att.PublicationID)
	}

	// Feed view carries the uploaded link
	feed, err := services.Feed.GetFeed(ctx, alice)
	if err != nil {
		t.Fatalf("GetFeed() error: %v", err)
	}
	if len(feed) != 1 || len(feed[0].Attachments) != 1 {
		t.Fatalf("feed = %+v, want one tweet with one attachment", feed)
	}
	if feed[0].Attachments[0] != att.Link {
		t.Errorf("attachment link = %s, want %s", feed[0].Attachments[0], att.Link)
	}
}

func TestCreateTweetMediaChecks(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, services, "alice")

	// Unknown media id fails and rolls back the publication
	if _, err := services.Tweets.Create(ctx, alice, "broken", []int64{404}); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	feed, err := services.Feed.GetFeed(ctx, alice)
	if err != nil {
		t.Fatalf("GetFeed() error: %v", err)
	}
	if len(feed) != 0 {
		t.Errorf("orphan publication survived rollback: %+v", feed)
	}

	// A media id may be attached exactly once
	mediaID, err := services.Media.Upload(ctx, "cat.png", []byte("pixels"))
	if err != nil {
		t.Fatalf("Upload() error: %v", err)
	}
	if _, err := services.Tweets.Create(ctx, alice, "first", []int64{mediaID}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if _, err := services.Tweets.Create(ctx, alice, "second", []int64{mediaID}); !errors.Is(err, apperror.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestDeleteTweetOwnership(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, services, "alice")
	bob := registerUser(t, services, "bob")

	tweetID, err := services.Tweets.Create(ctx, alice, "mine", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Someone else's tweet reads as not found
	if err := services.Tweets.Delete(ctx, bob, tweetID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign tweet, got %v", err)
	}
	if err := services.Tweets.Delete(ctx, alice, tweetID); err != nil {
		t.Errorf("owner delete failed: %v", err)
	}
}

func TestDeleteTweetCascades(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, services, "alice")
	bob := registerUser(t, services, "bob")

	mediaID, err := services.Media.Upload(ctx, "cat.png", []byte("pixels"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	tweetID, err := services.Tweets.Create(ctx, alice, "hello", []int64{mediaID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := services.Likes.Add(ctx, bob, tweetID); err != nil {
		t.Fatalf("like: %v", err)
	}

	if err := services.Tweets.Delete(ctx, alice, tweetID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	// Feed no longer returns it
	feed, err := services.Feed.GetFeed(ctx, alice)
	if err != nil {
		t.Fatalf("GetFeed() error: %v", err)
	}
	if len(feed) != 0 {
		t.Errorf("feed still contains deleted tweet: %+v", feed)
	}

	// Its like rows are gone
	if _, err := services.Likes.Get(ctx, bob, tweetID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("like should be gone, got %v", err)
	}

	// Its attachment rows are gone
	if _, err := services.Media.Get(ctx, mediaID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("attachment should be gone, got %v", err)
	}
}

func TestListByAuthor(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, services, "alice")
	bob := registerUser(t, services, "bob")

	first, err := services.Tweets.Create(ctx, alice, "one", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := services.Tweets.Create(ctx, bob, "other", nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := services.Tweets.Create(ctx, alice, "two", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	pubs, err := services.Tweets.ListByAuthor(ctx, alice)
	if err != nil {
		t.Fatalf("ListByAuthor() error: %v", err)
	}
	if len(pubs) != 2 || pubs[0].ID != first || pubs[1].ID != second {
		t.Errorf("unexpected publications: %+v", pubs)
	}
}

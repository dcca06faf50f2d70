package service

import (
	"context"
	"errors"
	"testing"

	"github.com/microblogd/microblog/internal/apperror"
)

func TestAddLike(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, services, "alice")
	bob := registerUser(t, services, "bob")

	tweetID, err := services.Tweets.Create(ctx, alice, "hello", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := services.Likes.Add(ctx, bob, tweetID); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	like, err := services.Likes.Get(ctx, bob, tweetID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !like.IsLiked {
		t.Error("expected is_liked to be true")
	}
}

func TestAddLikeChecks(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, services, "alice")
	bob := registerUser(t, services, "bob")

	tweetID, err := services.Tweets.Create(ctx, alice, "hello", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := services.Likes.Add(ctx, bob, tweetID); err != nil {
		t.Fatalf("first like: %v", err)
	}

	// Liking twice fails
	if err := services.Likes.Add(ctx, bob, tweetID); !errors.Is(err, apperror.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}

	// Liking a missing tweet fails
	if err := services.Likes.Add(ctx, bob, 404); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveLike(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, services, "alice")
	bob := registerUser(t, services, "bob")

	tweetID, err := services.Tweets.Create(ctx, alice, "hello", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := services.Likes.Add(ctx, bob, tweetID); err != nil {
		t.Fatalf("like: %v", err)
	}

	if err := services.Likes.Remove(ctx, bob, tweetID); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	// Removing twice fails
	if err := services.Likes.Remove(ctx, bob, tweetID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

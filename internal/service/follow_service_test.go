package service

import (
	"context"
	"errors"
	"testing"

	"github.com/microblogd/microblog/internal/apperror"
)

func TestFollow(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, services, "alice")
	bob := registerUser(t, services, "bob")

	if err := services.Follows.Follow(ctx, bob, alice); err != nil {
		t.Fatalf("Follow() error: %v", err)
	}

	followers, err := services.Follows.ListFollowers(ctx, alice)
	if err != nil {
		t.Fatalf("ListFollowers() error: %v", err)
	}
	if len(followers) != 1 || followers[0].ID != bob || followers[0].Name != "bob" {
		t.Errorf("followers = %v, want [{%d bob}]", followers, bob)
	}

	following, err := services.Follows.ListFollowing(ctx, bob)
	if err != nil {
		t.Fatalf("ListFollowing() error: %v", err)
	}
	if len(following) != 1 || following[0].ID != alice || following[0].Name != "alice" {
		t.Errorf("following = %v, want [{%d alice}]", following, alice)
	}
}

func TestFollowChecks(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, services, "alice")
	bob := registerUser(t, services, "bob")

	if err := services.Follows.Follow(ctx, bob, alice); err != nil {
		t.Fatalf("first follow: %v", err)
	}

	tests := []struct {
		name       string
		followerID int64
		authorID   int64
		wantKind   error
	}{
		{"duplicate edge", bob, alice, apperror.ErrAlreadyExists},
		{"self follow", bob, bob, apperror.ErrSelfFollow},
		{"unknown author", bob, 999, apperror.ErrNotFound},
		// Self-follow is checked before existence, so an unregistered
		// id following itself still reads as self-follow
		{"self follow of unknown id", 999, 999, apperror.ErrSelfFollow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.Follows.Follow(ctx, tt.followerID, tt.authorID)
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("Follow(%d, %d) = %v, want kind %v", tt.followerID, tt.authorID, err, tt.wantKind)
			}
		})
	}
}

func TestUnfollow(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, services, "alice")
	bob := registerUser(t, services, "bob")

	if err := services.Follows.Follow(ctx, bob, alice); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := services.Follows.Unfollow(ctx, bob, alice); err != nil {
		t.Fatalf("Unfollow() error: %v", err)
	}

	// Second removal fails: the edge is gone
	if err := services.Follows.Unfollow(ctx, bob, alice); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	followers, err := services.Follows.ListFollowers(ctx, alice)
	if err != nil {
		t.Fatalf("list followers: %v", err)
	}
	if len(followers) != 0 {
		t.Errorf("followers = %v, want empty", followers)
	}
}

func TestListFollowersOrder(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, services, "alice")
	carol := registerUser(t, services, "carol")
	bob := registerUser(t, services, "bob")
	dave := registerUser(t, services, "dave")

	// Follow in non-id order; listing must come back id-ordered
	for _, follower := range []int64{dave, bob, carol} {
		if err := services.Follows.Follow(ctx, follower, alice); err != nil {
			t.Fatalf("follow by %d: %v", follower, err)
		}
	}

	followers, err := services.Follows.ListFollowers(ctx, alice)
	if err != nil {
		t.Fatalf("ListFollowers() error: %v", err)
	}
	want := []int64{carol, bob, dave}
	if len(followers) != len(want) {
		t.Fatalf("got %d followers, want %d", len(followers), len(want))
	}
	for i := range want {
		if followers[i].ID != want[i] {
			t.Errorf("followers[%d].ID = %d, want %d", i, followers[i].ID, want[i])
		}
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/microblogd/microblog/internal/apperror"
)

func TestGetProfile(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, services, "alice")
	bob := registerUser(t, services, "bob")
	carol := registerUser(t, services, "carol")

	// bob and carol follow alice; alice follows carol
	if err := services.Follows.Follow(ctx, bob, alice); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := services.Follows.Follow(ctx, carol, alice); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := services.Follows.Follow(ctx, alice, carol); err != nil {
		t.Fatalf("follow: %v", err)
	}

	profile, err := services.Profile.Get(ctx, alice)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	if profile.ID != alice || profile.Name != "alice" {
		t.Errorf("profile = %+v, want id=%d name=alice", profile, alice)
	}
	if len(profile.Followers) != 2 || profile.Followers[0].ID != bob || profile.Followers[1].ID != carol {
		t.Errorf("followers = %+v, want [bob carol]", profile.Followers)
	}
	if len(profile.Following) != 1 || profile.Following[0].ID != carol || profile.Following[0].Name != "carol" {
		t.Errorf("following = %+v, want [carol]", profile.Following)
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	services, _ := newTestServices(t)

	if _, err := services.Profile.Get(context.Background(), 404); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetProfileNoEdges(t *testing.T) {
	services, _ := newTestServices(t)

	alice := registerUser(t, services, "alice")

	profile, err := services.Profile.Get(context.Background(), alice)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(profile.Followers) != 0 || len(profile.Following) != 0 {
		t.Errorf("expected empty edge lists, got %+v", profile)
	}
}

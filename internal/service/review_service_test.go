package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
	"github.com/GuidaStefano/WhatToWatchNow/internal/store"
)

func seedReviewService(t *testing.T) (*ReviewService, *store.MockReviewStore, *store.MockUserStore) {
	t.Helper()
	reviews := store.NewMockReviewStore()
	users := store.NewMockUserStore()
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &domain.User{
		ID: "user-a", Nickname: "alice", Email: "alice@example.com", PasswordHash: "x",
	}))
	require.NoError(t, users.Create(ctx, &domain.User{
		ID: "user-b", Nickname: "bob", Email: "bob@example.com", PasswordHash: "x",
	}))

	return NewReviewService(reviews, users, testLogger()), reviews, users
}

func TestAddReview_StampsOwnerFromPrincipal(t *testing.T) {
	svc, reviews, _ := seedReviewService(t)
	ctx := context.Background()

	review, err := svc.AddReview(ctx, "alice@example.com", "movie1", domain.CreateReviewRequest{
		Rating:  5,
		Comment: "Loved it",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-a", review.UserID)
	assert.Equal(t, "movie1", review.MovieID)
	assert.NotEmpty(t, review.ID)
	assert.WithinDuration(t, time.Now().UTC(), review.CreatedAt, 5*time.Second)

	stored, err := reviews.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-a", stored.UserID)
}

func TestAddReview_UnknownPrincipal(t *testing.T) {
	svc, _, _ := seedReviewService(t)

	_, err := svc.AddReview(context.Background(), "ghost@example.com", "movie1", domain.CreateReviewRequest{Rating: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIdentityNotFound)
	// IdentityNotFound is a sub-kind of NotAuthorized.
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestDeleteReview_OwnerDeletes(t *testing.T) {
	svc, reviews, _ := seedReviewService(t)
	ctx := context.Background()

	review, err := svc.AddReview(ctx, "alice@example.com", "movie1", domain.CreateReviewRequest{Rating: 4})
	require.NoError(t, err)

	outcome, err := svc.DeleteReview(ctx, "alice@example.com", review.ID)
	require.NoError(t, err)
	assert.Equal(t, DeleteDone, outcome)
	assert.True(t, outcome.Performed())

	_, err = reviews.GetByID(ctx, review.ID)
	assert.ErrorIs(t, err, store.ErrReviewNotFound)
}

func TestDeleteReview_NonOwnerIsRefused(t *testing.T) {
	svc, reviews, _ := seedReviewService(t)
	ctx := context.Background()

	review, err := svc.AddReview(ctx, "alice@example.com", "movie1", domain.CreateReviewRequest{Rating: 4})
	require.NoError(t, err)

	outcome, err := svc.DeleteReview(ctx, "bob@example.com", review.ID)
	require.NoError(t, err)
	assert.Equal(t, DeleteNotOwner, outcome)
	assert.False(t, outcome.Performed())

	// The review must be left intact.
	stored, err := reviews.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-a", stored.UserID)
}

func TestDeleteReview_MissingReview(t *testing.T) {
	svc, _, _ := seedReviewService(t)

	outcome, err := svc.DeleteReview(context.Background(), "alice@example.com", "no-such-review")
	require.NoError(t, err)
	assert.Equal(t, DeleteNotFound, outcome)
	assert.False(t, outcome.Performed())
}

func TestDeleteReview_UnknownPrincipal(t *testing.T) {
	svc, _, _ := seedReviewService(t)

	_, err := svc.DeleteReview(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestReviewLists(t *testing.T) {
	svc, _, _ := seedReviewService(t)
	ctx := context.Background()

	_, err := svc.AddReview(ctx, "alice@example.com", "movie1", domain.CreateReviewRequest{Rating: 5})
	require.NoError(t, err)
	_, err = svc.AddReview(ctx, "bob@example.com", "movie1", domain.CreateReviewRequest{Rating: 2})
	require.NoError(t, err)
	_, err = svc.AddReview(ctx, "alice@example.com", "movie2", domain.CreateReviewRequest{Rating: 3})
	require.NoError(t, err)

	forMovie, err := svc.ReviewsForMovie(ctx, "movie1")
	require.NoError(t, err)
	assert.Len(t, forMovie, 2)

	byUser, err := svc.ReviewsByUser(ctx, "user-a")
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	empty, err := svc.ReviewsForMovie(ctx, "movie3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

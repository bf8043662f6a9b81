package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
	"github.com/GuidaStefano/WhatToWatchNow/internal/store"
)

// DeleteOutcome reports what happened to a delete request. "Not performed" is
// an expected result the caller branches on, not an error, but the two
// reasons stay distinct so the HTTP layer can map them to different statuses.
type DeleteOutcome int

const (
	DeleteDone DeleteOutcome = iota
	DeleteNotFound
	DeleteNotOwner
)

// Performed reports whether the review was actually removed.
func (o DeleteOutcome) Performed() bool { return o == DeleteDone }

// ReviewService governs review creation and deletion. Every mutation resolves
// the calling principal first and authorizes against the target before
// touching the store.
type ReviewService struct {
	reviews store.ReviewStore
	users   store.UserStore
	logger  *slog.Logger
}

func NewReviewService(reviews store.ReviewStore, users store.UserStore, logger *slog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, users: users, logger: logger}
}

// AddReview stores a review for movieID owned by the calling principal. The
// owner id, movie id and timestamp are stamped here from resolved values; a
// payload claiming a different owner is never trusted.
func (s *ReviewService) AddReview(ctx context.Context, principalEmail, movieID string, req domain.CreateReviewRequest) (*domain.Review, error) {
	caller, err := resolvePrincipal(ctx, s.users, principalEmail)
	if err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:        uuid.NewString(),
		UserID:    caller.ID,
		MovieID:   movieID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.logger.InfoContext(ctx, "Review created",
		slog.String("reviewID", review.ID),
		slog.String("movieID", movieID),
		slog.String("userID", caller.ID))
	return review, nil
}

// DeleteReview removes reviewID if and only if it is owned by the calling
// principal. A missing review and an ownership mismatch both leave the store
// untouched; the outcome tells them apart.
func (s *ReviewService) DeleteReview(ctx context.Context, principalEmail, reviewID string) (DeleteOutcome, error) {
	caller, err := resolvePrincipal(ctx, s.users, principalEmail)
	if err != nil {
		return DeleteNotFound, err
	}

	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			return DeleteNotFound, nil
		}
		return DeleteNotFound, fmt.Errorf("failed to load review: %w", err)
	}

	if review.UserID != caller.ID {
		s.logger.WarnContext(ctx, "Review delete refused, caller is not the owner",
			slog.String("reviewID", reviewID),
			slog.String("ownerID", review.UserID),
			slog.String("callerID", caller.ID))
		return DeleteNotOwner, nil
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return DeleteNotFound, fmt.Errorf("failed to delete review: %w", err)
	}
	s.logger.InfoContext(ctx, "Review deleted", slog.String("reviewID", reviewID), slog.String("userID", caller.ID))
	return DeleteDone, nil
}

// ReviewsForMovie lists all reviews for a movie.
func (s *ReviewService) ReviewsForMovie(ctx context.Context, movieID string) ([]*domain.Review, error) {
	reviews, err := s.reviews.ListByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for movie: %w", err)
	}
	return reviews, nil
}

// ReviewsByUser lists all reviews written by a user.
func (s *ReviewService) ReviewsByUser(ctx context.Context, userID string) ([]*domain.Review, error) {
	reviews, err := s.reviews.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by user: %w", err)
	}
	return reviews, nil
}

package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
	"github.com/GuidaStefano/WhatToWatchNow/internal/service"
)

// AddReview handles POST /api/movies/{movieId}/reviews. The review owner is
// always the session principal; anything the payload claims about ownership
// is discarded by the service.
func (h *HTTPHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	movieID := mux.Vars(r)["movieId"]

	email, ok := principalEmail(ctx)
	if !ok {
		h.respondError(w, r, http.StatusInternalServerError, "Error processing user identity")
		return
	}

	var req domain.CreateReviewRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	review, err := h.reviews.AddReview(ctx, email, movieID, req)
	if err != nil {
		if errors.Is(err, service.ErrNotAuthorized) {
			h.logger.WarnContext(ctx, "Principal from valid token has no user record", slog.String("email", email))
			h.respondError(w, r, http.StatusUnauthorized, "User associated with session not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to create review", slog.String("movieID", movieID), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to create review")
		return
	}
	h.respondJSON(w, r, http.StatusCreated, review)
}

// GetReviewsForMovie handles GET /api/movies/{movieId}/reviews.
func (h *HTTPHandler) GetReviewsForMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	movieID := mux.Vars(r)["movieId"]

	reviews, err := h.reviews.ReviewsForMovie(ctx, movieID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list reviews for movie", slog.String("movieID", movieID), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to list reviews")
		return
	}
	h.respondJSON(w, r, http.StatusOK, reviews)
}

// GetReviewsByUser handles GET /api/users/{userId}/reviews.
func (h *HTTPHandler) GetReviewsByUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := mux.Vars(r)["userId"]

	reviews, err := h.reviews.ReviewsByUser(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list reviews by user", slog.String("userID", userID), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to list reviews")
		return
	}
	h.respondJSON(w, r, http.StatusOK, reviews)
}

// DeleteReview handles DELETE /api/reviews/{reviewId}. A missing review maps
// to 404 and an ownership mismatch to 403; both leave the store untouched.
func (h *HTTPHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reviewID := mux.Vars(r)["reviewId"]

	email, ok := principalEmail(ctx)
	if !ok {
		h.respondError(w, r, http.StatusInternalServerError, "Error processing user identity")
		return
	}

	outcome, err := h.reviews.DeleteReview(ctx, email, reviewID)
	if err != nil {
		if errors.Is(err, service.ErrNotAuthorized) {
			h.respondError(w, r, http.StatusUnauthorized, "User associated with session not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to delete review", slog.String("reviewID", reviewID), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	switch outcome {
	case service.DeleteDone:
		w.WriteHeader(http.StatusNoContent)
	case service.DeleteNotFound:
		h.respondError(w, r, http.StatusNotFound, "Review not found")
	case service.DeleteNotOwner:
		h.respondError(w, r, http.StatusForbidden, "Not authorized to delete this review")
	}
}

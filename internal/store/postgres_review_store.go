package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
)

const reviewColumns = `id, user_id, movie_id, rating, comment, created_at`

// PostgresReviewStore implements ReviewStore for PostgreSQL.
type PostgresReviewStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewPostgresReviewStore(db *sqlx.DB, logger *slog.Logger) (*PostgresReviewStore, error) {
	if db == nil {
		return nil, errors.New("database connection (db) cannot be nil")
	}
	return &PostgresReviewStore{db: db, logger: logger}, nil
}

func (s *PostgresReviewStore) Create(ctx context.Context, review *domain.Review) error {
	query := `INSERT INTO reviews (id, user_id, movie_id, rating, comment, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`

	s.logger.DebugContext(ctx, "Executing Create review query",
		slog.String("reviewID", review.ID),
		slog.String("movieID", review.MovieID),
		slog.String("userID", review.UserID))

	_, err := s.db.ExecContext(ctx, query,
		review.ID, review.UserID, review.MovieID, review.Rating, review.Comment, review.CreatedAt,
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create review in DB", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (s *PostgresReviewStore) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`
	var review domain.Review

	err := s.db.GetContext(ctx, &review, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to get review by ID from DB", slog.String("reviewID", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get review by ID: %w", err)
	}
	return &review, nil
}

func (s *PostgresReviewStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to delete review from DB", slog.String("reviewID", id), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete review: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (s *PostgresReviewStore) ListByMovieID(ctx context.Context, movieID string) ([]*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE movie_id = $1 ORDER BY created_at DESC`

	reviews := []*domain.Review{}
	if err := s.db.SelectContext(ctx, &reviews, query, movieID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to list reviews by movieID from DB", slog.String("movieID", movieID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list reviews by movieID: %w", err)
	}
	return reviews, nil
}

func (s *PostgresReviewStore) ListByUserID(ctx context.Context, userID string) ([]*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE user_id = $1 ORDER BY created_at DESC`

	reviews := []*domain.Review{}
	if err := s.db.SelectContext(ctx, &reviews, query, userID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to list reviews by userID from DB", slog.String("userID", userID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list reviews by userID: %w", err)
	}
	return reviews, nil
}

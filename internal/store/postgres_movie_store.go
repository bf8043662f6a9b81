package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
)

const movieColumns = `id, title, genres, release_year, actors, description, poster_url`

// PostgresMovieStore implements MovieStore for PostgreSQL.
type PostgresMovieStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewPostgresMovieStore(db *sqlx.DB, logger *slog.Logger) (*PostgresMovieStore, error) {
	if db == nil {
		return nil, errors.New("database connection (db) cannot be nil")
	}
	return &PostgresMovieStore{db: db, logger: logger}, nil
}

func (s *PostgresMovieStore) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (id, title, genres, release_year, actors, description, poster_url)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`

	s.logger.DebugContext(ctx, "Executing Create movie query", slog.String("movieID", movie.ID), slog.String("title", movie.Title))
	_, err := s.db.ExecContext(ctx, query,
		movie.ID, movie.Title, movie.Genres, movie.ReleaseYear,
		movie.Actors, movie.Description, movie.PosterURL,
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create movie in DB", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

func (s *PostgresMovieStore) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`
	var movie domain.Movie

	err := s.db.GetContext(ctx, &movie, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to get movie by ID from DB", slog.String("movieID", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get movie by ID: %w", err)
	}
	return &movie, nil
}

// Replace overwrites every mutable field of an existing movie; the id itself
// never changes.
func (s *PostgresMovieStore) Replace(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movies SET title = $1, genres = $2, release_year = $3, actors = $4, description = $5, poster_url = $6
              WHERE id = $7`

	result, err := s.db.ExecContext(ctx, query,
		movie.Title, movie.Genres, movie.ReleaseYear, movie.Actors,
		movie.Description, movie.PosterURL, movie.ID,
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to replace movie in DB", slog.String("movieID", movie.ID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to replace movie: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrMovieNotFound
	}
	return nil
}

// Search translates the filter into WHERE conditions evaluated by PostgreSQL.
// Each active filter contributes one condition; with no conditions the query
// returns the whole catalog.
func (s *PostgresMovieStore) Search(ctx context.Context, filter MovieFilter) ([]*domain.Movie, error) {
	selectQuery := `SELECT ` + movieColumns + ` FROM movies`

	var conditions []string
	var args []interface{}
	argID := 1

	if filter.Query != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", argID, argID))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}
	if filter.Genre != "" {
		conditions = append(conditions, fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(genres) AS g WHERE g ILIKE $%d)", argID))
		args = append(args, "%"+filter.Genre+"%")
		argID++
	}
	if filter.Year != 0 {
		conditions = append(conditions, fmt.Sprintf("release_year = $%d", argID))
		args = append(args, filter.Year)
		argID++
	}
	if filter.Actor != "" {
		conditions = append(conditions, fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(actors) AS a WHERE a ILIKE $%d)", argID))
		args = append(args, "%"+filter.Actor+"%")
		argID++
	}

	if len(conditions) > 0 {
		selectQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	s.logger.DebugContext(ctx, "Executing Search movies query", slog.String("query", selectQuery), slog.Any("args", args))
	movies := []*domain.Movie{}
	if err := s.db.SelectContext(ctx, &movies, selectQuery, args...); err != nil {
		s.logger.ErrorContext(ctx, "Failed to search movies in DB", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	return movies, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
	"github.com/GuidaStefano/WhatToWatchNow/internal/store"
)

// MovieService exposes catalog reads and writes.
type MovieService struct {
	movies store.MovieStore
	logger *slog.Logger
}

func NewMovieService(movies store.MovieStore, logger *slog.Logger) *MovieService {
	return &MovieService{movies: movies, logger: logger}
}

// Search translates the optional filters into a single store predicate and
// executes it. Every parameter is independently optional; an empty string or
// a zero year contributes nothing. With no filters at all the whole catalog
// comes back, in store order. Matching is pushed down to the store, nothing
// is filtered here after the fetch.
func (s *MovieService) Search(ctx context.Context, params domain.MovieSearch) ([]*domain.Movie, error) {
	filter := store.MovieFilter{
		Query: params.Query,
		Genre: params.Genre,
		Year:  params.Year,
		Actor: params.Actor,
	}

	s.logger.DebugContext(ctx, "Searching movies",
		slog.String("query", filter.Query),
		slog.String("genre", filter.Genre),
		slog.Int("year", filter.Year),
		slog.String("actor", filter.Actor),
		slog.Bool("unfiltered", filter.IsEmpty()))

	movies, err := s.movies.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("movie search failed: %w", err)
	}
	return movies, nil
}

func (s *MovieService) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrMovieNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load movie: %w", err)
	}
	return movie, nil
}

// Save creates a new catalog entry with a freshly assigned id.
func (s *MovieService) Save(ctx context.Context, req domain.SaveMovieRequest) (*domain.Movie, error) {
	movie := &domain.Movie{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Genres:      req.Genres,
		ReleaseYear: req.ReleaseYear,
		Actors:      req.Actors,
		Description: req.Description,
		PosterURL:   req.PosterURL,
	}
	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to save movie: %w", err)
	}
	s.logger.InfoContext(ctx, "Movie created", slog.String("movieID", movie.ID), slog.String("title", movie.Title))
	return movie, nil
}

// Replace overwrites all fields of an existing movie with the request body.
func (s *MovieService) Replace(ctx context.Context, id string, req domain.SaveMovieRequest) (*domain.Movie, error) {
	movie := &domain.Movie{
		ID:          id,
		Title:       req.Title,
		Genres:      req.Genres,
		ReleaseYear: req.ReleaseYear,
		Actors:      req.Actors,
		Description: req.Description,
		PosterURL:   req.PosterURL,
	}
	if err := s.movies.Replace(ctx, movie); err != nil {
		if errors.Is(err, store.ErrMovieNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to replace movie: %w", err)
	}
	s.logger.InfoContext(ctx, "Movie replaced", slog.String("movieID", id))
	return movie, nil
}

package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
)

// MovieFilter is the predicate handed down to the store by the search engine.
// A zero-value field contributes no condition; active conditions are combined
// with AND. The store evaluates the filter itself, no post-fetch filtering
// happens above it.
type MovieFilter struct {
	// Query matches as a case-insensitive substring against the title or the
	// description (either one suffices).
	Query string
	// Genre matches as a case-insensitive substring against any genre tag.
	Genre string
	// Year matches the release year exactly.
	Year int
	// Actor matches as a case-insensitive substring against any actor name.
	Actor string
}

// IsEmpty reports whether the filter contributes no condition at all, in which
// case Search returns every stored movie.
func (f MovieFilter) IsEmpty() bool {
	return f.Query == "" && f.Genre == "" && f.Year == 0 && f.Actor == ""
}

// MovieStore defines the operations the catalog needs from its storage.
type MovieStore interface {
	Create(ctx context.Context, movie *domain.Movie) error
	GetByID(ctx context.Context, id string) (*domain.Movie, error)
	Replace(ctx context.Context, movie *domain.Movie) error
	Search(ctx context.Context, filter MovieFilter) ([]*domain.Movie, error)
}

// MockMovieStore is an in-memory MovieStore for tests. It evaluates
// MovieFilter with the same semantics the PostgreSQL implementation pushes
// into SQL.
type MockMovieStore struct {
	mu     sync.RWMutex
	movies map[string]*domain.Movie
	order  []string
}

func NewMockMovieStore() *MockMovieStore {
	return &MockMovieStore{movies: make(map[string]*domain.Movie)}
}

func (m *MockMovieStore) Create(ctx context.Context, movie *domain.Movie) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	movieCopy := *movie
	m.movies[movie.ID] = &movieCopy
	m.order = append(m.order, movie.ID)
	return nil
}

func (m *MockMovieStore) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	movie, ok := m.movies[id]
	if !ok {
		return nil, ErrMovieNotFound
	}
	movieCopy := *movie
	return &movieCopy, nil
}

func (m *MockMovieStore) Replace(ctx context.Context, movie *domain.Movie) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.movies[movie.ID]; !ok {
		return ErrMovieNotFound
	}
	movieCopy := *movie
	m.movies[movie.ID] = &movieCopy
	return nil
}

func (m *MockMovieStore) Search(ctx context.Context, filter MovieFilter) ([]*domain.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := []*domain.Movie{}
	for _, id := range m.order {
		movie, ok := m.movies[id]
		if !ok {
			continue
		}
		if matchesFilter(movie, filter) {
			movieCopy := *movie
			results = append(results, &movieCopy)
		}
	}
	return results, nil
}

func matchesFilter(movie *domain.Movie, filter MovieFilter) bool {
	if filter.Query != "" {
		if !containsFold(movie.Title, filter.Query) && !containsFold(movie.Description, filter.Query) {
			return false
		}
	}
	if filter.Genre != "" && !anyContainsFold(movie.Genres, filter.Genre) {
		return false
	}
	if filter.Year != 0 && movie.ReleaseYear != filter.Year {
		return false
	}
	if filter.Actor != "" && !anyContainsFold(movie.Actors, filter.Actor) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func anyContainsFold(values []string, substr string) bool {
	for _, v := range values {
		if containsFold(v, substr) {
			return true
		}
	}
	return false
}

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
)

func TestMovieFilter_IsEmpty(t *testing.T) {
	assert.True(t, MovieFilter{}.IsEmpty())
	assert.False(t, MovieFilter{Query: "x"}.IsEmpty())
	assert.False(t, MovieFilter{Genre: "x"}.IsEmpty())
	assert.False(t, MovieFilter{Year: 1999}.IsEmpty())
	assert.False(t, MovieFilter{Actor: "x"}.IsEmpty())
}

func TestMatchesFilter(t *testing.T) {
	matrix := &domain.Movie{
		ID:          "movie2",
		Title:       "The Matrix",
		Genres:      []string{"Sci-Fi", "Action"},
		ReleaseYear: 1999,
		Actors:      []string{"Keanu Reeves", "Carrie-Anne Moss"},
		Description: "A hacker learns the truth.",
	}

	tests := []struct {
		name   string
		filter MovieFilter
		want   bool
	}{
		{"empty filter matches", MovieFilter{}, true},
		{"title substring", MovieFilter{Query: "matrix"}, true},
		{"description substring", MovieFilter{Query: "HACKER"}, true},
		{"query miss", MovieFilter{Query: "dinosaur"}, false},
		{"genre substring case-insensitive", MovieFilter{Genre: "sci-fi"}, true},
		{"genre partial element", MovieFilter{Genre: "sci"}, true},
		{"genre miss", MovieFilter{Genre: "romance"}, false},
		{"year exact", MovieFilter{Year: 1999}, true},
		{"year off by one", MovieFilter{Year: 1998}, false},
		{"actor substring", MovieFilter{Actor: "reeves"}, true},
		{"actor miss", MovieFilter{Actor: "dicaprio"}, false},
		{"all filters AND", MovieFilter{Query: "hacker", Genre: "action", Year: 1999, Actor: "keanu"}, true},
		{"one failing term fails the AND", MovieFilter{Query: "hacker", Year: 2010}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesFilter(matrix, tt.filter))
		})
	}
}

func TestMockMovieStore_SearchReturnsCopiesInInsertionOrder(t *testing.T) {
	store := NewMockMovieStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &domain.Movie{ID: "a", Title: "First"}))
	require.NoError(t, store.Create(ctx, &domain.Movie{ID: "b", Title: "Second"}))

	all, err := store.Search(ctx, MovieFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "First", all[0].Title)
	assert.Equal(t, "Second", all[1].Title)

	// Mutating a returned movie must not leak into the store.
	all[0].Title = "Mutated"
	again, err := store.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "First", again.Title)
}

func TestMockMovieStore_Replace(t *testing.T) {
	store := NewMockMovieStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &domain.Movie{ID: "a", Title: "First", Actors: []string{"Someone"}}))
	require.NoError(t, store.Replace(ctx, &domain.Movie{ID: "a", Title: "Renamed"}))

	stored, err := store.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Title)
	assert.Empty(t, stored.Actors)

	assert.ErrorIs(t, store.Replace(ctx, &domain.Movie{ID: "zz"}), ErrMovieNotFound)
}

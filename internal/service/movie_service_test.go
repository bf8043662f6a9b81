package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
	"github.com/GuidaStefano/WhatToWatchNow/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedCatalog(t *testing.T) (*MovieService, *store.MockMovieStore) {
	t.Helper()
	movies := store.NewMockMovieStore()
	svc := NewMovieService(movies, testLogger())

	ctx := context.Background()
	fixtures := []*domain.Movie{
		{
			ID:          "movie1",
			Title:       "Inception",
			Genres:      []string{"Sci-Fi", "Action"},
			ReleaseYear: 2010,
			Actors:      []string{"Leonardo DiCaprio"},
			Description: "Mind-bending thriller",
		},
		{
			ID:          "movie2",
			Title:       "The Matrix",
			Genres:      []string{"Sci-Fi", "Action"},
			ReleaseYear: 1999,
			Actors:      []string{"Keanu Reeves"},
			Description: "A hacker learns the truth.",
		},
		{
			ID:          "movie3",
			Title:       "Amelie",
			Genres:      []string{"Romance", "Comedy"},
			ReleaseYear: 2001,
			Actors:      []string{"Audrey Tautou"},
			Description: "A shy waitress changes lives around her.",
		},
	}
	for _, m := range fixtures {
		require.NoError(t, movies.Create(ctx, m))
	}
	return svc, movies
}

func titles(movies []*domain.Movie) []string {
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Title)
	}
	return out
}

func TestSearch_NoFilters_ReturnsWholeCatalog(t *testing.T) {
	svc, _ := seedCatalog(t)

	result, err := svc.Search(context.Background(), domain.MovieSearch{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inception", "The Matrix", "Amelie"}, titles(result))
}

func TestSearch_EmptyStringsBehaveLikeAbsent(t *testing.T) {
	svc, _ := seedCatalog(t)

	result, err := svc.Search(context.Background(), domain.MovieSearch{Query: "", Genre: "", Actor: ""})
	require.NoError(t, err)
	assert.Len(t, result, 3)
}

func TestSearch_QueryMatchesTitleOrDescription(t *testing.T) {
	svc, _ := seedCatalog(t)
	ctx := context.Background()

	// "hacker" only appears in The Matrix's description.
	result, err := svc.Search(ctx, domain.MovieSearch{Query: "hacker"})
	require.NoError(t, err)
	assert.Equal(t, []string{"The Matrix"}, titles(result))

	// "Inception" only appears in a title.
	result, err = svc.Search(ctx, domain.MovieSearch{Query: "Inception"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Inception"}, titles(result))
}

func TestSearch_QueryIsCaseInsensitive(t *testing.T) {
	svc, _ := seedCatalog(t)
	ctx := context.Background()

	lower, err := svc.Search(ctx, domain.MovieSearch{Query: "hacker"})
	require.NoError(t, err)
	upper, err := svc.Search(ctx, domain.MovieSearch{Query: "HACKER"})
	require.NoError(t, err)
	assert.Equal(t, titles(lower), titles(upper))
	assert.Equal(t, []string{"The Matrix"}, titles(upper))
}

func TestSearch_YearMatchesExactly(t *testing.T) {
	svc, _ := seedCatalog(t)

	result, err := svc.Search(context.Background(), domain.MovieSearch{Year: 2010})
	require.NoError(t, err)
	require.Len(t, result, 1)
	for _, m := range result {
		assert.Equal(t, 2010, m.ReleaseYear)
	}
}

func TestSearch_GenreSubstringCaseInsensitive(t *testing.T) {
	svc, _ := seedCatalog(t)

	result, err := svc.Search(context.Background(), domain.MovieSearch{Genre: "sci-fi"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inception", "The Matrix"}, titles(result))
}

func TestSearch_ActorSubstringCaseInsensitive(t *testing.T) {
	svc, _ := seedCatalog(t)

	result, err := svc.Search(context.Background(), domain.MovieSearch{Actor: "keanu"})
	require.NoError(t, err)
	assert.Equal(t, []string{"The Matrix"}, titles(result))
}

func TestSearch_CombinedFiltersAndTogether(t *testing.T) {
	svc, _ := seedCatalog(t)

	// Both Inception and The Matrix are Sci-Fi; only Inception is from 2010.
	result, err := svc.Search(context.Background(), domain.MovieSearch{Genre: "sci-fi", Year: 2010})
	require.NoError(t, err)
	assert.Equal(t, []string{"Inception"}, titles(result))
}

func TestSearch_CombinedFiltersNoMatch(t *testing.T) {
	svc, _ := seedCatalog(t)

	result, err := svc.Search(context.Background(), domain.MovieSearch{Query: "hacker", Year: 2010})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestGetByID(t *testing.T) {
	svc, _ := seedCatalog(t)
	ctx := context.Background()

	movie, err := svc.GetByID(ctx, "movie1")
	require.NoError(t, err)
	assert.Equal(t, "Inception", movie.Title)

	_, err = svc.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveAndReplace(t *testing.T) {
	svc, _ := seedCatalog(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, domain.SaveMovieRequest{
		Title:       "Arrival",
		Genres:      []string{"Sci-Fi"},
		ReleaseYear: 2016,
		Actors:      []string{"Amy Adams"},
		Description: "A linguist decodes an alien language.",
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	replaced, err := svc.Replace(ctx, saved.ID, domain.SaveMovieRequest{
		Title:       "Arrival",
		Genres:      []string{"Sci-Fi", "Drama"},
		ReleaseYear: 2016,
		Description: "A linguist decodes an alien language.",
	})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, replaced.ID)
	assert.Equal(t, []string(replaced.Genres), []string{"Sci-Fi", "Drama"})
	// Full replace: the actor list from the first save is gone.
	assert.Empty(t, replaced.Actors)

	_, err = svc.Replace(ctx, "missing-id", domain.SaveMovieRequest{
		Title:       "X",
		Genres:      []string{"Drama"},
		Description: "x",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

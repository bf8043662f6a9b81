package domain

import (
	"github.com/lib/pq"
)

// Movie represents a catalog entry. The ID is assigned by the store on first
// save and never changes; every other field is replaced wholesale on update.
type Movie struct {
	ID          string         `json:"id" db:"id"`
	Title       string         `json:"title" db:"title"`
	Genres      pq.StringArray `json:"genres" db:"genres"`
	ReleaseYear int            `json:"release_year,omitempty" db:"release_year"`
	Actors      pq.StringArray `json:"actors" db:"actors"`
	Description string         `json:"description" db:"description"`
	PosterURL   string         `json:"poster_url,omitempty" db:"poster_url"`
}

// MovieSearch carries the optional catalog filters. An empty string or a zero
// year means the filter is absent; any combination, including none, is valid.
type MovieSearch struct {
	Query string
	Genre string
	Year  int
	Actor string
}

// SaveMovieRequest defines the request body for creating or replacing a movie.
type SaveMovieRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Genres      []string `json:"genres" validate:"required,min=1,dive,min=1,max=50"`
	ReleaseYear int      `json:"release_year,omitempty" validate:"omitempty,gte=1888,lte=2100"`
	Actors      []string `json:"actors,omitempty" validate:"omitempty,dive,min=1,max=100"`
	Description string   `json:"description" validate:"required,min=1"`
	PosterURL   string   `json:"poster_url,omitempty" validate:"omitempty,url"`
}

package domain

import (
	"time"
)

// Review represents a user's review of a movie. UserID, MovieID and CreatedAt
// are stamped by the server at creation time and never taken from the caller's
// payload.
type Review struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	MovieID   string    `json:"movie_id" db:"movie_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateReviewRequest defines the request body for posting a review. The
// target movie comes from the URL and the owner from the session, so the body
// carries only the caller-supplied fields.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment,omitempty" validate:"max=2000"`
}

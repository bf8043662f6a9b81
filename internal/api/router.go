package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewHTTPRouter wires all routes. Catalog and movie-review reads are public;
// every mutation and the profile endpoints sit behind the auth middleware.
func NewHTTPRouter(h *HTTPHandler) *mux.Router {
	router := mux.NewRouter()

	apiRouter := router.PathPrefix("/api").Subrouter()

	// Public endpoints.
	apiRouter.HandleFunc("/users/register", h.RegisterUser).Methods(http.MethodPost)
	apiRouter.HandleFunc("/users/login", h.LoginUser).Methods(http.MethodPost)
	apiRouter.HandleFunc("/movies", h.SearchMovies).Methods(http.MethodGet)
	apiRouter.HandleFunc("/movies/{id}", h.GetMovie).Methods(http.MethodGet)
	apiRouter.HandleFunc("/movies/{movieId}/reviews", h.GetReviewsForMovie).Methods(http.MethodGet)

	// Authenticated endpoints.
	authRouter := apiRouter.NewRoute().Subrouter()
	authRouter.Use(h.AuthMiddleware)
	authRouter.HandleFunc("/users/me", h.GetCurrentUser).Methods(http.MethodGet)
	authRouter.HandleFunc("/users/me", h.UpdateCurrentUser).Methods(http.MethodPut)
	authRouter.HandleFunc("/users/{userId}/reviews", h.GetReviewsByUser).Methods(http.MethodGet)
	authRouter.HandleFunc("/movies", h.AddMovie).Methods(http.MethodPost)
	authRouter.HandleFunc("/movies/{id}", h.ReplaceMovie).Methods(http.MethodPut)
	authRouter.HandleFunc("/movies/{movieId}/reviews", h.AddReview).Methods(http.MethodPost)
	authRouter.HandleFunc("/reviews/{reviewId}", h.DeleteReview).Methods(http.MethodDelete)

	return router
}

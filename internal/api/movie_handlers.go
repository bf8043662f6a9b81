package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
	"github.com/GuidaStefano/WhatToWatchNow/internal/service"
)

// SearchMovies handles GET /api/movies. All four filters are optional query
// parameters; absent and empty behave the same.
func (h *HTTPHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	params := domain.MovieSearch{
		Query: q.Get("query"),
		Genre: q.Get("genre"),
		Actor: q.Get("actor"),
	}
	if yearStr := q.Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			h.respondError(w, r, http.StatusBadRequest, "Invalid year parameter")
			return
		}
		params.Year = year
	}

	movies, err := h.movies.Search(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "Movie search failed", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to search movies")
		return
	}
	h.respondJSON(w, r, http.StatusOK, movies)
}

// GetMovie handles GET /api/movies/{id}.
func (h *HTTPHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	movie, err := h.movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.respondError(w, r, http.StatusNotFound, "Movie not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to get movie", slog.String("movieID", id), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to retrieve movie")
		return
	}
	h.respondJSON(w, r, http.StatusOK, movie)
}

// AddMovie handles POST /api/movies.
func (h *HTTPHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.SaveMovieRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	movie, err := h.movies.Save(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to save movie", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to save movie")
		return
	}
	h.respondJSON(w, r, http.StatusCreated, movie)
}

// ReplaceMovie handles PUT /api/movies/{id}, a full-field replace.
func (h *HTTPHandler) ReplaceMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var req domain.SaveMovieRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	movie, err := h.movies.Replace(ctx, id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.respondError(w, r, http.StatusNotFound, "Movie not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to replace movie", slog.String("movieID", id), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to replace movie")
		return
	}
	h.respondJSON(w, r, http.StatusOK, movie)
}

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/GuidaStefano/WhatToWatchNow/internal/service"
	"github.com/GuidaStefano/WhatToWatchNow/pkg/auth"
)

// HTTPHandler turns HTTP requests into core service calls. All identity
// handling happens at this boundary: the middleware validates the session
// token and the handlers pass the resolved principal email into the services
// as an explicit argument.
type HTTPHandler struct {
	movies       *service.MovieService
	users        *service.UserService
	reviews      *service.ReviewService
	logger       *slog.Logger
	validator    *validator.Validate
	tokenManager auth.TokenManager
}

func NewHTTPHandler(
	movies *service.MovieService,
	users *service.UserService,
	reviews *service.ReviewService,
	logger *slog.Logger,
	v *validator.Validate,
	tm auth.TokenManager,
) *HTTPHandler {
	return &HTTPHandler{
		movies:       movies,
		users:        users,
		reviews:      reviews,
		logger:       logger,
		validator:    v,
		tokenManager: tm,
	}
}

func (h *HTTPHandler) respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			h.logger.ErrorContext(r.Context(), "Failed to encode JSON response", slog.String("error", err.Error()), slog.String("path", r.URL.Path))
		}
	}
}

func (h *HTTPHandler) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.respondJSON(w, r, status, map[string]string{"error": message})
}

// decodeAndValidate decodes the request body into dst and runs the validator
// over it. It writes the error response itself and reports whether the
// handler may proceed.
func (h *HTTPHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.String("error", err.Error()), slog.String("path", r.URL.Path))
		h.respondError(w, r, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	defer r.Body.Close()

	if err := h.validator.StructCtx(r.Context(), dst); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.String("error", err.Error()), slog.String("path", r.URL.Path))
		h.respondError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return false
	}
	return true
}

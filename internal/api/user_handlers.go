package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
	"github.com/GuidaStefano/WhatToWatchNow/internal/service"
)

// RegisterUser handles POST /api/users/register.
func (h *HTTPHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.RegisterRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.Register(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			h.respondError(w, r, http.StatusConflict, "Email already exists")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to register user", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to register user")
		return
	}
	h.respondJSON(w, r, http.StatusCreated, user)
}

// LoginUser handles POST /api/users/login and issues a session token.
func (h *HTTPHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.LoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.respondError(w, r, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.logger.ErrorContext(ctx, "Login failed", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Login failed")
		return
	}

	token, err := h.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to generate session token", slog.String("userID", user.ID), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Login failed")
		return
	}

	h.respondJSON(w, r, http.StatusOK, domain.LoginResponse{User: user, Token: token})
}

// GetCurrentUser handles GET /api/users/me.
func (h *HTTPHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	email, ok := principalEmail(ctx)
	if !ok {
		h.respondError(w, r, http.StatusInternalServerError, "Error processing user identity")
		return
	}

	user, err := h.users.ResolveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrNotAuthorized) {
			h.logger.WarnContext(ctx, "Principal from valid token has no user record", slog.String("email", email))
			h.respondError(w, r, http.StatusUnauthorized, "User associated with session not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to resolve current user", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to retrieve profile")
		return
	}
	h.respondJSON(w, r, http.StatusOK, user)
}

// UpdateCurrentUser handles PUT /api/users/me. The target profile is the
// caller's own; the ownership check in the service still runs against the
// resolved id.
func (h *HTTPHandler) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	email, ok := principalEmail(ctx)
	if !ok {
		h.respondError(w, r, http.StatusInternalServerError, "Error processing user identity")
		return
	}

	var req domain.UpdateProfileRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	caller, err := h.users.ResolveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrNotAuthorized) {
			h.respondError(w, r, http.StatusUnauthorized, "User associated with session not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to resolve current user", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	user, err := h.users.UpdateProfile(ctx, email, caller.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthorized):
			h.respondError(w, r, http.StatusForbidden, "Not authorized to update this profile")
		case errors.Is(err, service.ErrNotFound):
			h.respondError(w, r, http.StatusNotFound, "User not found")
		default:
			h.logger.ErrorContext(ctx, "Failed to update profile", slog.String("error", err.Error()))
			h.respondError(w, r, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}
	h.respondJSON(w, r, http.StatusOK, user)
}

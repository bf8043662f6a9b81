package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
	"github.com/GuidaStefano/WhatToWatchNow/internal/store"
	"github.com/GuidaStefano/WhatToWatchNow/pkg/auth"
)

// UserService handles registration, login checks and profile management.
type UserService struct {
	users  store.UserStore
	logger *slog.Logger
}

func NewUserService(users store.UserStore, logger *slog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Register creates a new account. The email pre-check gives the common case a
// clean ErrEmailTaken; the unique index in the store closes the remaining
// race between two concurrent registrations.
func (s *UserService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Nickname:     req.Nickname,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "User registered", slog.String("userID", user.ID), slog.String("email", user.Email))
	return scrub(user), nil
}

// Authenticate verifies an email/password pair and returns the account. The
// same ErrInvalidCredentials covers both an unknown email and a wrong
// password.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return scrub(user), nil
}

// ResolveByEmail maps the authenticated principal to its user record, with
// the credential scrubbed. Missing records surface as ErrIdentityNotFound.
func (s *UserService) ResolveByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := resolvePrincipal(ctx, s.users, email)
	if err != nil {
		return nil, err
	}
	return scrub(user), nil
}

// UpdateProfile applies a partial profile update to targetUserID on behalf of
// the calling principal. Only the owner may update a profile. The nickname is
// replaced only when a non-empty value was sent; the profile picture is
// replaced whenever the field was present at all, so an explicit empty string
// clears it.
func (s *UserService) UpdateProfile(ctx context.Context, principalEmail, targetUserID string, req domain.UpdateProfileRequest) (*domain.User, error) {
	caller, err := resolvePrincipal(ctx, s.users, principalEmail)
	if err != nil {
		return nil, err
	}
	if caller.ID != targetUserID {
		s.logger.WarnContext(ctx, "Profile update refused, caller is not the profile owner",
			slog.String("targetUserID", targetUserID),
			slog.String("callerID", caller.ID))
		return nil, ErrNotAuthorized
	}

	user, err := s.users.GetByID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if req.Nickname != nil && *req.Nickname != "" {
		user.Nickname = *req.Nickname
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.InfoContext(ctx, "Profile updated", slog.String("userID", user.ID))
	return scrub(user), nil
}

// scrub returns a copy with the credential removed so it never leaves the
// service layer.
func scrub(user *domain.User) *domain.User {
	userCopy := *user
	userCopy.PasswordHash = ""
	return &userCopy
}

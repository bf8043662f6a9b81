// Package service holds the application core: catalog search composition,
// the ownership checks guarding every review and profile mutation, and the
// principal-to-user identity resolution both of them rely on.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
	"github.com/GuidaStefano/WhatToWatchNow/internal/store"
)

var (
	// ErrNotFound signals that a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthorized signals that the resolved caller is not the owner of
	// the targeted resource.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrIdentityNotFound signals that the authenticated principal maps to no
	// user record. That is a server-consistency fault, not client input, and
	// is a sub-kind of ErrNotAuthorized: errors.Is(err, ErrNotAuthorized)
	// holds for it.
	ErrIdentityNotFound = fmt.Errorf("principal has no user record: %w", ErrNotAuthorized)
	// ErrEmailTaken signals a registration attempt with an email that already
	// belongs to an account.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials signals a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// resolvePrincipal maps the authenticated principal (an email) to its user
// record. Every governed mutation starts here; the principal is always an
// explicit parameter, never pulled from ambient state.
func resolvePrincipal(ctx context.Context, users store.UserStore, email string) (*domain.User, error) {
	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to resolve principal: %w", err)
	}
	return user, nil
}

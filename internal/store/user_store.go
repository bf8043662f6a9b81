package store

import (
	"context"
	"errors"
	"sync"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
)

// UserStore defines the operations the user service needs from its storage.
// The unique index on email is what ultimately closes the registration race;
// Create surfaces it as ErrUserAlreadyExists.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update persists the mutable profile fields (nickname, profile picture).
	Update(ctx context.Context, user *domain.User) error
}

// MockUserStore is an in-memory UserStore for tests.
type MockUserStore struct {
	mu           sync.RWMutex
	users        map[string]*domain.User
	usersByEmail map[string]*domain.User
}

func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users:        make(map[string]*domain.User),
		usersByEmail: make(map[string]*domain.User),
	}
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.usersByEmail[user.Email]; exists {
		return ErrUserAlreadyExists
	}
	userCopy := *user
	m.users[user.ID] = &userCopy
	m.usersByEmail[user.Email] = &userCopy
	return nil
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	userCopy := *user
	return &userCopy, nil
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.usersByEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	userCopy := *user
	return &userCopy, nil
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.users[user.ID]
	if !ok {
		return ErrUserNotFound
	}
	existing.Nickname = user.Nickname
	existing.ProfilePicture = user.ProfilePicture
	return nil
}

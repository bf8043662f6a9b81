package store

import (
	"context"
	"errors"
	"sync"

	"github.com/GuidaStefano/WhatToWatchNow/internal/domain"
)

var (
	ErrReviewNotFound = errors.New("review not found")
)

// ReviewStore defines the operations the review service needs from its
// storage. Delete is unconditional here; the ownership check happens in the
// service, which needs to tell "review absent" apart from "not the owner".
type ReviewStore interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
	ListByMovieID(ctx context.Context, movieID string) ([]*domain.Review, error)
	ListByUserID(ctx context.Context, userID string) ([]*domain.Review, error)
}

// MockReviewStore is an in-memory ReviewStore for tests.
type MockReviewStore struct {
	mu      sync.RWMutex
	reviews map[string]*domain.Review
	order   []string
}

func NewMockReviewStore() *MockReviewStore {
	return &MockReviewStore{reviews: make(map[string]*domain.Review)}
}

func (m *MockReviewStore) Create(ctx context.Context, review *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	reviewCopy := *review
	m.reviews[review.ID] = &reviewCopy
	m.order = append(m.order, review.ID)
	return nil
}

func (m *MockReviewStore) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	review, ok := m.reviews[id]
	if !ok {
		return nil, ErrReviewNotFound
	}
	reviewCopy := *review
	return &reviewCopy, nil
}

func (m *MockReviewStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reviews[id]; !ok {
		return ErrReviewNotFound
	}
	delete(m.reviews, id)
	return nil
}

func (m *MockReviewStore) ListByMovieID(ctx context.Context, movieID string) ([]*domain.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	results := []*domain.Review{}
	for _, id := range m.order {
		review, ok := m.reviews[id]
		if !ok || review.MovieID != movieID {
			continue
		}
		reviewCopy := *review
		results = append(results, &reviewCopy)
	}
	return results, nil
}

func (m *MockReviewStore) ListByUserID(ctx context.Context, userID string) ([]*domain.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	results := []*domain.Review{}
	for _, id := range m.order {
		review, ok := m.reviews[id]
		if !ok || review.UserID != userID {
			continue
		}
		reviewCopy := *review
		results = append(results, &reviewCopy)
	}
	return results, nil
}

// Package store provides the in-memory staff roster.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"quorum/internal/roster/models"
	"quorum/internal/sentinel"
)

// InMemoryUserStore keeps roster users keyed by id with a username index.
type InMemoryUserStore struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*models.User
	byUsername map[string]uuid.UUID
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		byID:       make(map[uuid.UUID]*models.User),
		byUsername: make(map[string]uuid.UUID),
	}
}

func usernameKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (s *InMemoryUserStore) Insert(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[u.ID]; ok {
		return sentinel.ErrAlreadyUsed
	}
	if _, ok := s.byUsername[usernameKey(u.Username)]; ok {
		return sentinel.ErrAlreadyUsed
	}
	clone := u.Clone()
	s.byID[clone.ID] = clone
	s.byUsername[usernameKey(clone.Username)] = clone.ID
	return nil
}

func (s *InMemoryUserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.byID[id]; ok {
		return u.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.byUsername[usernameKey(username)]; ok {
		return s.byID[id].Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

// List returns users matching the filter, ordered by username for stable
// console rendering.
func (s *InMemoryUserStore) List(_ context.Context, filter models.UserFilter) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(filter.Term))
	out := make([]*models.User, 0, len(s.byID))
	for _, u := range s.byID {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(u.Username), term) &&
			!strings.Contains(strings.ToLower(u.FullName), term) &&
			!strings.Contains(strings.ToLower(u.Email), term) {
			continue
		}
		out = append(out, u.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (s *InMemoryUserStore) UpdateRole(_ context.Context, id uuid.UUID, role models.Role) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	u.Role = role
	return u.Clone(), nil
}

// MarkSeen records a presence observation for the user, if known. Unknown
// actors are ignored; the IdP may hold accounts the roster never imported.
func (s *InMemoryUserStore) MarkSeen(username, deviceSummary string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byUsername[usernameKey(username)]
	if !ok {
		return
	}
	u := s.byID[id]
	u.IsLoggedIn = true
	u.LastLogin = &at
	if deviceSummary != "" {
		u.LastDevice = deviceSummary
	}
}

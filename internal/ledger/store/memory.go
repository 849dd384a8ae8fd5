// Package store provides the in-memory registration ledger. Activities are
// kept newest-first; past entries are never edited or deleted.
package store

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"quorum/internal/ledger/models"
	"quorum/internal/sentinel"
)

// InMemoryLedgerStore stores registrations and their activity trail.
type InMemoryLedgerStore struct {
	mu            sync.RWMutex
	activities    []*models.RegistrationActivity // newest first
	registrations map[uuid.UUID]*models.Registration
	active        map[string]uuid.UUID // (member|event) -> active registration id
}

func NewInMemoryLedgerStore() *InMemoryLedgerStore {
	return &InMemoryLedgerStore{
		registrations: make(map[uuid.UUID]*models.Registration),
		active:        make(map[string]uuid.UUID),
	}
}

func pairKey(memberID, eventID uuid.UUID) string {
	return memberID.String() + "|" + eventID.String()
}

// AppendActivity prepends an activity so queries read newest-first.
func (s *InMemoryLedgerStore) AppendActivity(_ context.Context, a *models.RegistrationActivity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := *a
	s.activities = append([]*models.RegistrationActivity{&entry}, s.activities...)
	return nil
}

// SaveRegistration records a committed registration and marks it active for
// its (member, event) pair.
func (s *InMemoryLedgerStore) SaveRegistration(_ context.Context, r *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := *r
	s.registrations[record.ID] = &record
	s.active[pairKey(record.MemberID, record.EventID)] = record.ID
	return nil
}

// FindRegistration returns a committed registration by id.
func (s *InMemoryLedgerStore) FindRegistration(_ context.Context, id uuid.UUID) (*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.registrations[id]; ok {
		record := *r
		return &record, nil
	}
	return nil, sentinel.ErrNotFound
}

// ActiveRegistration returns the registration currently in force for the
// pair, or sentinel.ErrNotFound when the pair is Unregistered.
func (s *InMemoryLedgerStore) ActiveRegistration(_ context.Context, memberID, eventID uuid.UUID) (*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.active[pairKey(memberID, eventID)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	record := *s.registrations[id]
	return &record, nil
}

// Deactivate transitions the pair back to Unregistered. The registration
// record itself is retained for the audit trail.
func (s *InMemoryLedgerStore) Deactivate(_ context.Context, memberID, eventID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey(memberID, eventID)
	if _, ok := s.active[key]; !ok {
		return sentinel.ErrInvalidState
	}
	delete(s.active, key)
	return nil
}

// QueryActivities returns one page of activities matching all supplied
// filters, newest-first, plus the pre-pagination total. The date range is
// inclusive on both ends.
func (s *InMemoryLedgerStore) QueryActivities(_ context.Context, page, pageSize int, filter models.ActivityFilter) ([]*models.RegistrationActivity, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]*models.RegistrationActivity, 0)
	for _, a := range s.activities {
		if !matchesFilter(a, filter) {
			continue
		}
		filtered = append(filtered, a)
	}

	total := len(filtered)
	start := (page - 1) * pageSize
	if start >= total {
		return []*models.RegistrationActivity{}, total, nil
	}
	end := min(start+pageSize, total)

	out := make([]*models.RegistrationActivity, 0, end-start)
	for _, a := range filtered[start:end] {
		entry := *a
		out = append(out, &entry)
	}
	return out, total, nil
}

func matchesFilter(a *models.RegistrationActivity, f models.ActivityFilter) bool {
	if f.From != nil && a.Timestamp.Before(*f.From) {
		return false
	}
	if f.To != nil && a.Timestamp.After(*f.To) {
		return false
	}
	if f.Action != "" && a.Action != f.Action {
		return false
	}
	if f.MemberName != "" && !strings.Contains(strings.ToLower(a.MemberName), strings.ToLower(f.MemberName)) {
		return false
	}
	return true
}

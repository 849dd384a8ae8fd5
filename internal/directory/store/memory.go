// Package store provides the in-memory member directory. Records are owned by
// the store; all reads hand out clones in directory insertion order.
package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"quorum/internal/directory/models"
	"quorum/internal/sentinel"
)

// InMemoryMemberStore holds the member directory between registry syncs.
type InMemoryMemberStore struct {
	mu         sync.RWMutex
	members    []*models.Member
	byID       map[uuid.UUID]*models.Member
	lastSyncAt time.Time
}

func NewInMemoryMemberStore() *InMemoryMemberStore {
	return &InMemoryMemberStore{byID: make(map[uuid.UUID]*models.Member)}
}

// Insert appends a member to the directory, preserving insertion order.
func (s *InMemoryMemberStore) Insert(_ context.Context, m *models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[m.ID]; ok {
		return sentinel.ErrAlreadyUsed
	}
	record := m.Clone()
	s.members = append(s.members, record)
	s.byID[record.ID] = record
	return nil
}

// FindByID returns a clone of the member with the given id.
func (s *InMemoryMemberStore) FindByID(_ context.Context, id uuid.UUID) (*models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.byID[id]; ok {
		return m.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

// FindByCriteria returns members matching all non-empty criteria fields, in
// insertion order. No match is not an error; the result is simply empty.
func (s *InMemoryMemberStore) FindByCriteria(_ context.Context, c models.SearchCriteria) ([]*models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*models.Member, 0)
	for _, m := range s.members {
		if matchesCriteria(m, c) {
			results = append(results, m.Clone())
		}
	}
	return results, nil
}

func matchesCriteria(m *models.Member, c models.SearchCriteria) bool {
	if c.NationalID != "" && m.NationalID != c.NationalID {
		return false
	}
	if c.CRNumber != "" && m.CRNumber != c.CRNumber {
		return false
	}
	if c.MembershipNumber != "" && !strings.EqualFold(m.MembershipNumber, c.MembershipNumber) {
		return false
	}
	if c.PassportNumber != "" && m.PassportNumber != c.PassportNumber {
		return false
	}
	if c.GCCNumber != "" && m.GCCNumber != c.GCCNumber {
		return false
	}
	if c.FreeText != "" && !matchesFreeText(m, c.FreeText) {
		return false
	}
	return true
}

func matchesFreeText(m *models.Member, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{m.FullName, m.NationalID, m.PassportNumber, m.GCCNumber, m.MembershipNumber} {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// List returns one page of the dashboard list selected by kind, optionally
// narrowed by a case-insensitive search term, plus the pre-pagination total.
// Pages are 1-indexed; a page beyond the filtered set yields an empty slice
// with the correct total.
func (s *InMemoryMemberStore) List(_ context.Context, kind models.ListKind, page, pageSize int, term string) ([]*models.Member, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]*models.Member, 0)
	for _, m := range s.members {
		if !matchesKind(m, kind) {
			continue
		}
		if term != "" && !matchesListTerm(m, kind, term) {
			continue
		}
		filtered = append(filtered, m)
	}

	total := len(filtered)
	start := (page - 1) * pageSize
	if start >= total {
		return []*models.Member{}, total, nil
	}
	end := min(start+pageSize, total)

	pageSlice := make([]*models.Member, 0, end-start)
	for _, m := range filtered[start:end] {
		pageSlice = append(pageSlice, m.Clone())
	}
	return pageSlice, total, nil
}

func matchesKind(m *models.Member, kind models.ListKind) bool {
	switch kind {
	case models.ListEligible:
		return m.IsEligible
	case models.ListAttendees:
		return m.IsAttended
	case models.ListRegistered:
		return m.IsRegistered
	default:
		return false
	}
}

// matchesListTerm narrows a dashboard list by name or national-ID; the
// eligible and registered lists additionally match on membership number.
func matchesListTerm(m *models.Member, kind models.ListKind, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(m.FullName), term) {
		return true
	}
	if strings.Contains(m.NationalID, term) {
		return true
	}
	if kind == models.ListEligible || kind == models.ListRegistered {
		return strings.Contains(strings.ToLower(m.MembershipNumber), term)
	}
	return false
}

// Update replaces the stored record for the member's id.
func (s *InMemoryMemberStore) Update(_ context.Context, m *models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.byID[m.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	updated := m.Clone()
	for i, record := range s.members {
		if record == existing {
			s.members[i] = updated
			break
		}
	}
	s.byID[m.ID] = updated
	return nil
}

// ReplaceSnapshot swaps the entire directory for a fresh registry snapshot and
// records the sync time. Invoked by the registry sync when a refresh completes.
func (s *InMemoryMemberStore) ReplaceSnapshot(_ context.Context, members []*models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := make([]*models.Member, 0, len(members))
	byID := make(map[uuid.UUID]*models.Member, len(members))
	for _, m := range members {
		record := m.Clone()
		fresh = append(fresh, record)
		byID[record.ID] = record
	}
	s.members = fresh
	s.byID = byID
	s.lastSyncAt = time.Now()
	return nil
}

// LastSyncAt reports when the directory contents were last replaced.
// The zero time means no sync has completed since startup.
func (s *InMemoryMemberStore) LastSyncAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSyncAt
}

// Counts returns the directory-wide tallies used by the event dashboard.
func (s *InMemoryMemberStore) Counts(_ context.Context) (total, eligible, registered, attended int, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total = len(s.members)
	for _, m := range s.members {
		if m.IsEligible {
			eligible++
		}
		if m.IsRegistered {
			registered++
		}
		if m.IsAttended {
			attended++
		}
	}
	return total, eligible, registered, attended, nil
}

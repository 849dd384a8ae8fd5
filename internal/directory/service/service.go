// Package service orchestrates member directory lookups for the search screen
// and the three dashboard lists. All operations are read-only.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	directorymetrics "quorum/internal/directory/metrics"
	"quorum/internal/directory/models"
	"quorum/internal/sentinel"
	dErrors "quorum/pkg/domain-errors"
)

const (
	defaultPageSize  = 10
	maxPageSize      = 100
	maxCriteriaChars = 128
)

// DirectoryService answers member lookups against the directory store.
type DirectoryService struct {
	members MemberStore
	logger  *slog.Logger
	metrics *directorymetrics.Metrics
}

func New(members MemberStore, opts ...Option) *DirectoryService {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &DirectoryService{
		members: members,
		logger:  cfg.logger,
		metrics: cfg.metrics,
	}
}

// Search returns members matching the given criteria in directory insertion
// order. Empty criteria return the full directory; no match returns an empty
// slice, never an error.
func (s *DirectoryService) Search(ctx context.Context, criteria models.SearchCriteria) ([]*models.Member, error) {
	start := time.Now()
	criteria = trimCriteria(criteria)
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	results, err := s.members.FindByCriteria(ctx, criteria)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "member search failed")
	}

	if s.metrics != nil {
		s.metrics.IncrementSearches()
		s.metrics.ObserveSearch(start)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "member search",
			"results", len(results),
			"free_text", criteria.FreeText != "",
		)
	}
	return results, nil
}

// GetMember fetches a single member by id.
func (s *DirectoryService) GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	if id == uuid.Nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "member id required")
	}
	member, err := s.members.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "member not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "member lookup failed")
	}
	return member, nil
}

// List serves one page of a dashboard list (eligible, attendees, registered).
// The returned total always reflects the full filtered set regardless of page.
func (s *DirectoryService) List(ctx context.Context, kind models.ListKind, page, pageSize int, term string) ([]*models.Member, int, error) {
	switch kind {
	case models.ListEligible, models.ListAttendees, models.ListRegistered:
	default:
		return nil, 0, dErrors.New(dErrors.CodeBadRequest, "unknown member list")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	term = strings.TrimSpace(term)
	if len(term) > maxCriteriaChars {
		return nil, 0, dErrors.New(dErrors.CodeValidation, "search term too long")
	}

	members, total, err := s.members.List(ctx, kind, page, pageSize, term)
	if err != nil {
		return nil, 0, dErrors.Wrap(err, dErrors.CodeInternal, "member list failed")
	}

	if s.metrics != nil {
		s.metrics.IncrementListRequests(string(kind))
	}
	return members, total, nil
}

func trimCriteria(c models.SearchCriteria) models.SearchCriteria {
	c.NationalID = strings.TrimSpace(c.NationalID)
	c.CRNumber = strings.TrimSpace(c.CRNumber)
	c.MembershipNumber = strings.TrimSpace(c.MembershipNumber)
	c.PassportNumber = strings.TrimSpace(c.PassportNumber)
	c.GCCNumber = strings.TrimSpace(c.GCCNumber)
	c.FreeText = strings.TrimSpace(c.FreeText)
	return c
}

func validateCriteria(c models.SearchCriteria) error {
	for _, field := range []string{c.NationalID, c.CRNumber, c.MembershipNumber, c.PassportNumber, c.GCCNumber, c.FreeText} {
		if len(field) > maxCriteriaChars {
			return dErrors.New(dErrors.CodeValidation, "search criteria value too long")
		}
	}
	return nil
}

// Package service owns the current event and its registry sync. Concurrent
// sync triggers collapse into one upstream fetch; every completed sync,
// successful or not, is appended to the history.
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	dirmodels "quorum/internal/directory/models"
	"quorum/internal/event/models"
	"quorum/internal/event/registry"
	dErrors "quorum/pkg/domain-errors"
)

// DirectoryStore is the slice of the directory contract this service needs.
type DirectoryStore interface {
	ReplaceSnapshot(ctx context.Context, members []*dirmodels.Member) error
	Counts(ctx context.Context) (total, eligible, registered, attended int, err error)
	LastSyncAt() time.Time
}

type EventService struct {
	event   models.Event
	members DirectoryStore
	source  registry.Source
	group   singleflight.Group
	logger  *slog.Logger

	mu      sync.RWMutex
	history []models.SyncStatus // newest first
}

func NewEventService(event models.Event, members DirectoryStore, source registry.Source, logger *slog.Logger) *EventService {
	return &EventService{
		event:   event,
		members: members,
		source:  source,
		logger:  logger,
	}
}

// CurrentEvent returns the administered event with live directory tallies.
func (s *EventService) CurrentEvent(ctx context.Context) (*models.Event, error) {
	total, eligible, registered, attended, err := s.members.Counts(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "directory counts failed")
	}

	event := s.event
	event.Counts = models.Counts{
		TotalMembers: total,
		Eligible:     eligible,
		Registered:   registered,
		Attended:     attended,
	}
	if at := s.members.LastSyncAt(); !at.IsZero() {
		event.LastSyncAt = &at
	}
	return &event, nil
}

// Sync refreshes the member directory from the registry. Triggers arriving
// while a sync is in flight share its outcome instead of fetching again.
func (s *EventService) Sync(ctx context.Context, actorID string) (*models.SyncStatus, error) {
	v, err, _ := s.group.Do("registry-sync", func() (any, error) {
		// The flight's outcome is shared by every collapsed caller, so it
		// must not die with the context of whichever trigger arrived first.
		return s.runSync(context.WithoutCancel(ctx), actorID)
	})
	if err != nil {
		return nil, err
	}
	status := v.(models.SyncStatus)
	return &status, nil
}

func (s *EventService) runSync(ctx context.Context, actorID string) (any, error) {
	status := models.SyncStatus{
		ID:          uuid.New(),
		StartedAt:   time.Now(),
		TriggeredBy: actorID,
	}

	members, err := s.source.FetchMembers(ctx)
	if err != nil {
		status.CompletedAt = time.Now()
		status.Outcome = models.SyncFailed
		status.Error = err.Error()
		s.appendHistory(status)
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "registry sync failed", "error", err, "actor", actorID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "member registry unavailable")
	}

	if err := s.members.ReplaceSnapshot(ctx, members); err != nil {
		status.CompletedAt = time.Now()
		status.Outcome = models.SyncFailed
		status.Error = err.Error()
		s.appendHistory(status)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "directory snapshot replace failed")
	}

	status.CompletedAt = time.Now()
	status.Outcome = models.SyncSucceeded
	status.MembersSynced = len(members)
	s.appendHistory(status)

	if s.logger != nil {
		s.logger.InfoContext(ctx, "registry sync completed",
			"members_synced", status.MembersSynced,
			"actor", actorID,
			"log_type", "audit",
		)
	}
	return status, nil
}

// SyncHistory returns past syncs, newest-first.
func (s *EventService) SyncHistory(_ context.Context) ([]models.SyncStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SyncStatus, len(s.history))
	copy(out, s.history)
	return out, nil
}

func (s *EventService) appendHistory(status models.SyncStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append([]models.SyncStatus{status}, s.history...)
}

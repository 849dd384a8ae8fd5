// Package service implements staff roster operations: listing console users,
// assigning roles, and searching the identity provider directory.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"quorum/internal/roster/models"
	"quorum/internal/sentinel"
	dErrors "quorum/pkg/domain-errors"
)

const maxTermLength = 128

type RosterService struct {
	users  UserStore
	idp    IdPDirectory
	logger *slog.Logger
}

func NewRosterService(users UserStore, idp IdPDirectory, logger *slog.Logger) *RosterService {
	return &RosterService{users: users, idp: idp, logger: logger}
}

// ListUsers returns roster users matching the filter.
func (s *RosterService) ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error) {
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown role filter")
	}
	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "user listing failed")
	}
	return users, nil
}

// GetUser returns one roster user by id.
func (s *RosterService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if id == uuid.Nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user id required")
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "user lookup failed")
	}
	return user, nil
}

// AssignRole changes a user's console role. The console must always retain
// at least one SuperAdmin, so demoting the last one is rejected.
func (s *RosterService) AssignRole(ctx context.Context, id uuid.UUID, role models.Role, actorID string) (*models.User, error) {
	if id == uuid.Nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user id required")
	}
	if !role.Valid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown role")
	}

	current, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Role == models.RoleSuperAdmin && role != models.RoleSuperAdmin {
		remaining, listErr := s.users.List(ctx, models.UserFilter{Role: models.RoleSuperAdmin})
		if listErr != nil {
			return nil, dErrors.Wrap(listErr, dErrors.CodeInternal, "user listing failed")
		}
		if len(remaining) <= 1 {
			return nil, dErrors.New(dErrors.CodeConflict, "cannot demote the last SuperAdmin")
		}
	}

	updated, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "role update failed")
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "role assigned",
			"user_id", updated.ID,
			"username", updated.Username,
			"role", updated.Role,
			"actor", actorID,
			"log_type", "audit",
		)
	}
	return updated, nil
}

// SearchIdP queries the identity provider directory.
func (s *RosterService) SearchIdP(ctx context.Context, term string) ([]models.IdPUser, error) {
	term = strings.TrimSpace(term)
	if len(term) > maxTermLength {
		return nil, dErrors.New(dErrors.CodeValidation, "search term too long")
	}
	results, err := s.idp.Search(ctx, term)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "identity provider unavailable")
	}
	return results, nil
}

package service

import (
	"context"

	"github.com/google/uuid"

	"quorum/internal/roster/models"
)

// UserStore defines the persistence contract the roster service needs.
type UserStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter) ([]*models.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role models.Role) (*models.User, error)
}

// IdPDirectory searches the identity provider for accounts that can be
// granted console access.
type IdPDirectory interface {
	Search(ctx context.Context, term string) ([]models.IdPUser, error)
}

package service

import (
	"context"

	"github.com/google/uuid"

	"quorum/internal/directory/models"
)

// MemberStore defines the persistence contract the directory service needs.
// Test doubles implement the same contract as the in-memory store.
type MemberStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
	FindByCriteria(ctx context.Context, criteria models.SearchCriteria) ([]*models.Member, error)
	List(ctx context.Context, kind models.ListKind, page, pageSize int, term string) ([]*models.Member, int, error)
}

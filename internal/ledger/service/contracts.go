package service

import (
	"context"

	"github.com/google/uuid"

	dirmodels "quorum/internal/directory/models"
	"quorum/internal/ledger/models"
)

// LedgerStore defines the persistence contract the ledger service needs.
// Test doubles implement the same contract as the in-memory store.
type LedgerStore interface {
	AppendActivity(ctx context.Context, a *models.RegistrationActivity) error
	SaveRegistration(ctx context.Context, r *models.Registration) error
	FindRegistration(ctx context.Context, id uuid.UUID) (*models.Registration, error)
	ActiveRegistration(ctx context.Context, memberID, eventID uuid.UUID) (*models.Registration, error)
	Deactivate(ctx context.Context, memberID, eventID uuid.UUID) error
	QueryActivities(ctx context.Context, page, pageSize int, filter models.ActivityFilter) ([]*models.RegistrationActivity, int, error)
}

// MemberStore is the slice of the directory the ledger needs to read member
// identity and flip registration flags.
type MemberStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*dirmodels.Member, error)
	Update(ctx context.Context, m *dirmodels.Member) error
}

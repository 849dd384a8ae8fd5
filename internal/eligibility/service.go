package eligibility

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"quorum/internal/directory/models"
	"quorum/internal/directory/readmodels"
	"quorum/internal/sentinel"
	dErrors "quorum/pkg/domain-errors"
)

// MemberStore is the slice of the directory contract this service needs.
type MemberStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
}

// Service answers detail expansions, tallies, and attendance commits.
type Service struct {
	members MemberStore
	calc    *Calculator
	logger  *slog.Logger
}

func NewService(members MemberStore, calc *Calculator, logger *slog.Logger) *Service {
	return &Service{members: members, calc: calc, logger: logger}
}

// Details expands a member into the registration detail read model.
func (s *Service) Details(ctx context.Context, memberID uuid.UUID) (*readmodels.MemberDetails, error) {
	member, err := s.findMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return s.calc.Expand(member), nil
}

// TallyVotes computes the voting weight for the given selection without
// committing anything. Unknown membership ids are ignored.
func (s *Service) TallyVotes(ctx context.Context, memberID uuid.UUID, selected []uuid.UUID) (int, error) {
	member, err := s.findMember(ctx, memberID)
	if err != nil {
		return 0, err
	}
	details := s.calc.Expand(member)
	return SelectedVotesTotal(details, NewSelection(selected...)), nil
}

// RecordAttendance commits the operator's selection: the member is marked
// attended with the selected memberships stamped and the tallied voting weight
// stored. Requires the member to be registered and not already attended.
func (s *Service) RecordAttendance(ctx context.Context, memberID uuid.UUID, selected []uuid.UUID, actorName string) (*readmodels.MemberDetails, error) {
	member, err := s.findMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !member.IsRegistered {
		return nil, dErrors.New(dErrors.CodeConflict, "member is not registered for the event")
	}
	if member.IsAttended {
		return nil, dErrors.New(dErrors.CodeConflict, "attendance already recorded")
	}

	details := s.calc.Expand(member)
	selection := NewSelection(selected...)

	eligibleByID := make(map[uuid.UUID]struct{}, len(details.EligibleMemberships))
	for _, ms := range details.EligibleMemberships {
		eligibleByID[ms.ID] = struct{}{}
	}
	known := 0
	for id := range selection {
		if _, ok := eligibleByID[id]; ok {
			known++
		}
	}
	if known == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "at least one eligible membership must be selected")
	}

	total := SelectedVotesTotal(details, selection)
	now := time.Now()

	member.IsAttended = true
	member.AttendanceDate = &now
	member.AttendanceDateTime = &now
	member.TotalVotesTaken = total
	for i := range member.Memberships {
		ms := &member.Memberships[i]
		if _, ok := selection[ms.ID]; ok {
			ms.IsAttended = true
			ms.AttendedBy = member.FullName
		}
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record attendance")
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "attendance recorded",
			"member_id", member.ID,
			"votes_taken", total,
			"actor", actorName,
			"log_type", "audit",
		)
	}
	return s.calc.Expand(member), nil
}

func (s *Service) findMember(ctx context.Context, memberID uuid.UUID) (*models.Member, error) {
	if memberID == uuid.Nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "member id required")
	}
	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "member not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "member lookup failed")
	}
	return member, nil
}

// Package service implements the registration ledger write path. All writes
// for a given (member, event) pair are serialized so concurrent desk actions
// resolve to exactly one committed outcome.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	dirmodels "quorum/internal/directory/models"
	"quorum/internal/ledger/models"
	"quorum/internal/ledger/tracer"
	"quorum/internal/sentinel"
	dErrors "quorum/pkg/domain-errors"
	platformsync "quorum/pkg/platform/sync"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Actor identifies the staff user performing a ledger action.
type Actor struct {
	ID   string
	Name string
}

// LedgerService owns registration and unregistration for the current event.
type LedgerService struct {
	ledger  LedgerStore
	members MemberStore
	eventID uuid.UUID
	locks   *platformsync.ShardedMutex
	logger  *slog.Logger
	metrics metricsRecorder
	tracer  tracer.Tracer
}

// metricsRecorder decouples the service from the concrete prometheus wiring.
type metricsRecorder interface {
	IncrementRegistrations()
	IncrementUnregistrations()
	IncrementWriteConflicts()
	ObserveWrite(start time.Time)
}

// noopMetrics is used when no metrics are wired, e.g. in tests.
type noopMetrics struct{}

func (noopMetrics) IncrementRegistrations()   {}
func (noopMetrics) IncrementUnregistrations() {}
func (noopMetrics) IncrementWriteConflicts()  {}
func (noopMetrics) ObserveWrite(time.Time)    {}

func NewLedgerService(ledger LedgerStore, members MemberStore, eventID uuid.UUID, opts ...Option) *LedgerService {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	s := &LedgerService{
		ledger:  ledger,
		members: members,
		eventID: eventID,
		locks:   platformsync.NewShardedMutex(),
		logger:  cfg.logger,
		metrics: noopMetrics{},
		tracer:  cfg.tracer,
	}
	if cfg.metrics != nil {
		s.metrics = cfg.metrics
	}
	if s.tracer == nil {
		s.tracer = tracer.NewNoop()
	}
	return s
}

func (s *LedgerService) lockKey(memberID uuid.UUID) string {
	return memberID.String() + "|" + s.eventID.String()
}

// Register commits a registration for the member at the current event. A
// member already registered is rejected with a conflict; the rejected attempt
// is still appended to the activity trail.
func (s *LedgerService) Register(ctx context.Context, memberID uuid.UUID, actor Actor) (*models.Registration, error) {
	start := time.Now()
	defer s.metrics.ObserveWrite(start)

	ctx, span := s.tracer.Start(ctx, tracer.SpanRegister,
		tracer.String(tracer.AttrMemberID, memberID.String()),
		tracer.String(tracer.AttrEventID, s.eventID.String()),
		tracer.String(tracer.AttrPerformedBy, actor.ID),
	)
	var err error
	defer func() { span.End(err) }()

	member, err := s.findMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	key := s.lockKey(memberID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	if _, activeErr := s.ledger.ActiveRegistration(ctx, memberID, s.eventID); activeErr == nil {
		err = dErrors.New(dErrors.CodeConflict, "member is already registered for the event")
		s.rejectWrite(ctx, span, member, models.ActionRegister, actor, err)
		return nil, err
	}

	now := time.Now()
	reg := &models.Registration{
		ID:              uuid.New(),
		MemberID:        member.ID,
		MemberName:      member.FullName,
		EventID:         s.eventID,
		Action:          models.ActionRegister,
		PerformedBy:     actor.ID,
		PerformedByName: actor.Name,
		Timestamp:       now,
	}
	reg.RegistrationPass = registrationPass(reg.ID)
	reg.QRCode = qrPayload(reg)

	if err = s.ledger.SaveRegistration(ctx, reg); err != nil {
		err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to save registration")
		return nil, err
	}
	s.appendActivity(ctx, span, member, models.ActionRegister, actor, now, nil)

	member.IsRegistered = true
	member.IsUnregistered = false
	member.RegistrationDate = &now
	if err = s.members.Update(ctx, member); err != nil {
		err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to update member registration flags")
		return nil, err
	}

	s.metrics.IncrementRegistrations()
	s.audit(ctx, "member registered", member, actor)
	return reg, nil
}

// UnregisterByID reverses the registration with the given id. The original
// record is retained; the reversal is a new ledger action.
func (s *LedgerService) UnregisterByID(ctx context.Context, registrationID uuid.UUID, actor Actor) error {
	if registrationID == uuid.Nil {
		return dErrors.New(dErrors.CodeBadRequest, "registration id required")
	}
	reg, err := s.ledger.FindRegistration(ctx, registrationID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "registration not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "registration lookup failed")
	}
	return s.UnregisterMember(ctx, reg.MemberID, actor)
}

// UnregisterMember reverses the active registration for the member at the
// current event, clearing any recorded attendance with it. Unregistering a
// member who is not registered is rejected with a conflict and the attempt
// is appended to the activity trail.
func (s *LedgerService) UnregisterMember(ctx context.Context, memberID uuid.UUID, actor Actor) error {
	start := time.Now()
	defer s.metrics.ObserveWrite(start)

	ctx, span := s.tracer.Start(ctx, tracer.SpanUnregister,
		tracer.String(tracer.AttrMemberID, memberID.String()),
		tracer.String(tracer.AttrEventID, s.eventID.String()),
		tracer.String(tracer.AttrPerformedBy, actor.ID),
	)
	var err error
	defer func() { span.End(err) }()

	member, err := s.findMember(ctx, memberID)
	if err != nil {
		return err
	}

	key := s.lockKey(memberID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	if deactivateErr := s.ledger.Deactivate(ctx, memberID, s.eventID); deactivateErr != nil {
		if errors.Is(deactivateErr, sentinel.ErrInvalidState) {
			err = dErrors.New(dErrors.CodeConflict, "member is not registered for the event")
			s.rejectWrite(ctx, span, member, models.ActionUnregister, actor, err)
			return err
		}
		err = dErrors.Wrap(deactivateErr, dErrors.CodeInternal, "failed to unregister")
		return err
	}

	// The reversal is recorded through the activity trail only; saving a
	// new registration record would re-activate the pair.
	now := time.Now()
	s.appendActivity(ctx, span, member, models.ActionUnregister, actor, now, nil)

	member.IsRegistered = false
	member.IsUnregistered = true
	member.RegistrationDate = nil
	// An unregister reverses recorded attendance too: a member cannot count
	// as an attendee while unregistered.
	member.IsAttended = false
	member.AttendanceDate = nil
	member.AttendanceDateTime = nil
	member.TotalVotesTaken = 0
	for i := range member.Memberships {
		member.Memberships[i].IsAttended = false
		member.Memberships[i].AttendedBy = ""
	}
	if err = s.members.Update(ctx, member); err != nil {
		err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to update member registration flags")
		return err
	}

	s.metrics.IncrementUnregistrations()
	s.audit(ctx, "member unregistered", member, actor)
	return nil
}

// QueryActivities returns one page of the activity trail, newest-first.
func (s *LedgerService) QueryActivities(ctx context.Context, page, pageSize int, filter models.ActivityFilter) ([]*models.RegistrationActivity, int, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanQueryActivities)
	var err error
	defer func() { span.End(err) }()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		err = dErrors.New(dErrors.CodeValidation, "date range end precedes start")
		return nil, 0, err
	}

	activities, total, queryErr := s.ledger.QueryActivities(ctx, page, pageSize, filter)
	if queryErr != nil {
		err = dErrors.Wrap(queryErr, dErrors.CodeInternal, "activity query failed")
		return nil, 0, err
	}
	return activities, total, nil
}

func (s *LedgerService) findMember(ctx context.Context, memberID uuid.UUID) (*dirmodels.Member, error) {
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

// rejectWrite appends a failed activity for an attempt the ledger refused.
// Append errors are logged, not returned; the caller already has the
// conflict to report.
func (s *LedgerService) rejectWrite(ctx context.Context, span tracer.Span, member *dirmodels.Member, action models.RegistrationAction, actor Actor, cause error) {
	s.metrics.IncrementWriteConflicts()
	span.SetAttributes(tracer.Bool(tracer.AttrRejected, true))
	s.appendActivity(ctx, span, member, action, actor, time.Now(), cause)
}

func (s *LedgerService) appendActivity(ctx context.Context, span tracer.Span, member *dirmodels.Member, action models.RegistrationAction, actor Actor, ts time.Time, cause error) {
	activity := &models.RegistrationActivity{
		ID:               uuid.New(),
		MemberID:         member.ID,
		MemberName:       member.FullName,
		MemberNationalID: member.NationalID,
		Action:           action,
		PerformedBy:      actor.ID,
		PerformedByName:  actor.Name,
		Timestamp:        ts,
		Status:           models.StatusSuccess,
	}
	if cause != nil {
		activity.Status = models.StatusFailed
		activity.ErrorMessage = cause.Error()
	}
	if err := s.ledger.AppendActivity(ctx, activity); err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "failed to append ledger activity",
				"member_id", member.ID,
				"action", action,
				"error", err,
			)
		}
		return
	}
	span.AddEvent(tracer.EventActivityAppended,
		tracer.String(tracer.AttrNationalID, tracer.HashNationalID(member.NationalID)),
	)
}

func (s *LedgerService) audit(ctx context.Context, msg string, member *dirmodels.Member, actor Actor) {
	if s.logger == nil {
		return
	}
	s.logger.InfoContext(ctx, msg,
		"member_id", member.ID,
		"actor", actor.ID,
		"actor_name", actor.Name,
		"log_type", "audit",
	)
}

// registrationPass derives the short pass printed at the desk.
func registrationPass(id uuid.UUID) string {
	return "PASS-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

// qrPayload encodes the registration reference scanned at the hall entrance.
func qrPayload(r *models.Registration) string {
	return fmt.Sprintf("quorum://registration/%s?member=%s", r.ID, r.MemberID)
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quorum/internal/ledger/models"
	"quorum/internal/sentinel"
)

func newActivity(memberName string, action models.RegistrationAction, ts time.Time) *models.RegistrationActivity {
	return &models.RegistrationActivity{
		ID:         uuid.New(),
		MemberID:   uuid.New(),
		MemberName: memberName,
		Action:     action,
		Timestamp:  ts,
		Status:     models.StatusSuccess,
	}
}

func TestActiveRegistrationLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryLedgerStore()
	memberID := uuid.New()
	eventID := uuid.New()

	_, err := s.ActiveRegistration(ctx, memberID, eventID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	reg := &models.Registration{
		ID:       uuid.New(),
		MemberID: memberID,
		EventID:  eventID,
		Action:   models.ActionRegister,
	}
	require.NoError(t, s.SaveRegistration(ctx, reg))

	active, err := s.ActiveRegistration(ctx, memberID, eventID)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, active.ID)

	require.NoError(t, s.Deactivate(ctx, memberID, eventID))
	_, err = s.ActiveRegistration(ctx, memberID, eventID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	// the record survives deactivation for the audit trail
	found, err := s.FindRegistration(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, memberID, found.MemberID)
}

func TestDeactivateWhenNotActive(t *testing.T) {
	s := NewInMemoryLedgerStore()
	err := s.Deactivate(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, sentinel.ErrInvalidState)
}

func TestActivitiesAreNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryLedgerStore()
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.AppendActivity(ctx, newActivity("Fatima Al Said", models.ActionRegister, base)))
	require.NoError(t, s.AppendActivity(ctx, newActivity("Fatima Al Said", models.ActionUnregister, base.Add(time.Hour))))
	require.NoError(t, s.AppendActivity(ctx, newActivity("Fatima Al Said", models.ActionRegister, base.Add(2*time.Hour))))

	page, total, err := s.QueryActivities(ctx, 1, 10, models.ActivityFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 3)
	assert.Equal(t, models.ActionRegister, page[0].Action)
	assert.Equal(t, models.ActionUnregister, page[1].Action)
	assert.True(t, page[0].Timestamp.After(page[2].Timestamp))
}

func TestQueryActivitiesFilters(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryLedgerStore()
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.AppendActivity(ctx, newActivity("Fatima Al Said", models.ActionRegister, base)))
	require.NoError(t, s.AppendActivity(ctx, newActivity("Khalid Al Busaidi", models.ActionRegister, base.AddDate(0, 0, 1))))
	require.NoError(t, s.AppendActivity(ctx, newActivity("Khalid Al Busaidi", models.ActionUnregister, base.AddDate(0, 0, 2))))

	t.Run("date range is inclusive on both ends", func(t *testing.T) {
		from := base
		to := base.AddDate(0, 0, 1)
		page, total, err := s.QueryActivities(ctx, 1, 10, models.ActivityFilter{From: &from, To: &to})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, page, 2)
	})

	t.Run("action filter", func(t *testing.T) {
		_, total, err := s.QueryActivities(ctx, 1, 10, models.ActivityFilter{Action: models.ActionUnregister})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("member name is a case-insensitive substring", func(t *testing.T) {
		page, total, err := s.QueryActivities(ctx, 1, 10, models.ActivityFilter{MemberName: "khalid"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, page, 2)
		assert.Equal(t, "Khalid Al Busaidi", page[0].MemberName)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		_, total, err := s.QueryActivities(ctx, 1, 10, models.ActivityFilter{
			MemberName: "khalid",
			Action:     models.ActionRegister,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})
}

func TestQueryActivitiesPagination(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryLedgerStore()
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.AppendActivity(ctx, newActivity("Member", models.ActionRegister, base.Add(time.Duration(i)*time.Minute))))
	}

	page, total, err := s.QueryActivities(ctx, 2, 2, models.ActivityFilter{})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)

	beyond, total, err := s.QueryActivities(ctx, 4, 2, models.ActivityFilter{})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, beyond)
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"quorum/internal/event/models"
	"quorum/internal/platform/middleware"
	dErrors "quorum/pkg/domain-errors"
)

type stubService struct {
	event   *models.Event
	status  *models.SyncStatus
	history []models.SyncStatus
	err     error

	gotActor string
}

func (s *stubService) CurrentEvent(context.Context) (*models.Event, error) {
	return s.event, s.err
}

func (s *stubService) Sync(_ context.Context, actorID string) (*models.SyncStatus, error) {
	s.gotActor = actorID
	return s.status, s.err
}

func (s *stubService) SyncHistory(context.Context) ([]models.SyncStatus, error) {
	return s.history, s.err
}

type HandlerSuite struct {
	suite.Suite
	router  http.Handler
	service *stubService
}

func (s *HandlerSuite) SetupTest() {
	s.service = &stubService{}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := NewHandler(s.service, logger)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := middleware.WithActor(req.Context(), middleware.Actor{ID: "amal.s", Name: "Amal Super"})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	h.Register(r)
	h.RegisterAdmin(r)
	s.router = r
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) TestCurrentEvent() {
	s.service.event = &models.Event{
		ID:     uuid.New(),
		Name:   "Annual General Meeting 2024",
		Counts: models.Counts{TotalMembers: 5, Eligible: 4},
	}

	req := httptest.NewRequest(http.MethodGet, "/event", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	var got models.Event
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal(5, got.Counts.TotalMembers)
}

func (s *HandlerSuite) TestSyncStampsActor() {
	s.service.status = &models.SyncStatus{ID: uuid.New(), Outcome: models.SyncSucceeded, MembersSynced: 4}

	req := httptest.NewRequest(http.MethodPost, "/event/sync", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("amal.s", s.service.gotActor)
}

func (s *HandlerSuite) TestSyncUnavailable() {
	s.service.err = dErrors.New(dErrors.CodeUnavailable, "member registry unavailable")

	req := httptest.NewRequest(http.MethodPost, "/event/sync", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *HandlerSuite) TestSyncHistoryEmptyIsNotNull() {
	req := httptest.NewRequest(http.MethodGet, "/event/sync/history", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"syncs":[]`)
}

package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"quorum/internal/ledger/handler/mocks"
	"quorum/internal/ledger/models"
	"quorum/internal/ledger/service"
	"quorum/internal/platform/middleware"
	dErrors "quorum/pkg/domain-errors"
)

type HandlerSuite struct {
	suite.Suite
	router      http.Handler
	ctrl        *gomock.Controller
	mockService *mocks.MockService
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.ctrl)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := NewHandler(s.mockService, logger)

	r := chi.NewRouter()
	// stamp the desk operator the way the auth middleware would
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := middleware.WithActor(req.Context(), middleware.Actor{ID: "staff-17", Name: "Layla Operator"})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	h.Register(r)
	s.router = r
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) TestRegister_Created() {
	memberID := uuid.New()
	reg := &models.Registration{
		ID:       uuid.New(),
		MemberID: memberID,
		Action:   models.ActionRegister,
	}
	s.mockService.EXPECT().
		Register(gomock.Any(), memberID, service.Actor{ID: "staff-17", Name: "Layla Operator"}).
		Return(reg, nil)

	body, err := json.Marshal(RegisterRequest{MemberID: memberID})
	require.NoError(s.T(), err)

	req := httptest.NewRequest(http.MethodPost, "/registrations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusCreated, rec.Code)
	var got models.Registration
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(s.T(), reg.ID, got.ID)
}

func (s *HandlerSuite) TestRegister_InvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/registrations",
		bytes.NewReader([]byte("not valid json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code,
		"expected 400 for invalid JSON")
}

func (s *HandlerSuite) TestRegister_Conflict() {
	memberID := uuid.New()
	s.mockService.EXPECT().
		Register(gomock.Any(), memberID, gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeConflict, "member is already registered for the event"))

	body, _ := json.Marshal(RegisterRequest{MemberID: memberID})
	req := httptest.NewRequest(http.MethodPost, "/registrations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusConflict, rec.Code)
}

func (s *HandlerSuite) TestUnregister_NoContent() {
	registrationID := uuid.New()
	s.mockService.EXPECT().
		UnregisterByID(gomock.Any(), registrationID, gomock.Any()).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/registrations/"+registrationID.String()+"/unregister", nil)
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusNoContent, rec.Code)
}

func (s *HandlerSuite) TestUnregister_BadID() {
	req := httptest.NewRequest(http.MethodPost, "/registrations/not-a-uuid/unregister", nil)
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestActivities_FiltersParsed() {
	s.mockService.EXPECT().
		QueryActivities(gomock.Any(), 2, 25, gomock.Cond(func(f models.ActivityFilter) bool {
			return f.Action == models.ActionRegister &&
				f.MemberName == "fatima" &&
				f.From != nil && f.From.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) &&
				f.To != nil && f.To.After(time.Date(2024, 3, 11, 23, 0, 0, 0, time.UTC))
		})).
		Return([]*models.RegistrationActivity{}, 0, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/registrations/activities?page=2&page_size=25&action=Register&member_name=fatima&from=2024-03-10&to=2024-03-11", nil)
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	var body ActivityListResponse
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotNil(s.T(), body.Activities)
	assert.Equal(s.T(), 0, body.Total)
}

func (s *HandlerSuite) TestActivities_UnknownAction() {
	req := httptest.NewRequest(http.MethodGet, "/registrations/activities?action=Delete", nil)
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestActivities_BadDate() {
	req := httptest.NewRequest(http.MethodGet, "/registrations/activities?from=yesterday", nil)
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

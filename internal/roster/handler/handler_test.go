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

	"quorum/internal/platform/middleware"
	"quorum/internal/roster/models"
	dErrors "quorum/pkg/domain-errors"
)

// stubService records calls and returns canned results.
type stubService struct {
	users      []*models.User
	user       *models.User
	idpResults []models.IdPUser
	err        error

	gotFilter models.UserFilter
	gotRole   models.Role
	gotActor  string
}

func (s *stubService) ListUsers(_ context.Context, filter models.UserFilter) ([]*models.User, error) {
	s.gotFilter = filter
	return s.users, s.err
}

func (s *stubService) GetUser(context.Context, uuid.UUID) (*models.User, error) {
	return s.user, s.err
}

func (s *stubService) AssignRole(_ context.Context, _ uuid.UUID, role models.Role, actorID string) (*models.User, error) {
	s.gotRole = role
	s.gotActor = actorID
	return s.user, s.err
}

func (s *stubService) SearchIdP(context.Context, string) ([]models.IdPUser, error) {
	return s.idpResults, s.err
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
			ctx := middleware.WithActor(req.Context(), middleware.Actor{ID: "amal.s", Name: "Amal Super", Role: string(models.RoleSuperAdmin)})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	h.Register(r)
	h.RegisterSuperAdmin(r)
	s.router = r
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) TestList_FilterParsed() {
	s.service.users = []*models.User{{ID: uuid.New(), Username: "layla.o"}}

	req := httptest.NewRequest(http.MethodGet, "/users?role=Admin&q=layla", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(models.RoleAdmin, s.service.gotFilter.Role)
	s.Equal("layla", s.service.gotFilter.Term)

	var body UserListResponse
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(1, body.Total)
}

func (s *HandlerSuite) TestList_EmptyIsNotNull() {
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"users":[]`)
}

func (s *HandlerSuite) TestGet_BadID() {
	req := httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestAssignRole_ActorStamped() {
	target := uuid.New()
	s.service.user = &models.User{ID: target, Username: "layla.o", Role: models.RoleAdmin}

	body, _ := json.Marshal(RoleRequest{Role: models.RoleAdmin})
	req := httptest.NewRequest(http.MethodPut, "/users/"+target.String()+"/role", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(models.RoleAdmin, s.service.gotRole)
	s.Equal("amal.s", s.service.gotActor)
}

func (s *HandlerSuite) TestAssignRole_ConflictSurfaces() {
	s.service.err = dErrors.New(dErrors.CodeConflict, "cannot demote the last SuperAdmin")

	body, _ := json.Marshal(RoleRequest{Role: models.RoleAdmin})
	req := httptest.NewRequest(http.MethodPut, "/users/"+uuid.NewString()+"/role", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerSuite) TestIdPSearch() {
	s.service.idpResults = []models.IdPUser{{Username: "new.hire"}}

	req := httptest.NewRequest(http.MethodGet, "/users/idp?q=new", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	var body IdPListResponse
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(1, body.Total)
	s.Equal("new.hire", body.Users[0].Username)
}

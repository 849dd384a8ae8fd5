// Package handler exposes the staff roster endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"quorum/internal/platform/middleware"
	"quorum/internal/roster/models"
	dErrors "quorum/pkg/domain-errors"
	"quorum/pkg/platform/httputil"
)

// Service defines the interface the HTTP layer depends on.
type Service interface {
	ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	AssignRole(ctx context.Context, id uuid.UUID, role models.Role, actorID string) (*models.User, error)
	SearchIdP(ctx context.Context, term string) ([]models.IdPUser, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/users", h.HandleList)
	r.Get("/users/idp", h.HandleIdPSearch)
	r.Get("/users/{id}", h.HandleGet)
}

// RegisterSuperAdmin mounts role assignment; the router gates it to
// SuperAdmins.
func (h *Handler) RegisterSuperAdmin(r chi.Router) {
	r.Put("/users/{id}/role", h.HandleAssignRole)
}

// RoleRequest carries the role to assign.
type RoleRequest struct {
	Role models.Role `json:"role"`
}

// UserListResponse is the roster listing envelope.
type UserListResponse struct {
	Users []*models.User `json:"users"`
	Total int            `json:"total"`
}

// IdPListResponse is the identity provider search envelope.
type IdPListResponse struct {
	Users []models.IdPUser `json:"users"`
	Total int              `json:"total"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := models.UserFilter{
		Role: models.Role(q.Get("role")),
		Term: q.Get("q"),
	}
	users, err := h.service.ListUsers(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "user listing failed",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	if users == nil {
		users = []*models.User{}
	}

	httputil.WriteJSON(w, http.StatusOK, UserListResponse{Users: users, Total: len(users)})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid user id"))
		return
	}

	user, err := h.service.GetUser(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "user lookup failed",
			"error", err,
			"user_id", id,
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) HandleAssignRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid user id"))
		return
	}

	req, ok := httputil.DecodeJSON[RoleRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	actor := middleware.GetActor(ctx)
	user, err := h.service.AssignRole(ctx, id, req.Role, actor.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "role assignment failed",
			"error", err,
			"user_id", id,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) HandleIdPSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	results, err := h.service.SearchIdP(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.logger.ErrorContext(ctx, "identity provider search failed",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	if results == nil {
		results = []models.IdPUser{}
	}

	httputil.WriteJSON(w, http.StatusOK, IdPListResponse{Users: results, Total: len(results)})
}

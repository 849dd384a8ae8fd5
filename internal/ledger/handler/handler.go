// Package handler exposes the registration desk endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"quorum/internal/ledger/models"
	"quorum/internal/ledger/service"
	"quorum/internal/platform/middleware"
	dErrors "quorum/pkg/domain-errors"
	"quorum/pkg/platform/httputil"
)

// Service defines the interface the HTTP layer depends on.
type Service interface {
	Register(ctx context.Context, memberID uuid.UUID, actor service.Actor) (*models.Registration, error)
	UnregisterByID(ctx context.Context, registrationID uuid.UUID, actor service.Actor) error
	QueryActivities(ctx context.Context, page, pageSize int, filter models.ActivityFilter) ([]*models.RegistrationActivity, int, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/registrations", h.HandleRegister)
	r.Post("/registrations/{id}/unregister", h.HandleUnregister)
	r.Get("/registrations/activities", h.HandleActivities)
}

// RegisterRequest identifies the member to register for the current event.
type RegisterRequest struct {
	MemberID uuid.UUID `json:"member_id"`
}

// ActivityListResponse is one page of the activity trail, newest-first.
type ActivityListResponse struct {
	Activities []*models.RegistrationActivity `json:"activities"`
	Total      int                            `json:"total"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeJSON[RegisterRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	actor := actorFrom(ctx)
	reg, err := h.service.Register(ctx, req.MemberID, actor)
	if err != nil {
		h.logger.ErrorContext(ctx, "registration failed",
			"error", err,
			"member_id", req.MemberID,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, reg)
}

func (h *Handler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	registrationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid registration id"))
		return
	}

	actor := actorFrom(ctx)
	if err := h.service.UnregisterByID(ctx, registrationID, actor); err != nil {
		h.logger.ErrorContext(ctx, "unregistration failed",
			"error", err,
			"registration_id", registrationID,
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	filter := models.ActivityFilter{
		MemberName: q.Get("member_name"),
	}
	switch action := q.Get("action"); action {
	case "":
	case string(models.ActionRegister), string(models.ActionUnregister):
		filter.Action = models.RegistrationAction(action)
	default:
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "unknown action filter"))
		return
	}

	var err error
	if filter.From, err = parseTimeParam(q.Get("from"), false); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid from date"))
		return
	}
	if filter.To, err = parseTimeParam(q.Get("to"), true); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid to date"))
		return
	}

	activities, total, err := h.service.QueryActivities(ctx, page, pageSize, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "activity query failed",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	if activities == nil {
		activities = []*models.RegistrationActivity{}
	}

	httputil.WriteJSON(w, http.StatusOK, ActivityListResponse{Activities: activities, Total: total})
}

// parseTimeParam accepts RFC 3339 timestamps or bare dates. A bare date used
// as a range end covers the whole day.
func parseTimeParam(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return &ts, nil
	}
	ts, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		ts = ts.Add(24*time.Hour - time.Nanosecond)
	}
	return &ts, nil
}

func actorFrom(ctx context.Context) service.Actor {
	a := middleware.GetActor(ctx)
	return service.Actor{ID: a.ID, Name: a.Name}
}

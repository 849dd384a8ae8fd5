// Package handler exposes the event dashboard and registry sync endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"quorum/internal/event/models"
	"quorum/internal/platform/middleware"
	"quorum/pkg/platform/httputil"
)

// Service defines the interface the HTTP layer depends on.
type Service interface {
	CurrentEvent(ctx context.Context) (*models.Event, error)
	Sync(ctx context.Context, actorID string) (*models.SyncStatus, error)
	SyncHistory(ctx context.Context) ([]models.SyncStatus, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/event", h.HandleCurrent)
	r.Get("/event/sync/history", h.HandleSyncHistory)
}

// RegisterAdmin mounts the sync trigger; the router gates it to admins.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/event/sync", h.HandleSync)
}

// SyncHistoryResponse is the sync history envelope, newest-first.
type SyncHistoryResponse struct {
	Syncs []models.SyncStatus `json:"syncs"`
	Total int                 `json:"total"`
}

func (h *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	event, err := h.service.CurrentEvent(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "event lookup failed",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, event)
}

func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := middleware.GetActor(ctx)

	status, err := h.service.Sync(ctx, actor.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "registry sync failed",
			"error", err,
			"actor", actor.ID,
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, status)
}

func (h *Handler) HandleSyncHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	history, err := h.service.SyncHistory(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "sync history lookup failed",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	if history == nil {
		history = []models.SyncStatus{}
	}

	httputil.WriteJSON(w, http.StatusOK, SyncHistoryResponse{Syncs: history, Total: len(history)})
}

package eligibility

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"quorum/internal/directory/readmodels"
	"quorum/internal/platform/middleware"
	dErrors "quorum/pkg/domain-errors"
	"quorum/pkg/platform/httputil"
)

// DetailService defines the interface the HTTP layer depends on.
type DetailService interface {
	Details(ctx context.Context, memberID uuid.UUID) (*readmodels.MemberDetails, error)
	TallyVotes(ctx context.Context, memberID uuid.UUID, selected []uuid.UUID) (int, error)
	RecordAttendance(ctx context.Context, memberID uuid.UUID, selected []uuid.UUID, actorName string) (*readmodels.MemberDetails, error)
}

type Handler struct {
	service DetailService
	logger  *slog.Logger
}

func NewHandler(service DetailService, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/members/{id}", h.HandleDetails)
	r.Post("/members/{id}/votes/tally", h.HandleTally)
	r.Post("/members/{id}/attendance", h.HandleAttendance)
}

// SelectionRequest carries the membership ids the operator has marked attended.
type SelectionRequest struct {
	MembershipIDs []uuid.UUID `json:"membership_ids"`
}

// TallyResponse is the recomputed voting weight for a selection.
type TallyResponse struct {
	MemberID   uuid.UUID `json:"member_id"`
	TotalVotes int       `json:"total_votes"`
}

func (h *Handler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	memberID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid member id"))
		return
	}

	details, err := h.service.Details(ctx, memberID)
	if err != nil {
		h.logger.ErrorContext(ctx, "member details failed",
			"error", err,
			"member_id", memberID,
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, details)
}

func (h *Handler) HandleTally(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	memberID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid member id"))
		return
	}

	req, ok := httputil.DecodeJSON[SelectionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	total, err := h.service.TallyVotes(ctx, memberID, req.MembershipIDs)
	if err != nil {
		h.logger.ErrorContext(ctx, "vote tally failed",
			"error", err,
			"member_id", memberID,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &TallyResponse{MemberID: memberID, TotalVotes: total})
}

func (h *Handler) HandleAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	memberID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid member id"))
		return
	}

	req, ok := httputil.DecodeJSON[SelectionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	actor := middleware.GetActor(ctx)
	details, err := h.service.RecordAttendance(ctx, memberID, req.MembershipIDs, actor.Name)
	if err != nil {
		h.logger.ErrorContext(ctx, "record attendance failed",
			"error", err,
			"member_id", memberID,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, details)
}

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"quorum/internal/directory/models"
	"quorum/internal/platform/middleware"
	"quorum/pkg/platform/httputil"
)

// Service defines the interface for directory operations.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	Search(ctx context.Context, criteria models.SearchCriteria) ([]*models.Member, error)
	List(ctx context.Context, kind models.ListKind, page, pageSize int, term string) ([]*models.Member, int, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/members/search", h.HandleSearch)
	r.Get("/members/eligible", h.handleList(models.ListEligible))
	r.Get("/members/attendees", h.handleList(models.ListAttendees))
	r.Get("/members/registered", h.handleList(models.ListRegistered))
}

// HandleSearch answers the member search screen. All criteria arrive as query
// parameters; absent parameters simply do not constrain the result.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	criteria := models.SearchCriteria{
		NationalID:       q.Get("national_id"),
		CRNumber:         q.Get("cr_number"),
		MembershipNumber: q.Get("membership_number"),
		PassportNumber:   q.Get("passport_number"),
		GCCNumber:        q.Get("gcc_number"),
		FreeText:         q.Get("q"),
	}

	members, err := h.service.Search(ctx, criteria)
	if err != nil {
		h.logger.ErrorContext(ctx, "member search failed",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toMemberListResponse(members, len(members)))
}

func (h *Handler) handleList(kind models.ListKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		page, _ := strconv.Atoi(q.Get("page"))
		pageSize, _ := strconv.Atoi(q.Get("page_size"))

		members, total, err := h.service.List(ctx, kind, page, pageSize, q.Get("q"))
		if err != nil {
			h.logger.ErrorContext(ctx, "member list failed",
				"error", err,
				"list", string(kind),
				"request_id", middleware.GetRequestID(ctx),
			)
			httputil.WriteError(w, err)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, toMemberListResponse(members, total))
	}
}

// Package httptransport assembles the HTTP surface: middleware stack, probe
// and metrics endpoints, and the authenticated console API with its role
// gates. Business logic lives in the domain services.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	directoryhandler "quorum/internal/directory/handler"
	"quorum/internal/eligibility"
	eventhandler "quorum/internal/event/handler"
	ledgerhandler "quorum/internal/ledger/handler"
	"quorum/internal/platform/health"
	"quorum/internal/platform/middleware"
	rosterhandler "quorum/internal/roster/handler"
	rostermodels "quorum/internal/roster/models"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Directory   *directoryhandler.Handler
	Eligibility *eligibility.Handler
	Ledger      *ledgerhandler.Handler
	Event       *eventhandler.Handler
	Roster      *rosterhandler.Handler
	Health      *health.Handler

	TokenValidator middleware.TokenValidator
	OnActorSeen    middleware.ActorSeenFunc
}

// NewRouter wires all endpoints with middleware.
func NewRouter(deps Deps, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	// Unauthenticated probes and metrics.
	deps.Health.Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Console API. Every staff role can run the desk flows; registry sync
	// and user administration are gated further down.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(deps.TokenValidator, logger, deps.OnActorSeen))

		deps.Directory.Register(r)
		deps.Eligibility.Register(r)
		deps.Ledger.Register(r)
		deps.Event.Register(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(logger,
				string(rostermodels.RoleAdmin),
				string(rostermodels.RoleSuperAdmin),
			))
			deps.Event.RegisterAdmin(r)
			deps.Roster.Register(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(logger, string(rostermodels.RoleSuperAdmin)))
			deps.Roster.RegisterSuperAdmin(r)
		})
	})

	return r
}

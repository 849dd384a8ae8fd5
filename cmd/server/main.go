// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"

	directoryhandler "quorum/internal/directory/handler"
	directorymetrics "quorum/internal/directory/metrics"
	directoryservice "quorum/internal/directory/service"
	directorystore "quorum/internal/directory/store"
	"quorum/internal/eligibility"
	eventhandler "quorum/internal/event/handler"
	eventmodels "quorum/internal/event/models"
	"quorum/internal/event/registry"
	eventservice "quorum/internal/event/service"
	"quorum/internal/jwttoken"
	ledgerhandler "quorum/internal/ledger/handler"
	ledgermetrics "quorum/internal/ledger/metrics"
	ledgerservice "quorum/internal/ledger/service"
	ledgerstore "quorum/internal/ledger/store"
	ledgertracer "quorum/internal/ledger/tracer"
	"quorum/internal/platform/config"
	"quorum/internal/platform/health"
	"quorum/internal/platform/httpserver"
	"quorum/internal/platform/logger"
	"quorum/internal/roster/device"
	rosterhandler "quorum/internal/roster/handler"
	"quorum/internal/roster/idp"
	"quorum/internal/roster/presence"
	rosterservice "quorum/internal/roster/service"
	rosterstore "quorum/internal/roster/store"
	"quorum/internal/seeder"
	httptransport "quorum/internal/transport/http"
)

const issuerBaseURL = "http://localhost:8080"

// eventID is fixed for the administered event; a multi-event console would
// source this from configuration or storage.
var eventID = uuid.MustParse("0f7a2c44-9d13-4a68-8b1e-1f6f6f1a9e01")

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing quorum",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"event", cfg.EventName,
	)

	// Stores.
	memberStore := directorystore.NewInMemoryMemberStore()
	ledgerStore := ledgerstore.NewInMemoryLedgerStore()
	userStore := rosterstore.NewInMemoryUserStore()

	// Presence: the auth middleware emits, the roster store listens.
	hub := presence.NewHub(256, presence.WithHubLogger(log))
	defer hub.Close()
	hub.Subscribe(func(u presence.Update) {
		userStore.MarkSeen(u.ActorID, u.Device, u.SeenAt)
	})

	// Demo data; the same fixture backs the static registry source so a
	// manual sync is a no-op in development.
	source := registry.NewGuardedSource(registry.NewStaticSource(seeder.DemoMembers()), nil)
	if cfg.SeedDemo {
		seed := seeder.New(memberStore, userStore, ledgerStore, eventID, log)
		if err := seed.SeedAll(context.Background()); err != nil {
			log.Error("seeding failed", "error", err)
			os.Exit(1)
		}
	}

	// Services.
	directorySvc := directoryservice.New(memberStore,
		directoryservice.WithLogger(log),
		directoryservice.WithMetrics(directorymetrics.New()),
	)
	calc := eligibility.NewCalculator(eventID, cfg.EventName)
	eligibilitySvc := eligibility.NewService(memberStore, calc, log)
	ledgerSvc := ledgerservice.NewLedgerService(ledgerStore, memberStore, eventID,
		ledgerservice.WithLogger(log),
		ledgerservice.WithMetrics(ledgermetrics.New()),
		ledgerservice.WithTracer(ledgertracer.NewOTel()),
	)
	event := eventmodels.Event{
		ID:     eventID,
		Name:   cfg.EventName,
		Type:   eventmodels.TypeAGM,
		Status: eventmodels.StatusActive,
		Date:   time.Now(),
	}
	eventSvc := eventservice.NewEventService(event, memberStore, source, log)
	rosterSvc := rosterservice.NewRosterService(userStore, idp.NewStaticDirectory(seeder.DemoIdPAccounts()), log)

	// Auth.
	tokens := jwttoken.NewService(cfg.JWTSigningKey, issuerBaseURL, "quorum-console", cfg.TokenTTL)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("directory", func() error {
		_, _, _, _, err := memberStore.Counts(context.Background())
		return err
	})

	router := httptransport.NewRouter(httptransport.Deps{
		Directory:      directoryhandler.New(directorySvc, log),
		Eligibility:    eligibility.NewHandler(eligibilitySvc, log),
		Ledger:         ledgerhandler.NewHandler(ledgerSvc, log),
		Event:          eventhandler.NewHandler(eventSvc, log),
		Roster:         rosterhandler.NewHandler(rosterSvc, log),
		Health:         healthHandler,
		TokenValidator: tokens,
		OnActorSeen: func(_ context.Context, actorID, _ string, userAgent string) {
			hub.Emit(presence.Update{ActorID: actorID, Device: device.Summarize(userAgent)})
		},
	}, log)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

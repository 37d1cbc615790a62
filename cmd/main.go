package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqpadapter "edu-dashboard/internal/adapter/amqp"
	httpadapter "edu-dashboard/internal/adapter/http"
	"edu-dashboard/internal/adapter/memory"
	"edu-dashboard/internal/adapter/postgres"
	"edu-dashboard/internal/adapter/usecase"
	"edu-dashboard/internal/auth"
	"edu-dashboard/internal/config"
	"edu-dashboard/internal/core/domain"
	"edu-dashboard/internal/core/port"
	"edu-dashboard/internal/core/wizard"
	"edu-dashboard/internal/db"
	"edu-dashboard/internal/i18n"
)

// main is the entry point of the course dashboard. It loads configuration,
// optionally runs database migrations and seeds demo data, wires the
// repositories, use cases and event publisher, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables and an optional .env.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	defaultType := domain.ProgramType(cfg.Courses.DefaultType)
	if !defaultType.Valid() {
		logger.Error("invalid default program type", slog.String("type", cfg.Courses.DefaultType))
		return
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, cfg.Courses.DefaultCampaign); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data seeded")
	}

	var events port.EventPublisher = amqpadapter.NewLogPublisher(logger)
	if cfg.AMQP.Enabled() {
		pub, err := amqpadapter.Dial(cfg.AMQP.URL, cfg.AMQP.Queue)
		if err != nil {
			logger.Error("broker connection error", slog.Any("error", err))
			return
		}
		defer pub.Close()
		events = pub
		logger.Info("publishing course events", slog.String("queue", cfg.AMQP.Queue))
	}

	campaigns := postgres.NewCampaignRepository(pool)
	courses := postgres.NewCourseRepository(pool)

	tr := i18n.English(cfg.Courses.StringPrefix)
	machine := wizard.NewMachine(wizard.Options{
		DefaultType:        defaultType,
		SkipProgramChooser: cfg.Courses.SkipProgramChooser,
	}, tr)

	sessions := memory.NewWizardStore(cfg.Courses.SessionTTL)
	if cfg.Courses.SessionTTL > 0 {
		go sessions.Run(ctx, cfg.Courses.SessionTTL/2)
	}

	exploreSvc := usecase.NewExploreUseCase(campaigns, cfg.Courses.DefaultCampaign)
	courseSvc := usecase.NewCourseUseCase(courses, campaigns, events, defaultType, logger)
	wizardSvc := usecase.NewWizardUseCase(machine, courseSvc, sessions, tr, logger)
	tokens := auth.NewTokens(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	handler := httpadapter.NewHandler(exploreSvc, courseSvc, wizardSvc, tokens, cfg.Auth.CookieName, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           httpadapter.CORS(cfg.HTTP.AllowedOrigins)(handler.Router()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err = <-serverErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

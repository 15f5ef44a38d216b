package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/color"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/entry"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/feedback"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/material"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/room"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/user"
	"github.com/heartmarshall/founty-inventory/internal/config"
	"github.com/heartmarshall/founty-inventory/internal/service/inventory"
	"github.com/heartmarshall/founty-inventory/internal/service/session"
	"github.com/heartmarshall/founty-inventory/internal/service/stats"
	"github.com/heartmarshall/founty-inventory/internal/transport/middleware"
	"github.com/heartmarshall/founty-inventory/internal/transport/rest"
	"github.com/heartmarshall/founty-inventory/migrations"
)

// Run is the application entry point. It loads configuration, applies
// migrations, wires repositories and services, and serves HTTP until the
// process receives SIGINT or SIGTERM.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	rooms := room.New(pool)
	materials := material.New(pool)
	colors := color.New(pool)
	entries := entry.New(pool)
	users := user.New(pool)
	feedbackRepo := feedback.New(pool)

	invSvc := inventory.NewService(logger, rooms, materials, colors, entries, users, feedbackRepo, txManager)
	statsSvc := stats.NewService(logger, entries, rooms, materials, cfg.Bot.LowStockThreshold)

	gate, err := session.NewSecretGate(cfg.Bot.AdminSecretHash)
	if err != nil {
		return fmt.Errorf("admin secret: %w", err)
	}
	sessionSvc := session.NewService(logger, invSvc, statsSvc, gate, cfg.Bot.Conditions)

	if err := invSvc.Seed(ctx, SeedData(cfg.Seed)); err != nil {
		return fmt.Errorf("seed reference data: %w", err)
	}

	handler := buildRouter(cfg, logger, pool, sessionSvc, invSvc)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// migrate applies pending migrations using the embedded SQL files.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("up: %w", err)
	}
	for _, r := range results {
		slog.Info("migration applied",
			slog.String("source", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}

	return nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

func buildRouter(
	cfg *config.Config,
	logger *slog.Logger,
	db pinger,
	sessionSvc *session.Service,
	invSvc *inventory.Service,
) http.Handler {
	events := rest.NewEventHandler(sessionSvc, logger)
	export := rest.NewExportHandler(invSvc, logger)
	health := rest.NewHealthHandler(db, sessionSvc, BuildVersion())

	exportAuth := middleware.BearerToken(cfg.Export.Token)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/events", events.Handle)
	mux.Handle("GET /v1/export.csv", exportAuth(http.HandlerFunc(export.CSV)))
	mux.Handle("GET /v1/export.xlsx", exportAuth(http.HandlerFunc(export.XLSX)))
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
	)
	return chain(mux)
}

// SeedData maps the configured seed lists to inventory seed input. Shared
// with cmd/seed.
func SeedData(cfg config.SeedConfig) inventory.SeedData {
	data := inventory.SeedData{
		Rooms:     make([]inventory.AddRoomInput, 0, len(cfg.Rooms)),
		Materials: make([]inventory.AddMaterialInput, 0, len(cfg.Materials)),
		Colors:    make([]inventory.AddColorInput, 0, len(cfg.Colors)),
	}
	for _, r := range cfg.Rooms {
		input := inventory.AddRoomInput{Name: r.Name}
		if r.RoomType != "" {
			rt := r.RoomType
			input.RoomType = &rt
		}
		if r.Location != "" {
			loc := r.Location
			input.Location = &loc
		}
		data.Rooms = append(data.Rooms, input)
	}
	for _, m := range cfg.Materials {
		input := inventory.AddMaterialInput{
			Name:          m.Name,
			Emoji:         m.Emoji,
			RequiresColor: m.RequiresColor,
		}
		if m.Category != "" {
			cat := m.Category
			input.Category = &cat
		}
		data.Materials = append(data.Materials, input)
	}
	for _, c := range cfg.Colors {
		data.Colors = append(data.Colors, inventory.AddColorInput{Name: c.Name, Code: c.Code})
	}
	return data
}

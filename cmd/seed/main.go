// Command seed applies the configured reference data (rooms, materials,
// colors) to the database and exits. The server performs the same seeding at
// startup; this command exists for provisioning a database ahead of a
// deployment. Existing rows are never overwritten.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/color"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/entry"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/feedback"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/material"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/room"
	"github.com/heartmarshall/founty-inventory/internal/adapter/postgres/user"
	"github.com/heartmarshall/founty-inventory/internal/app"
	"github.com/heartmarshall/founty-inventory/internal/config"
	"github.com/heartmarshall/founty-inventory/internal/service/inventory"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := inventory.NewService(
		logger,
		room.New(pool),
		material.New(pool),
		color.New(pool),
		entry.New(pool),
		user.New(pool),
		feedback.New(pool),
		postgres.NewTxManager(pool),
	)

	if err := svc.Seed(ctx, app.SeedData(cfg.Seed)); err != nil {
		logger.Error("seed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

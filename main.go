package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"climatedash/climate"
	"climatedash/config"
	"climatedash/dataset"
	"climatedash/db"
	httpserver "climatedash/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	global, hemispheric, err := loadTables(ctx, cfg)
	if err != nil {
		log.Fatalf("dataset error: %v", err)
	}
	log.Printf("loaded %d global and %d hemispheric monthly rows", len(global.Rows), len(hemispheric.Rows))

	catalog := climate.NewCatalog(global, hemispheric)

	srv := httpserver.New(cfg, catalog)
	log.Printf("REST API listening on %s", cfg.ListenAddr())

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// loadTables reads the two monthly tables from Postgres when DATABASE_URL
// is set, otherwise from the configured CSV files. One-shot: the data is
// immutable for the process lifetime.
func loadTables(ctx context.Context, cfg config.Config) (climate.Table, climate.Table, error) {
	if cfg.DatabaseURL != "" {
		store, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return climate.Table{}, climate.Table{}, err
		}
		defer store.Close()

		global, err := store.LoadGlobal(ctx)
		if err != nil {
			return climate.Table{}, climate.Table{}, err
		}
		hemispheric, err := store.LoadHemispheric(ctx)
		if err != nil {
			return climate.Table{}, climate.Table{}, err
		}
		return global, hemispheric, nil
	}

	global, err := dataset.LoadCSV(cfg.GlobalCSVPath)
	if err != nil {
		return climate.Table{}, climate.Table{}, err
	}
	hemispheric, err := dataset.LoadCSV(cfg.HemiCSVPath)
	if err != nil {
		return climate.Table{}, climate.Table{}, err
	}
	return global, hemispheric, nil
}

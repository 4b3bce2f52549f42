// Command seed loads the sample activities into an empty database.
package main

import (
	"context"
	"os"

	"activitybooking/config"
	"activitybooking/internal/repository"
	"activitybooking/internal/services"
)

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	store, db, err := repository.Open(ctx, cfg)
	if err != nil {
		logger.Error("open storage", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	created, err := services.Seed(ctx, store, services.NewActivityService(store, cfg.RequestTimeout))
	if err != nil {
		logger.Error("seed failed", "err", err)
		db.Close()
		os.Exit(1)
	}
	if len(created) == 0 {
		logger.Info("database already has activities, skipping")
		return
	}
	for _, a := range created {
		logger.Info("activity created", "id", a.ID, "name", a.Name, "capacity", a.Capacity, "schedules", a.Schedules)
	}
}

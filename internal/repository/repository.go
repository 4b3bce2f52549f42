// Package repository opens the configured storage driver.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"activitybooking/config"
	"activitybooking/internal/domain"
	"activitybooking/internal/repository/postgres"
	"activitybooking/internal/repository/sqlite"
)

// Open connects to the database selected by cfg.DBDriver, creates the schema
// and returns the store with the underlying handle for closing.
func Open(ctx context.Context, cfg *config.Config) (domain.Store, *sql.DB, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewStore(db), db, nil
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewStore(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.DBDriver)
	}
}

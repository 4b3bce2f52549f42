// Package sqlite is a single-file storage driver for local development and
// tests, built on the pure Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"activitybooking/internal/domain"
)

// Timestamps are stored as fixed width UTC text so they sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open opens the database at path (":memory:" for a private in-memory one) and
// creates the schema. SQLite allows a single writer, so the pool is capped at one
// connection; this also keeps an in-memory database shared by all callers.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

type store struct {
	db *sql.DB
}

// NewStore returns a domain.Store backed by SQLite.
func NewStore(db *sql.DB) domain.Store {
	return &store{db: db}
}

func (s *store) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &unitOfWork{tx: tx}, nil
}

func (s *store) Activities() domain.ActivityRepository {
	return &activityRepository{db: s.db}
}

func (s *store) Visitors() domain.VisitorRepository {
	return &visitorRepository{db: s.db}
}

func (s *store) Registrations() domain.RegistrationRepository {
	return &registrationRepository{db: s.db}
}

type unitOfWork struct {
	tx   *sql.Tx
	done bool
}

func (u *unitOfWork) Activities() domain.ActivityRepository {
	return &activityRepository{db: u.tx}
}

func (u *unitOfWork) Visitors() domain.VisitorRepository {
	return &visitorRepository{db: u.tx}
}

func (u *unitOfWork) Registrations() domain.RegistrationRepository {
	return &registrationRepository{db: u.tx}
}

func (u *unitOfWork) Commit() error {
	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	u.done = true
	return nil
}

func (u *unitOfWork) Rollback() error {
	if u.done {
		return nil
	}
	u.done = true
	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

// Migrate creates the schema if it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		capacity INTEGER NOT NULL CHECK (capacity >= 0),
		schedules TEXT NOT NULL,
		requirements TEXT NOT NULL DEFAULT '{}',
		requires_clothing INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS visitors (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		dni TEXT NOT NULL,
		age INTEGER NOT NULL,
		clothing_size TEXT,
		terms_accepted INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_visitors_dni ON visitors (dni);

	CREATE TABLE IF NOT EXISTS registrations (
		id TEXT PRIMARY KEY,
		activity_id TEXT NOT NULL REFERENCES activities (id),
		visitor_id TEXT NOT NULL REFERENCES visitors (id),
		schedule TEXT NOT NULL,
		registered_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_registrations_activity_schedule ON registrations (activity_id, schedule);
	CREATE INDEX IF NOT EXISTS idx_registrations_schedule ON registrations (schedule);
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

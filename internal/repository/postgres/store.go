package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"activitybooking/internal/domain"
)

// dbtx is the subset of *sql.DB and *sql.Tx the repositories need.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type store struct {
	DB *sql.DB
}

// NewStore returns a domain.Store backed by PostgreSQL.
func NewStore(db *sql.DB) domain.Store {
	return &store{DB: db}
}

func (s *store) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &unitOfWork{tx: tx}, nil
}

func (s *store) Activities() domain.ActivityRepository {
	return NewActivityRepository(s.DB)
}

func (s *store) Visitors() domain.VisitorRepository {
	return NewVisitorRepository(s.DB)
}

func (s *store) Registrations() domain.RegistrationRepository {
	return NewRegistrationRepository(s.DB)
}

type unitOfWork struct {
	tx   *sql.Tx
	done bool
}

func (u *unitOfWork) Activities() domain.ActivityRepository {
	return NewActivityRepository(u.tx)
}

func (u *unitOfWork) Visitors() domain.VisitorRepository {
	return NewVisitorRepository(u.tx)
}

func (u *unitOfWork) Registrations() domain.RegistrationRepository {
	return NewRegistrationRepository(u.tx)
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
	if err := u.tx.Rollback(); err != nil && err != sql.ErrTxDone {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS activities (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	capacity INTEGER NOT NULL CHECK (capacity >= 0),
	schedules JSONB NOT NULL,
	requirements JSONB NOT NULL DEFAULT '{}'::jsonb,
	requires_clothing BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS visitors (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	dni TEXT NOT NULL,
	age INTEGER NOT NULL,
	clothing_size TEXT,
	terms_accepted BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_visitors_dni ON visitors (dni);

CREATE TABLE IF NOT EXISTS registrations (
	id UUID PRIMARY KEY,
	activity_id UUID NOT NULL REFERENCES activities (id),
	visitor_id UUID NOT NULL REFERENCES visitors (id),
	schedule TEXT NOT NULL,
	registered_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_registrations_activity_schedule ON registrations (activity_id, schedule);
CREATE INDEX IF NOT EXISTS idx_registrations_schedule ON registrations (schedule);
`

// Migrate creates the schema if it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"activitybooking/internal/domain"
)

type activityRepository struct {
	DB dbtx
}

func NewActivityRepository(db dbtx) domain.ActivityRepository {
	return &activityRepository{
		DB: db,
	}
}

func (r *activityRepository) Create(ctx context.Context, a *domain.Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	schedules, err := json.Marshal(a.Schedules)
	if err != nil {
		return fmt.Errorf("encode schedules: %w", err)
	}
	requirements, err := json.Marshal(a.Requirements)
	if err != nil {
		return fmt.Errorf("encode requirements: %w", err)
	}
	query := `
		INSERT INTO activities (id, name, capacity, schedules, requirements, requires_clothing, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.DB.ExecContext(ctx, query, a.ID, a.Name, a.Capacity, schedules, requirements, a.RequiresClothing, a.CreatedAt)
	return err
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.ErrNotFound
	}
	query := `
		SELECT id, name, capacity, schedules, requirements, requires_clothing, created_at
		FROM activities
		WHERE id = $1
	`
	a, err := scanActivity(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *activityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	query := `
		SELECT id, name, capacity, schedules, requirements, requires_clothing, created_at
		FROM activities
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	a := &domain.Activity{}
	var schedules, requirements []byte
	if err := row.Scan(&a.ID, &a.Name, &a.Capacity, &schedules, &requirements, &a.RequiresClothing, &a.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(schedules, &a.Schedules); err != nil {
		return nil, fmt.Errorf("decode schedules of activity %s: %w", a.ID, err)
	}
	a.Requirements = map[string]any{}
	if len(requirements) > 0 {
		if err := json.Unmarshal(requirements, &a.Requirements); err != nil {
			return nil, fmt.Errorf("decode requirements of activity %s: %w", a.ID, err)
		}
	}
	return a, nil
}

package sqlite

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
	db dbtx
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
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO activities (id, name, capacity, schedules, requirements, requires_clothing, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.Capacity, string(schedules), string(requirements), a.RequiresClothing, a.CreatedAt.UTC().Format(timeLayout),
	)
	return err
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, capacity, schedules, requirements, requires_clothing, created_at
		 FROM activities WHERE id = ?`, id)
	a, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return a, err
}

func (r *activityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, capacity, schedules, requirements, requires_clothing, created_at
		 FROM activities ORDER BY created_at ASC, rowid ASC`)
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

func scanActivity(row interface{ Scan(...any) error }) (*domain.Activity, error) {
	a := &domain.Activity{}
	var schedules, requirements, createdAt string
	if err := row.Scan(&a.ID, &a.Name, &a.Capacity, &schedules, &requirements, &a.RequiresClothing, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(schedules), &a.Schedules); err != nil {
		return nil, fmt.Errorf("decode schedules of activity %s: %w", a.ID, err)
	}
	a.Requirements = map[string]any{}
	if requirements != "" {
		if err := json.Unmarshal([]byte(requirements), &a.Requirements); err != nil {
			return nil, fmt.Errorf("decode requirements of activity %s: %w", a.ID, err)
		}
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	a.CreatedAt = t
	return a, nil
}

type visitorRepository struct {
	db dbtx
}

func (r *visitorRepository) Create(ctx context.Context, v *domain.Visitor) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO visitors (id, name, dni, age, clothing_size, terms_accepted, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.Name, v.DNI, v.Age, v.ClothingSize, v.TermsAccepted, v.CreatedAt.UTC().Format(timeLayout),
	)
	return err
}

func (r *visitorRepository) List(ctx context.Context) ([]*domain.Visitor, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, dni, age, clothing_size, terms_accepted, created_at
		 FROM visitors ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	visitors := make([]*domain.Visitor, 0)
	for rows.Next() {
		v := &domain.Visitor{}
		var size sql.NullString
		var createdAt string
		if err := rows.Scan(&v.ID, &v.Name, &v.DNI, &v.Age, &size, &v.TermsAccepted, &createdAt); err != nil {
			return nil, err
		}
		if size.Valid {
			v.ClothingSize = &size.String
		}
		if v.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

type registrationRepository struct {
	db dbtx
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO registrations (id, activity_id, visitor_id, schedule, registered_at)
		 VALUES (?, ?, ?, ?, ?)`,
		reg.ID, reg.ActivityID, reg.VisitorID, reg.Schedule, reg.RegisteredAt.UTC().Format(timeLayout),
	)
	return err
}

func (r *registrationRepository) CountByActivity(ctx context.Context, activityID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE activity_id = ?`, activityID).Scan(&n)
	return n, err
}

func (r *registrationRepository) CountByActivityAndSchedule(ctx context.Context, activityID, schedule string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE activity_id = ? AND schedule = ?`, activityID, schedule).Scan(&n)
	return n, err
}

func (r *registrationRepository) CountBySchedule(ctx context.Context, activityID string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT schedule, COUNT(*) FROM registrations WHERE activity_id = ? GROUP BY schedule`, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var schedule string
		var n int
		if err := rows.Scan(&schedule, &n); err != nil {
			return nil, err
		}
		counts[schedule] = n
	}
	return counts, rows.Err()
}

func (r *registrationRepository) ExistsForDNIInSchedule(ctx context.Context, dni, schedule string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM registrations r
			JOIN visitors v ON v.id = r.visitor_id
			WHERE v.dni = ? AND r.schedule = ?
		)`, dni, schedule).Scan(&exists)
	return exists, err
}

package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"activitybooking/internal/domain"
)

// foreignKeyViolation is the PostgreSQL SQLSTATE for a missing referenced row.
const foreignKeyViolation = "23503"

type registrationRepository struct {
	DB dbtx
}

func NewRegistrationRepository(db dbtx) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	query := `
		INSERT INTO registrations (id, activity_id, visitor_id, schedule, registered_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.DB.ExecContext(ctx, query, reg.ID, reg.ActivityID, reg.VisitorID, reg.Schedule, reg.RegisteredAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *registrationRepository) CountByActivity(ctx context.Context, activityID string) (int, error) {
	query := `SELECT COUNT(*) FROM registrations WHERE activity_id = $1`
	var n int
	if err := r.DB.QueryRowContext(ctx, query, activityID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *registrationRepository) CountByActivityAndSchedule(ctx context.Context, activityID, schedule string) (int, error) {
	query := `SELECT COUNT(*) FROM registrations WHERE activity_id = $1 AND schedule = $2`
	var n int
	if err := r.DB.QueryRowContext(ctx, query, activityID, schedule).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *registrationRepository) CountBySchedule(ctx context.Context, activityID string) (map[string]int, error) {
	query := `
		SELECT schedule, COUNT(*)
		FROM registrations
		WHERE activity_id = $1
		GROUP BY schedule
	`
	rows, err := r.DB.QueryContext(ctx, query, activityID)
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
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM registrations r
			JOIN visitors v ON v.id = r.visitor_id
			WHERE v.dni = $1 AND r.schedule = $2
		)
	`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, dni, schedule).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

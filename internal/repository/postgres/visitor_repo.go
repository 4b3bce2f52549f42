package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"activitybooking/internal/domain"
)

type visitorRepository struct {
	DB dbtx
}

func NewVisitorRepository(db dbtx) domain.VisitorRepository {
	return &visitorRepository{
		DB: db,
	}
}

func (r *visitorRepository) Create(ctx context.Context, v *domain.Visitor) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	query := `
		INSERT INTO visitors (id, name, dni, age, clothing_size, terms_accepted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query, v.ID, v.Name, v.DNI, v.Age, v.ClothingSize, v.TermsAccepted, v.CreatedAt)
	return err
}

func (r *visitorRepository) List(ctx context.Context) ([]*domain.Visitor, error) {
	query := `
		SELECT id, name, dni, age, clothing_size, terms_accepted, created_at
		FROM visitors
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	visitors := make([]*domain.Visitor, 0)
	for rows.Next() {
		v := &domain.Visitor{}
		var size sql.NullString
		if err := rows.Scan(&v.ID, &v.Name, &v.DNI, &v.Age, &size, &v.TermsAccepted, &v.CreatedAt); err != nil {
			return nil, err
		}
		if size.Valid {
			v.ClothingSize = &size.String
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

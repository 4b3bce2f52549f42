package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"activitybooking/internal/domain"
)

func TestStore_UnitOfWorkCommit(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO visitors`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO registrations`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	uow, err := NewStore(db).Begin(ctx)
	require.NoError(t, err)
	defer uow.Rollback()

	now := time.Now()
	v := domain.NewVisitor("Juan", "12345678", 25, nil, true, now)
	require.NoError(t, uow.Visitors().Create(ctx, v))
	require.NoError(t, uow.Registrations().Create(ctx, domain.NewRegistration(activityID, v.ID, "09:00", now)))
	require.NoError(t, uow.Commit())
	require.NoError(t, uow.Rollback(), "rollback after commit is a no-op")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UnitOfWorkRollback(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO visitors`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	uow, err := NewStore(db).Begin(ctx)
	require.NoError(t, err)

	size := "M"
	require.NoError(t, uow.Visitors().Create(ctx, domain.NewVisitor("Ana", "87654321", 30, &size, true, time.Now())))
	require.NoError(t, uow.Rollback())
	require.NoError(t, uow.Rollback(), "second rollback is a no-op")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_BeginError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)
	_, err = NewStore(db).Begin(context.Background())
	require.ErrorIs(t, err, sql.ErrConnDone)
}

func TestVisitorRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, name, dni, age, clothing_size, terms_accepted, created_at\s+FROM visitors`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "dni", "age", "clothing_size", "terms_accepted", "created_at"}).
			AddRow(visitorID, "Juan", "12345678", 25, "M", true, createdAt).
			AddRow("1c2d3e4f-0000-4000-8000-000000000001", "Ana", "87654321", 9, nil, true, createdAt))

	got, err := NewStore(db).Visitors().List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].ClothingSize)
	require.Equal(t, "M", *got[0].ClothingSize)
	require.Nil(t, got[1].ClothingSize)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS activities`).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}

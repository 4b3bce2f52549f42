package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activitybooking/internal/domain"
	"activitybooking/internal/repository/sqlite"
)

func newActivityFixture(t *testing.T) (domain.Store, *activityService) {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := sqlite.NewStore(db)
	svc := NewActivityService(store, 5*time.Second).(*activityService)
	return store, svc
}

// failingActivities is an ActivityRepository whose every call fails.
type failingActivities struct {
	err error
}

func (f *failingActivities) Create(ctx context.Context, a *domain.Activity) error { return f.err }
func (f *failingActivities) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	return nil, f.err
}
func (f *failingActivities) List(ctx context.Context) ([]*domain.Activity, error) { return nil, f.err }

type failingStore struct {
	domain.Store
	activities *failingActivities
}

func (f *failingStore) Activities() domain.ActivityRepository { return f.activities }

// totalsStore reports a fixed whole-activity count, independent of the per-schedule counts.
type totalsStore struct {
	domain.Store
	total int
	err   error
}

func (s *totalsStore) Registrations() domain.RegistrationRepository {
	return &totalsRegistrations{RegistrationRepository: s.Store.Registrations(), total: s.total, err: s.err}
}

type totalsRegistrations struct {
	domain.RegistrationRepository
	total int
	err   error
}

func (r *totalsRegistrations) CountByActivity(ctx context.Context, activityID string) (int, error) {
	return r.total, r.err
}

func TestActivityService_CreateActivity(t *testing.T) {

	tests := []struct {
		name       string
		input      domain.CreateActivityInput
		want       func(t *testing.T, a *domain.Activity)
		wantErrors []string
	}{
		{
			name:  "defaults schedules and capacity",
			input: domain.CreateActivityInput{Name: "  Tirolesa "},
			want: func(t *testing.T, a *domain.Activity) {
				assert.Equal(t, "Tirolesa", a.Name)
				assert.Equal(t, 10, a.Capacity)
				assert.Equal(t, domain.DefaultSlots(), a.Schedules)
				assert.Equal(t, map[string]any{}, a.Requirements)
				assert.Len(t, a.ID, 36)
			},
		},
		{
			name: "explicit values are kept",
			input: domain.CreateActivityInput{
				Name:             "Palestra",
				Capacity:         intPtr(6),
				Schedules:        []string{"09:30", "11:30"},
				Requirements:     map[string]any{"nivel": "principiante"},
				RequiresClothing: true,
			},
			want: func(t *testing.T, a *domain.Activity) {
				assert.Equal(t, 6, a.Capacity)
				assert.Equal(t, []string{"09:30", "11:30"}, a.Schedules)
				assert.True(t, a.RequiresClothing)
			},
		},
		{
			name: "zero capacity is allowed",
			input: domain.CreateActivityInput{
				Name:     "Safari",
				Capacity: intPtr(0),
			},
			want: func(t *testing.T, a *domain.Activity) {
				assert.Equal(t, 0, a.Capacity)
			},
		},
		{
			name: "collects every violation",
			input: domain.CreateActivityInput{
				Capacity:  intPtr(-1),
				Schedules: []string{"08:00", "10:00"},
			},
			wantErrors: []string{
				"activity name is required",
				"capacity must be zero or a positive number",
				`invalid schedule "08:00": must be HH:MM on the 30 minute grid between 09:00 and 17:30`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, svc := newActivityFixture(t)
			got, err := svc.CreateActivity(context.Background(), tt.input)
			if tt.wantErrors != nil {
				require.Nil(t, got)
				require.ErrorIs(t, err, domain.ErrInvalidInput)
				var verr *domain.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.wantErrors, verr.Errors)

				list, err := store.Activities().List(context.Background())
				require.NoError(t, err)
				assert.Empty(t, list)
				return
			}
			require.NoError(t, err)
			tt.want(t, got)

			stored, err := store.Activities().GetByID(context.Background(), got.ID)
			require.NoError(t, err)
			assert.Equal(t, got.Name, stored.Name)
		})
	}
}

func TestActivityService_ListActivitiesWithAvailability(t *testing.T) {
	store, svc := newActivityFixture(t)
	ctx := context.Background()

	tirolesa, err := svc.CreateActivity(ctx, domain.CreateActivityInput{Name: "Tirolesa", Capacity: func() *int { n := 3; return &n }(), Schedules: []string{"09:00", "15:00"}})
	require.NoError(t, err)
	_, err = svc.CreateActivity(ctx, domain.CreateActivityInput{Name: "Safari", Schedules: []string{"10:00"}})
	require.NoError(t, err)

	for i, schedule := range []string{"15:00", "15:00", "15:00", "09:00"} {
		v := domain.NewVisitor("V", string(rune('1'+i)), 20, nil, true, time.Now().UTC())
		require.NoError(t, store.Visitors().Create(ctx, v))
		require.NoError(t, store.Registrations().Create(ctx, domain.NewRegistration(tirolesa.ID, v.ID, schedule, time.Now().UTC())))
	}

	list, err := svc.ListActivities(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	got := list[0]
	assert.Equal(t, "Tirolesa", got.Name)
	assert.Equal(t, 10, got.TurnCapacity)
	assert.Equal(t, 8, got.MinAge)
	assert.Equal(t, 4, got.RegisteredCount)
	assert.Equal(t, 0, got.AvailableCapacity, "legacy availability never goes negative")
	assert.Equal(t, []domain.SlotAvailability{
		{Schedule: "09:00", RegisteredCount: 1, AvailableCapacity: 9},
		{Schedule: "15:00", RegisteredCount: 3, AvailableCapacity: 7},
	}, got.Slots)

	safari := list[1]
	assert.Equal(t, 8, safari.TurnCapacity)
	assert.Equal(t, 0, safari.RegisteredCount)
	assert.Equal(t, 8, safari.AvailableCapacity)
	assert.Equal(t, []domain.SlotAvailability{{Schedule: "10:00", RegisteredCount: 0, AvailableCapacity: 8}}, safari.Slots)
}

func TestActivityService_GetActivity(t *testing.T) {
	_, svc := newActivityFixture(t)
	ctx := context.Background()

	created, err := svc.CreateActivity(ctx, domain.CreateActivityInput{Name: "Jardín Botánico", Schedules: []string{"14:00"}})
	require.NoError(t, err)

	got, err := svc.GetActivity(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 12, got.TurnCapacity)

	_, err = svc.GetActivity(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityService_StorageErrors(t *testing.T) {
	store, svc := newActivityFixture(t)
	boom := errors.New("connection refused")
	svc.store = &failingStore{Store: store, activities: &failingActivities{err: boom}}
	ctx := context.Background()

	_, err := svc.CreateActivity(ctx, domain.CreateActivityInput{Name: "Safari"})
	assert.ErrorIs(t, err, boom)

	_, err = svc.ListActivities(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetActivity(ctx, "x")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityService_ListVisitors(t *testing.T) {
	store, svc := newActivityFixture(t)
	ctx := context.Background()

	got, err := svc.ListVisitors(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	require.NoError(t, store.Visitors().Create(ctx, domain.NewVisitor("Ana", "87654321", 30, nil, true, time.Now().UTC())))
	got, err = svc.ListVisitors(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)
}

func TestActivityService_RegisteredCountIsWholeActivity(t *testing.T) {
	store, svc := newActivityFixture(t)
	ctx := context.Background()

	a, err := svc.CreateActivity(ctx, domain.CreateActivityInput{Name: "Safari", Capacity: intPtr(15), Schedules: []string{"10:00"}})
	require.NoError(t, err)

	svc.store = &totalsStore{Store: store, total: 6}
	got, err := svc.GetActivity(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.RegisteredCount)
	assert.Equal(t, 9, got.AvailableCapacity)
	assert.Equal(t, []domain.SlotAvailability{{Schedule: "10:00", RegisteredCount: 0, AvailableCapacity: 8}}, got.Slots)

	boom := errors.New("connection reset")
	svc.store = &totalsStore{Store: store, err: boom}
	_, err = svc.ListActivities(ctx)
	assert.ErrorIs(t, err, boom)
}

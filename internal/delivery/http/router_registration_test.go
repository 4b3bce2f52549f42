package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activitybooking/internal/adapters/lock"
	"activitybooking/internal/delivery/http/controllers"
	"activitybooking/internal/domain"
	"activitybooking/internal/repository/sqlite"
	"activitybooking/internal/services"
)

// newStoreRouter wires the real services over an in-memory SQLite store.
func newStoreRouter(t *testing.T) (http.Handler, domain.ActivityService) {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := sqlite.NewStore(db)
	activities := services.NewActivityService(store, 5*time.Second)
	registrations := services.NewRegistrationService(store, lock.NewLocal(), nil, logger, 5*time.Second)

	return NewRouter(RouterDeps{
		Logger:                 logger,
		ActivityController:     controllers.NewActivityController(logger, activities),
		RegistrationController: controllers.NewRegistrationController(logger, registrations),
	}), activities
}

func TestRouter_LegacyRegistrationAgainstStore(t *testing.T) {
	router, activities := newStoreRouter(t)
	tirolesa, err := activities.CreateActivity(context.Background(), domain.CreateActivityInput{
		Name:             "Tirolesa",
		Schedules:        []string{"15:00"},
		RequiresClothing: true,
	})
	require.NoError(t, err)

	register := func(activityID, body string) (int, map[string]any) {
		req := httptest.NewRequest(http.MethodPost, "/api/activities/"+activityID+"/register", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		var resp map[string]any
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		return rr.Code, resp
	}

	tests := []struct {
		name       string
		activityID string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "admitted",
			activityID: tirolesa.ID,
			body:       `{"visitor": {"name": "Juan", "dni": "12345678", "age": 25, "clothing_size": "M"}, "schedule": "15:00", "current_time": "08:30"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "same visitor again",
			activityID: tirolesa.ID,
			body:       `{"visitor": {"name": "Juan", "dni": "12345678", "age": 25, "clothing_size": "M"}, "schedule": "15:00", "current_time": "08:30"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   string(domain.KindDuplicateInSlot),
		},
		{
			name:       "terms declined",
			activityID: tirolesa.ID,
			body:       `{"visitor": {"name": "Ana", "dni": "87654321", "age": 30, "clothing_size": "S", "terms_accepted": false}, "schedule": "15:00", "current_time": "08:30"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   string(domain.KindTermsNotAccepted),
		},
		{
			name:       "schedule not offered",
			activityID: tirolesa.ID,
			body:       `{"visitor": {"name": "Ana", "dni": "87654321", "age": 30, "clothing_size": "S"}, "schedule": "11:00", "current_time": "08:30"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   string(domain.KindInvalidSchedule),
		},
		{
			name:       "unknown activity",
			activityID: "6f1c2a57-6b0e-4b8f-9b0a-2f1a0c9e7d11",
			body:       `{"visitor": {"name": "Ana", "dni": "87654321", "age": 30}, "schedule": "15:00", "current_time": "08:30"}`,
			wantStatus: http.StatusNotFound,
			wantCode:   string(domain.KindNotFound),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := register(tt.activityID, tt.body)
			require.Equal(t, tt.wantStatus, status, resp)
			if tt.wantCode == "" {
				assert.Equal(t, true, resp["success"])
				assert.Len(t, resp["registrations"], 1)
				return
			}
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, tt.wantCode, resp["code"])
			assert.NotEmpty(t, resp["error"])
		})
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/activities/"+tirolesa.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var envelope struct {
		Data domain.ActivityAvailability `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	assert.Equal(t, 1, envelope.Data.RegisteredCount)
	assert.Equal(t, []domain.SlotAvailability{{Schedule: "15:00", RegisteredCount: 1, AvailableCapacity: 9}}, envelope.Data.Slots)
}

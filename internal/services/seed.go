package services

import (
	"context"
	"fmt"

	"activitybooking/internal/domain"
)

func intPtr(n int) *int { return &n }

// SampleActivities is the demo catalog loaded into an empty store.
var SampleActivities = []domain.CreateActivityInput{
	{
		Name:             "Tirolesa",
		Capacity:         intPtr(8),
		Schedules:        []string{"09:00", "11:00", "15:00", "17:00"},
		Requirements:     map[string]any{"nivel": "intermedio", "equipamiento": "arnés y casco"},
		RequiresClothing: true,
	},
	{
		Name:         "Safari",
		Capacity:     intPtr(15),
		Schedules:    []string{"10:00", "14:00", "16:00"},
		Requirements: map[string]any{"nivel": "todos", "equipamiento": "binoculares"},
	},
	{
		Name:             "Palestra",
		Capacity:         intPtr(6),
		Schedules:        []string{"09:30", "11:30", "15:30", "17:30"},
		Requirements:     map[string]any{"nivel": "principiante", "equipamiento": "zapatos de escalada"},
		RequiresClothing: true,
	},
	{
		Name:     "Jardinería",
		Capacity: intPtr(12),
		// 08:00 is before the park opens.
		Schedules:        []string{"10:00", "14:00", "16:00"},
		Requirements:     map[string]any{"nivel": "todos", "equipamiento": "guantes y herramientas"},
		RequiresClothing: true,
	},
}

// Seed creates the sample activities unless the store already has some. It
// returns the activities it created.
func Seed(ctx context.Context, store domain.Store, svc domain.ActivityService) ([]*domain.Activity, error) {
	existing, err := store.Activities().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	if len(existing) > 0 {
		return nil, nil
	}

	created := make([]*domain.Activity, 0, len(SampleActivities))
	for _, in := range SampleActivities {
		a, err := svc.CreateActivity(ctx, in)
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", in.Name, err)
		}
		created = append(created, a)
	}
	return created, nil
}

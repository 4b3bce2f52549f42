package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Activity is a bookable attraction with a fixed set of daily turns.
// swagger:model Activity
type Activity struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Capacity         int            `json:"capacity"`
	Schedules        []string       `json:"schedules"`
	Requirements     map[string]any `json:"requirements"`
	RequiresClothing bool           `json:"requires_clothing"`
	CreatedAt        time.Time      `json:"created_at"`
}

// NewActivity returns an Activity. An empty schedule list defaults to the full
// canonical grid and a nil requirements bag to an empty one.
func NewActivity(name string, capacity int, schedules []string, requirements map[string]any, requiresClothing bool, createdAt time.Time) *Activity {
	if len(schedules) == 0 {
		schedules = DefaultSlots()
	}
	if requirements == nil {
		requirements = map[string]any{}
	}
	return &Activity{
		Name:             name,
		Capacity:         capacity,
		Schedules:        schedules,
		Requirements:     requirements,
		RequiresClothing: requiresClothing,
		CreatedAt:        createdAt,
	}
}

// Validate returns every violated rule in check order; empty means valid.
func (a *Activity) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, "activity name is required")
	}
	if a.Capacity < 0 {
		errs = append(errs, "capacity must be zero or a positive number")
	}
	if len(a.Schedules) == 0 {
		errs = append(errs, "activity must have at least one schedule")
	}
	for _, s := range a.Schedules {
		if !IsValidSlot(s) {
			errs = append(errs, fmt.Sprintf("invalid schedule %q: must be HH:MM on the 30 minute grid between %s and 17:30", s, DayStart))
		}
	}
	return errs
}

// HasSchedule reports whether slot is one of the activity's own schedules.
func (a *Activity) HasSchedule(slot string) bool {
	for _, s := range a.Schedules {
		if s == slot {
			return true
		}
	}
	return false
}

// Rule returns the rule table entry matching the activity's name.
func (a *Activity) Rule() ActivityRule {
	return RuleFor(a.Name)
}

// SlotAvailability is the booking state of one activity turn.
// swagger:model SlotAvailability
type SlotAvailability struct {
	Schedule          string `json:"schedule"`
	RegisteredCount   int    `json:"registered_count"`
	AvailableCapacity int    `json:"available_capacity"`
}

// ActivityAvailability is an activity together with its booking counts.
// AvailableCapacity is derived from the legacy whole-activity Capacity; per
// turn availability uses the rule table's turn capacity.
// swagger:model ActivityAvailability
type ActivityAvailability struct {
	*Activity
	TurnCapacity      int                `json:"turn_capacity"`
	MinAge            int                `json:"min_age"`
	RegisteredCount   int                `json:"registered_count"`
	AvailableCapacity int                `json:"available_capacity"`
	Slots             []SlotAvailability `json:"slots"`
}

// CreateActivityInput is the data needed to create an activity. A nil Capacity
// defaults to the activity's turn capacity.
type CreateActivityInput struct {
	Name             string
	Capacity         *int
	Schedules        []string
	Requirements     map[string]any
	RequiresClothing bool
}

// ActivityRepository defines storage operations for activities.
type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error
	GetByID(ctx context.Context, id string) (*Activity, error)
	List(ctx context.Context) ([]*Activity, error)
}

// ActivityService defines the catalog operations around activities.
type ActivityService interface {
	CreateActivity(ctx context.Context, input CreateActivityInput) (*Activity, error)
	ListActivities(ctx context.Context) ([]*ActivityAvailability, error)
	GetActivity(ctx context.Context, id string) (*ActivityAvailability, error)
	ListVisitors(ctx context.Context) ([]*Visitor, error)
}

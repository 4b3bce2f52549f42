package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"activitybooking/internal/domain"
)

type activityService struct {
	store          domain.Store
	now            func() time.Time
	contextTimeout time.Duration
}

func NewActivityService(store domain.Store, timeout time.Duration) domain.ActivityService {
	return &activityService{
		store:          store,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *activityService) CreateActivity(ctx context.Context, input domain.CreateActivityInput) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name := strings.TrimSpace(input.Name)
	capacity := domain.TurnCapacity(name)
	if input.Capacity != nil {
		capacity = *input.Capacity
	}

	activity := domain.NewActivity(name, capacity, input.Schedules, input.Requirements, input.RequiresClothing, s.now().UTC())
	if errs := activity.Validate(); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	if err := s.store.Activities().Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}
	return activity, nil
}

func (s *activityService) ListActivities(ctx context.Context) ([]*domain.ActivityAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	activities, err := s.store.Activities().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	out := make([]*domain.ActivityAvailability, 0, len(activities))
	for _, a := range activities {
		view, err := s.availability(ctx, a)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *activityService) GetActivity(ctx context.Context, id string) (*domain.ActivityAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	activity, err := s.store.Activities().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return s.availability(ctx, activity)
}

func (s *activityService) ListVisitors(ctx context.Context) ([]*domain.Visitor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	visitors, err := s.store.Visitors().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	if visitors == nil {
		visitors = []*domain.Visitor{}
	}
	return visitors, nil
}

func (s *activityService) availability(ctx context.Context, a *domain.Activity) (*domain.ActivityAvailability, error) {
	regs := s.store.Registrations()
	total, err := regs.CountByActivity(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("count registrations of %s: %w", a.ID, err)
	}
	counts, err := regs.CountBySchedule(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("count registrations of %s by schedule: %w", a.ID, err)
	}

	rule := a.Rule()
	view := &domain.ActivityAvailability{
		Activity:          a,
		TurnCapacity:      rule.TurnCapacity,
		MinAge:            rule.MinAge,
		RegisteredCount:   total,
		AvailableCapacity: max(0, a.Capacity-total),
		Slots:             make([]domain.SlotAvailability, 0, len(a.Schedules)),
	}

	for _, schedule := range a.Schedules {
		n := counts[schedule]
		view.Slots = append(view.Slots, domain.SlotAvailability{
			Schedule:          schedule,
			RegisteredCount:   n,
			AvailableCapacity: max(0, rule.TurnCapacity-n),
		})
	}
	return view, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"activitybooking/internal/domain"
)

const registrationSuccessMessage = "registration successful"

type registrationService struct {
	store          domain.Store
	locker         domain.SlotLocker
	recorder       domain.AdmissionRecorder
	logger         *slog.Logger
	now            func() time.Time
	contextTimeout time.Duration
}

// NewRegistrationService returns the admission engine. recorder may be nil.
func NewRegistrationService(
	store domain.Store,
	locker domain.SlotLocker,
	recorder domain.AdmissionRecorder,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RegistrationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &registrationService{
		store:          store,
		locker:         locker,
		recorder:       recorder,
		logger:         logger,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

// Register admits the whole batch into the activity's schedule or rejects it
// with an *domain.AdmissionError. Nothing is persisted on rejection.
func (s *registrationService) Register(ctx context.Context, activityID string, batch domain.RegistrationBatch, schedule string) (*domain.RegistrationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	activityName := ""
	result, err := s.admit(ctx, activityID, batch, schedule, &activityName)

	log := s.logger.With("activity_id", activityID, "schedule", schedule, "participants", len(batch.Participants))
	var admErr *domain.AdmissionError
	switch {
	case err == nil:
		log.Info("registration admitted")
		s.record(activityName, "", len(batch.Participants))
	case errors.As(err, &admErr) && admErr.Kind == domain.KindInternalError:
		log.Error("registration failed", "error", admErr.Err)
		s.record(activityName, admErr.Kind, len(batch.Participants))
	case errors.As(err, &admErr):
		log.Warn("registration rejected", "kind", string(admErr.Kind), "reason", admErr.Message)
		s.record(activityName, admErr.Kind, len(batch.Participants))
	}
	return result, err
}

func (s *registrationService) record(activityName string, kind domain.AdmissionKind, participants int) {
	if s.recorder != nil {
		s.recorder.RecordAdmission(activityName, kind, participants)
	}
}

func (s *registrationService) admit(ctx context.Context, activityID string, batch domain.RegistrationBatch, schedule string, activityName *string) (*domain.RegistrationResult, error) {
	unlock, err := s.locker.Lock(ctx, schedule)
	if err != nil {
		return nil, internalError(fmt.Errorf("lock schedule %s: %w", schedule, err))
	}
	defer unlock()

	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	defer uow.Rollback()

	// 1. existence
	activity, err := uow.Activities().GetByID(ctx, activityID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, reject(domain.KindNotFound, "activity not found")
	}
	if err != nil {
		return nil, internalError(fmt.Errorf("get activity: %w", err))
	}
	*activityName = activity.Name
	rule := activity.Rule()

	// 2. schedule membership
	if !activity.HasSchedule(schedule) {
		return nil, reject(domain.KindInvalidSchedule, "schedule %s is not available for %s", schedule, activity.Name)
	}

	// 3. temporal cutoff
	current := batch.CurrentTime
	if current == "" {
		current = domain.ClockLabel(s.now())
	}
	if domain.SlotPassed(schedule, current) {
		return nil, reject(domain.KindSlotPassed, "the %s turn has already passed", schedule)
	}

	// 4. batch size
	size := len(batch.Participants)
	if size < domain.MinBatchSize || size > domain.MaxBatchSize {
		return nil, reject(domain.KindInvalidBatchSize, "number of participants must be between %d and %d", domain.MinBatchSize, domain.MaxBatchSize)
	}

	// 5. capacity
	existing, err := uow.Registrations().CountByActivityAndSchedule(ctx, activity.ID, schedule)
	if err != nil {
		return nil, internalError(fmt.Errorf("count registrations: %w", err))
	}
	if existing+size > rule.TurnCapacity {
		return nil, reject(domain.KindCapacityExceeded, "not enough places available: only %d left for %s at %s", max(0, rule.TurnCapacity-existing), activity.Name, schedule)
	}

	// 6. terms
	if !batch.TermsAccepted {
		return nil, reject(domain.KindTermsNotAccepted, "terms and conditions must be accepted")
	}

	// 7. duplicates, across every activity booked at this schedule
	seen := make(map[string]bool, size)
	for _, p := range batch.Participants {
		dni := strings.TrimSpace(p.DNI)
		if dni == "" {
			continue
		}
		if seen[dni] {
			return nil, reject(domain.KindDuplicateInSlot, "visitor with DNI %s appears more than once for the %s turn", dni, schedule)
		}
		seen[dni] = true
		booked, err := uow.Registrations().ExistsForDNIInSchedule(ctx, dni, schedule)
		if err != nil {
			return nil, internalError(fmt.Errorf("check duplicate registration: %w", err))
		}
		if booked {
			return nil, reject(domain.KindDuplicateInSlot, "visitor with DNI %s is already registered for the %s turn", dni, schedule)
		}
	}

	// 8. participants
	now := s.now().UTC()
	visitors := make([]*domain.Visitor, 0, size)
	for i, p := range batch.Participants {
		v, err := checkParticipant(i+1, p, activity, rule, batch.TermsAccepted, now)
		if err != nil {
			return nil, err
		}
		visitors = append(visitors, v)
	}

	// 9. commit
	registrations := make([]*domain.Registration, 0, size)
	for _, v := range visitors {
		if err := uow.Visitors().Create(ctx, v); err != nil {
			return nil, internalError(fmt.Errorf("create visitor: %w", err))
		}
		reg := domain.NewRegistration(activity.ID, v.ID, schedule, now)
		if err := uow.Registrations().Create(ctx, reg); err != nil {
			return nil, internalError(fmt.Errorf("create registration: %w", err))
		}
		registrations = append(registrations, reg)
	}
	if err := uow.Commit(); err != nil {
		return nil, internalError(err)
	}

	return &domain.RegistrationResult{
		Message:       registrationSuccessMessage,
		ActivityID:    activity.ID,
		Schedule:      schedule,
		Visitors:      visitors,
		Registrations: registrations,
	}, nil
}

// checkParticipant runs the structural checks for the participant at the
// 1-based position n and builds its visitor.
func checkParticipant(n int, p domain.ParticipantInput, activity *domain.Activity, rule domain.ActivityRule, terms bool, now time.Time) (*domain.Visitor, error) {
	if p.IsEmpty() {
		return nil, reject(domain.KindMissingField, "participant %d: data is missing", n)
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, reject(domain.KindMissingField, "participant %d: name is required", n)
	}
	if strings.TrimSpace(p.DNI) == "" {
		return nil, reject(domain.KindMissingField, "participant %d: DNI is required", n)
	}
	if p.Age == nil {
		return nil, reject(domain.KindMissingField, "participant %d: age is required", n)
	}
	if *p.Age <= 0 {
		return nil, reject(domain.KindMissingField, "participant %d: age must be a positive number", n)
	}
	if activity.RequiresClothing && (p.ClothingSize == nil || strings.TrimSpace(*p.ClothingSize) == "") {
		return nil, reject(domain.KindClothingRequired, "%s requires a clothing size for participant %d", activity.Name, n)
	}
	if *p.Age < rule.MinAge {
		return nil, reject(domain.KindAgeBelowMinimum, "participant %d must be at least %d years old for %s", n, rule.MinAge, activity.Name)
	}

	v := domain.NewVisitor(strings.TrimSpace(p.Name), strings.TrimSpace(p.DNI), *p.Age, p.ClothingSize, terms, now)
	details := append(v.Validate(), domain.ValidateDNI(v.DNI)...)
	if len(details) > 0 {
		err := reject(domain.KindInvalidDniFormat, "participant %d data is invalid", n)
		err.Details = details
		return nil, err
	}
	return v, nil
}

func reject(kind domain.AdmissionKind, format string, args ...any) *domain.AdmissionError {
	return &domain.AdmissionError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func internalError(err error) *domain.AdmissionError {
	return &domain.AdmissionError{
		Kind:    domain.KindInternalError,
		Message: "internal error: " + err.Error(),
		Err:     err,
	}
}

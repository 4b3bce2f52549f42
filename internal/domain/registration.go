package domain

import (
	"context"
	"time"
)

// Bounds on how many participants a single request may register.
const (
	MinBatchSize = 1
	MaxBatchSize = 10
)

// Registration books one visitor into one activity turn.
// swagger:model Registration
type Registration struct {
	ID           string    `json:"id"`
	ActivityID   string    `json:"activity_id"`
	VisitorID    string    `json:"visitor_id"`
	Schedule     string    `json:"schedule"`
	RegisteredAt time.Time `json:"registered_at"`
}

// NewRegistration returns a new Registration. ID is set by the caller before it is stored.
func NewRegistration(activityID, visitorID, schedule string, registeredAt time.Time) *Registration {
	return &Registration{
		ActivityID:   activityID,
		VisitorID:    visitorID,
		Schedule:     schedule,
		RegisteredAt: registeredAt,
	}
}

// ParticipantInput is one person of a registration batch as received from the
// caller. Pointer fields distinguish "absent" from zero values.
type ParticipantInput struct {
	Name         string  `json:"name"`
	DNI          string  `json:"dni"`
	Age          *int    `json:"age"`
	ClothingSize *string `json:"clothing_size"`
}

// IsEmpty reports whether the participant payload carries no data at all.
func (p ParticipantInput) IsEmpty() bool {
	return p.Name == "" && p.DNI == "" && p.Age == nil && p.ClothingSize == nil
}

// RegistrationBatch is one admission request. Count mirrors the client's
// participants_count and is informational; the participant list is authoritative.
// CurrentTime is an optional "HH:MM" the caller claims as now.
type RegistrationBatch struct {
	Participants  []ParticipantInput
	TermsAccepted bool
	Count         *int
	CurrentTime   string
}

// RegistrationResult describes a committed admission.
type RegistrationResult struct {
	Message       string          `json:"message"`
	ActivityID    string          `json:"activity_id"`
	Schedule      string          `json:"schedule"`
	Visitors      []*Visitor      `json:"visitors"`
	Registrations []*Registration `json:"registrations"`
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	CountByActivity(ctx context.Context, activityID string) (int, error)
	CountByActivityAndSchedule(ctx context.Context, activityID, schedule string) (int, error)
	// CountBySchedule returns the registration count per schedule label of an activity.
	CountBySchedule(ctx context.Context, activityID string) (map[string]int, error)
	// ExistsForDNIInSchedule reports whether a visitor with dni holds a registration
	// at schedule in any activity.
	ExistsForDNIInSchedule(ctx context.Context, dni, schedule string) (bool, error)
}

// RegistrationService admits registration batches into activity turns.
type RegistrationService interface {
	Register(ctx context.Context, activityID string, batch RegistrationBatch, schedule string) (*RegistrationResult, error)
}

package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by repositories and services.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// AdmissionKind classifies why a registration request was rejected.
type AdmissionKind string

const (
	KindNotFound         AdmissionKind = "not_found"
	KindInvalidSchedule  AdmissionKind = "invalid_schedule"
	KindSlotPassed       AdmissionKind = "slot_passed"
	KindInvalidBatchSize AdmissionKind = "invalid_batch_size"
	KindCapacityExceeded AdmissionKind = "capacity_exceeded"
	KindTermsNotAccepted AdmissionKind = "terms_not_accepted"
	KindDuplicateInSlot  AdmissionKind = "duplicate_in_slot"
	KindMissingField     AdmissionKind = "missing_field"
	KindClothingRequired AdmissionKind = "clothing_required"
	KindAgeBelowMinimum  AdmissionKind = "age_below_minimum"
	KindInvalidDniFormat AdmissionKind = "invalid_dni_format"
	KindInternalError    AdmissionKind = "internal_error"
)

// AdmissionError is a rejected registration. Message is user facing; Details
// carries the per-field messages of a participant validation failure.
type AdmissionError struct {
	Kind    AdmissionKind
	Message string
	Details []string
	Err     error
}

func (e *AdmissionError) Error() string {
	return e.Message
}

// Unwrap exposes ErrNotFound for NotFound rejections and the storage cause for
// internal errors.
func (e *AdmissionError) Unwrap() error {
	if e.Kind == KindNotFound {
		return ErrNotFound
	}
	return e.Err
}

// ValidationError carries the ordered list of violated entity rules.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

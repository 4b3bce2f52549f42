package domain

import (
	"fmt"
	"slices"
	"time"
)

// Default bounds of the bookable day. A slot starts at DayStart and the last one
// starts one SlotInterval before DayEnd.
const (
	DayStart     = "09:00"
	DayEnd       = "18:00"
	SlotInterval = 30 * time.Minute
	slotLayout   = "15:04"
)

var defaultSlots = mustGenerateSlots(DayStart, DayEnd, SlotInterval)

// GenerateSlots returns the ordered "HH:MM" labels starting at start and stepping
// by interval, stopping before a step reaches or exceeds end.
func GenerateSlots(start, end string, interval time.Duration) ([]string, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", interval)
	}
	from, err := time.Parse(slotLayout, start)
	if err != nil {
		return nil, fmt.Errorf("parse start %q: %w", start, err)
	}
	to, err := time.Parse(slotLayout, end)
	if err != nil {
		return nil, fmt.Errorf("parse end %q: %w", end, err)
	}

	slots := []string{}
	for t := from; t.Before(to); t = t.Add(interval) {
		slots = append(slots, t.Format(slotLayout))
	}
	return slots, nil
}

func mustGenerateSlots(start, end string, interval time.Duration) []string {
	slots, err := GenerateSlots(start, end, interval)
	if err != nil {
		panic(err)
	}
	return slots
}

// DefaultSlots returns a copy of the canonical grid, 09:00 through 17:30.
func DefaultSlots() []string {
	return slices.Clone(defaultSlots)
}

// IsValidSlot reports whether s is a label on the canonical grid.
func IsValidSlot(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	return slices.Contains(defaultSlots, s)
}

// SlotPassed reports whether the slot starts at or before current on the same day.
// A current time that cannot be parsed skips the check.
func SlotPassed(slot, current string) bool {
	if !IsValidSlot(slot) {
		return false
	}
	slotAt, err := time.Parse(slotLayout, slot)
	if err != nil {
		return false
	}
	now, err := time.Parse(slotLayout, current)
	if err != nil {
		return false
	}
	return !now.Before(slotAt)
}

// ClockLabel formats t as an "HH:MM" label.
func ClockLabel(t time.Time) string {
	return t.Format(slotLayout)
}

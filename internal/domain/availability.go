package domain

import (
	"time"

	"github.com/geekpf/agenda2/pkg/types"
)

// DayAvailability is the recurring weekly template for one weekday.
// Exactly seven entries exist at all times, one per weekday index 0-6
// (Sunday=0 .. Saturday=6), with no duplicates.
type DayAvailability struct {
	DayOfWeek int // 0 for Sunday, 1 for Monday, etc.
	Enabled   bool

	// Slots is kept sorted ascending. Labels are zero-padded 24-hour
	// "HH:MM", so lexicographic order equals chronological order.
	Slots []types.TimeString

	UpdatedAt time.Time
}

// HasBookableSlots returns true if the weekday contributes bookable slots.
// A disabled entry contributes zero slots regardless of its stored list.
func (d *DayAvailability) HasBookableSlots() bool {
	return d.Enabled && len(d.Slots) > 0
}

// ContainsSlot returns true if the slot is part of the template
func (d *DayAvailability) ContainsSlot(slot types.TimeString) bool {
	for _, s := range d.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// FindDay returns the template for the given weekday index, or nil when
// no entry exists. A missing entry is treated as fully closed, not an error.
func FindDay(availability []DayAvailability, dayOfWeek int) *DayAvailability {
	for i := range availability {
		if availability[i].DayOfWeek == dayOfWeek {
			return &availability[i]
		}
	}
	return nil
}

// FindDayForDate returns the template governing the given calendar date
func FindDayForDate(availability []DayAvailability, date time.Time) *DayAvailability {
	return FindDay(availability, int(date.Weekday()))
}

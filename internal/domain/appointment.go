package domain

import (
	"time"

	"github.com/geekpf/agenda2/pkg/types"
)

// AppointmentStatus represents the moderation status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusRejected  AppointmentStatus = "rejected"
)

// IsValid returns true if the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusRejected
}

// Appointment represents a booked visit in the system
type Appointment struct {
	ID             string
	ClientName     string
	ClientContact  string
	ServiceID      string
	ProfessionalID string
	Date           time.Time // calendar date only, stored as YYYY-MM-DD
	StartTime      types.TimeString
	Status         AppointmentStatus

	// Price snapshot captured from the service at booking time,
	// so later price edits do not change existing appointments
	Price float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoldsSlot returns true if the appointment blocks its (professional, date, time)
// slot for other clients. Rejected appointments free the slot for reuse.
func (a *Appointment) HoldsSlot() bool {
	return a.Status != StatusRejected
}

// IsDecided returns true if the appointment has left the pending state.
// Decided appointments are terminal and cannot be re-moderated.
func (a *Appointment) IsDecided() bool {
	return a.Status == StatusConfirmed || a.Status == StatusRejected
}

// CanTransitionTo returns true if moderation may move the appointment to next.
// Only pending->confirmed and pending->rejected are allowed.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.Status != StatusPending {
		return false
	}
	return next == StatusConfirmed || next == StatusRejected
}

package domain

import (
	"time"

	"github.com/geekpf/agenda2/pkg/types"
)

// BookingState is one step of the linear client booking flow
type BookingState string

const (
	StateSelectService      BookingState = "select_service"
	StateSelectProfessional BookingState = "select_professional"
	StateSelectDateTime     BookingState = "select_datetime"
	StateAcknowledgePayment BookingState = "acknowledge_payment"
	StateConfirmed          BookingState = "confirmed"
)

// bookingStateOrder fixes the strict linear order of the flow
var bookingStateOrder = []BookingState{
	StateSelectService,
	StateSelectProfessional,
	StateSelectDateTime,
	StateAcknowledgePayment,
	StateConfirmed,
}

// Prev returns the previous state of the flow, or the state itself when
// already at the first step. Confirmed has no previous state: the only way
// back from it is a full restart.
func (s BookingState) Prev() BookingState {
	for i, state := range bookingStateOrder {
		if state == s && i > 0 && s != StateConfirmed {
			return bookingStateOrder[i-1]
		}
	}
	return s
}

// Next returns the following state of the flow, or the state itself when
// already at the last step
func (s BookingState) Next() BookingState {
	for i, state := range bookingStateOrder {
		if state == s && i < len(bookingStateOrder)-1 {
			return bookingStateOrder[i+1]
		}
	}
	return s
}

// BookingSession holds one client's progress through the booking flow.
// A session belongs to a single client; no two sessions share mutable state.
// Earlier selections survive a step back so re-entering a state shows them again.
type BookingSession struct {
	ID    string       `json:"id"`
	State BookingState `json:"state"`

	ServiceID      *string           `json:"serviceId,omitempty"`
	ProfessionalID *string           `json:"professionalId,omitempty"`
	Date           *time.Time        `json:"date,omitempty"`
	Slot           *types.TimeString `json:"slot,omitempty"`

	// AppointmentID is set once the flow commits, for the confirmation screen
	AppointmentID *string `json:"appointmentId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Reset wipes every collected selection and returns the session to the
// first step. This is the "start over" action, the only unbounded
// backward transition of the flow.
func (s *BookingSession) Reset() {
	s.State = StateSelectService
	s.ServiceID = nil
	s.ProfessionalID = nil
	s.Date = nil
	s.Slot = nil
	s.AppointmentID = nil
}

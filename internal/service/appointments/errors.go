package appointments

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")
	ErrStatusFinal         = errors.New("appointments: appointment already decided")
	ErrInvalidStatus       = errors.New("appointments: invalid status")
	ErrInternal            = errors.New("appointments: internal error")
)

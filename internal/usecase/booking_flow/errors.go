package booking_flow

import "errors"

var (
	ErrSessionNotFound         = errors.New("booking_flow: session not found")
	ErrInvalidState            = errors.New("booking_flow: operation not allowed in current state")
	ErrServiceNotFound         = errors.New("booking_flow: service not found")
	ErrProfessionalNotFound    = errors.New("booking_flow: professional not found")
	ErrProfessionalNotEligible = errors.New("booking_flow: professional does not offer selected service")
	ErrDateNotAvailable        = errors.New("booking_flow: date is not available for booking")
	ErrSlotNotAvailable        = errors.New("booking_flow: slot is not available on selected date")
	ErrSlotTaken               = errors.New("booking_flow: slot already taken")
	ErrMissingClientInfo       = errors.New("booking_flow: client name and contact are required")
	ErrInvalidInput            = errors.New("booking_flow: invalid input")
	ErrInternal                = errors.New("booking_flow: internal error")
)

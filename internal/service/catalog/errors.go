package catalog

import "errors"

var (
	ErrServiceNotFound      = errors.New("catalog: service not found")
	ErrProfessionalNotFound = errors.New("catalog: professional not found")
	ErrServiceInUse         = errors.New("catalog: service has active appointments")
	ErrProfessionalInUse    = errors.New("catalog: professional has active appointments")
	ErrUnknownService       = errors.New("catalog: unknown service in professional services list")
	ErrInvalidInput         = errors.New("catalog: invalid input")
	ErrInternal             = errors.New("catalog: internal error")
)

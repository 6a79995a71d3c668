package get_available_dates

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("get_available_dates: professional not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_dates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_dates: internal error")
)

package get_available_dates

import (
	"context"

	getAvailableDates "github.com/geekpf/agenda2/internal/usecase/get_available_dates"
)

// GetAvailableDatesUseCase интерфейс use case получения доступных дат
type GetAvailableDatesUseCase interface {
	Execute(ctx context.Context, req *getAvailableDates.Request) (*getAvailableDates.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

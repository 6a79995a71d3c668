package schedule

import (
	"context"

	"github.com/geekpf/agenda2/internal/domain"
)

// AvailabilityRepository интерфейс репозитория недельного расписания
type AvailabilityRepository interface {
	GetAll(ctx context.Context) ([]domain.DayAvailability, error)
	UpdateDay(ctx context.Context, day domain.DayAvailability) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

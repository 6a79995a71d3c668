package availability

import (
	"context"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/pkg/types"
)

// ScheduleService интерфейс сервиса недельного расписания
type ScheduleService interface {
	GetWeek(ctx context.Context) ([]domain.DayAvailability, error)
	UpdateDay(ctx context.Context, dayOfWeek int, enabled bool, slots []types.TimeString) (*domain.DayAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

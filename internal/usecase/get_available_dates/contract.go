package get_available_dates

import (
	"context"
	"time"

	"github.com/geekpf/agenda2/internal/domain"
)

// AvailabilityRepository интерфейс репозитория недельного расписания
type AvailabilityRepository interface {
	GetAll(ctx context.Context) ([]domain.DayAvailability, error)
}

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Professional, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

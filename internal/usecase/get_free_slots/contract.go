package get_free_slots

import (
	"context"
	"time"

	"github.com/geekpf/agenda2/internal/domain"
)

// AvailabilityRepository интерфейс репозитория недельного расписания
type AvailabilityRepository interface {
	GetAll(ctx context.Context) ([]domain.DayAvailability, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListByProfessionalAndDate получает записи мастера на конкретную дату
	ListByProfessionalAndDate(ctx context.Context, professionalID string, date time.Time, onlySlotHolding bool) ([]*domain.Appointment, error)
}

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

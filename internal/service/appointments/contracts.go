package appointments

import (
	"context"

	"github.com/geekpf/agenda2/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

// ServiceRepository интерфейс репозитория услуг для обогащения ответов
type ServiceRepository interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

// ProfessionalRepository интерфейс репозитория мастеров для обогащения ответов
type ProfessionalRepository interface {
	List(ctx context.Context) ([]*domain.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

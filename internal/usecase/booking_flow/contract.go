package booking_flow

import (
	"context"
	"time"

	"github.com/geekpf/agenda2/internal/domain"
)

// SessionStore интерфейс хранилища сессий бронирования
type SessionStore interface {
	Save(ctx context.Context, sess *domain.BookingSession) error
	Get(ctx context.Context, id string) (*domain.BookingSession, error)
	Delete(ctx context.Context, id string) error
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Professional, error)
	List(ctx context.Context) ([]*domain.Professional, error)
}

// AvailabilityRepository интерфейс репозитория недельного расписания
type AvailabilityRepository interface {
	GetAll(ctx context.Context) ([]domain.DayAvailability, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListByProfessionalAndDate(ctx context.Context, professionalID string, date time.Time, onlySlotHolding bool) ([]*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

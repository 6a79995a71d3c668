package catalog

import (
	"context"

	"github.com/geekpf/agenda2/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	Delete(ctx context.Context, id string) error
}

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	Create(ctx context.Context, prof *domain.Professional) (*domain.Professional, error)
	GetByID(ctx context.Context, id string) (*domain.Professional, error)
	List(ctx context.Context) ([]*domain.Professional, error)
	Update(ctx context.Context, prof *domain.Professional) error
	Delete(ctx context.Context, id string) error
}

// AppointmentRepository интерфейс для проверки записей, удерживающих слоты
type AppointmentRepository interface {
	ExistsHoldingForService(ctx context.Context, serviceID string) (bool, error)
	ExistsHoldingForProfessional(ctx context.Context, professionalID string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package appointments

import (
	"context"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/internal/service/appointments/models"
)

// AppointmentsService интерфейс сервиса записей
type AppointmentsService interface {
	List(ctx context.Context) (*models.AppointmentListResponse, error)
	Decide(ctx context.Context, id string, status domain.AppointmentStatus) (*models.AppointmentResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

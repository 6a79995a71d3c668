package booking_session

import (
	"context"

	bookingFlow "github.com/geekpf/agenda2/internal/usecase/booking_flow"
)

// BookingFlowUseCase интерфейс use case процесса бронирования
type BookingFlowUseCase interface {
	Start(ctx context.Context) (*bookingFlow.SessionView, error)
	Get(ctx context.Context, sessionID string) (*bookingFlow.SessionView, error)
	SelectService(ctx context.Context, req *bookingFlow.SelectServiceRequest) (*bookingFlow.SessionView, error)
	SelectProfessional(ctx context.Context, req *bookingFlow.SelectProfessionalRequest) (*bookingFlow.SessionView, error)
	SelectDateTime(ctx context.Context, req *bookingFlow.SelectDateTimeRequest) (*bookingFlow.SessionView, error)
	Confirm(ctx context.Context, req *bookingFlow.ConfirmRequest) (*bookingFlow.SessionView, error)
	Back(ctx context.Context, sessionID string) (*bookingFlow.SessionView, error)
	Restart(ctx context.Context, sessionID string) (*bookingFlow.SessionView, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

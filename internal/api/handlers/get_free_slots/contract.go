package get_free_slots

import (
	"context"

	getFreeSlots "github.com/geekpf/agenda2/internal/usecase/get_free_slots"
)

// GetFreeSlotsUseCase интерфейс use case получения свободных слотов
type GetFreeSlotsUseCase interface {
	Execute(ctx context.Context, req *getFreeSlots.Request) (*getFreeSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

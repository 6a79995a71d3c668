package services

import (
	"context"

	"github.com/geekpf/agenda2/internal/service/catalog/models"
)

// CatalogService интерфейс сервиса каталога для работы с услугами
type CatalogService interface {
	CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error)
	GetService(ctx context.Context, id string) (*models.ServiceResponse, error)
	ListServices(ctx context.Context) (*models.ServiceListResponse, error)
	UpdateService(ctx context.Context, req *models.UpdateServiceRequest) (*models.ServiceResponse, error)
	DeleteService(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

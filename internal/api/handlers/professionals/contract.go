package professionals

import (
	"context"

	"github.com/geekpf/agenda2/internal/service/catalog/models"
)

// CatalogService интерфейс сервиса каталога для работы с мастерами
type CatalogService interface {
	CreateProfessional(ctx context.Context, req *models.CreateProfessionalRequest) (*models.ProfessionalResponse, error)
	ListProfessionals(ctx context.Context, serviceID *string) (*models.ProfessionalListResponse, error)
	UpdateProfessional(ctx context.Context, req *models.UpdateProfessionalRequest) (*models.ProfessionalResponse, error)
	DeleteProfessional(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

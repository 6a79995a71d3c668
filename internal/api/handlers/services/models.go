package services

import (
	"time"

	"github.com/geekpf/agenda2/internal/service/catalog/models"
)

// ServiceRequest HTTP модель создания и полного обновления услуги
type ServiceRequest struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	PixKey          *string `json:"pixKey,omitempty"`
	PixQRCode       *string `json:"pixQrCode,omitempty"`
}

// ServiceResponse HTTP модель услуги
type ServiceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	PixKey          *string   `json:"pixKey,omitempty"`
	PixQRCode       *string   `json:"pixQrCode,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse HTTP модель списка услуг
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
}

// ToCreateRequest конвертирует HTTP запрос в модель сервиса каталога
func (r *ServiceRequest) ToCreateRequest() *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		Name:            r.Name,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		PixKey:          r.PixKey,
		PixQRCode:       r.PixQRCode,
	}
}

// ToUpdateRequest конвертирует HTTP запрос в модель сервиса каталога
func (r *ServiceRequest) ToUpdateRequest(id string) *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		ID:              id,
		Name:            r.Name,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		PixKey:          r.PixKey,
		PixQRCode:       r.PixQRCode,
	}
}

// FromServiceResponse конвертирует ответ сервиса каталога в HTTP модель
func FromServiceResponse(svc *models.ServiceResponse) *ServiceResponse {
	return &ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Price:           svc.Price,
		DurationMinutes: svc.DurationMinutes,
		PixKey:          svc.PixKey,
		PixQRCode:       svc.PixQRCode,
		CreatedAt:       svc.CreatedAt,
		UpdatedAt:       svc.UpdatedAt,
	}
}

// FromServiceListResponse конвертирует список услуг в HTTP модель
func FromServiceListResponse(list *models.ServiceListResponse) *ServiceListResponse {
	out := make([]*ServiceResponse, 0, len(list.Services))
	for _, svc := range list.Services {
		out = append(out, FromServiceResponse(svc))
	}
	return &ServiceListResponse{Services: out}
}

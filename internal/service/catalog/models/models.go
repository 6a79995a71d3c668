package models

import (
	"time"

	"github.com/geekpf/agenda2/internal/domain"
)

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string
	Price           float64
	DurationMinutes int
	PixKey          *string
	PixQRCode       *string
}

// UpdateServiceRequest запрос на полное обновление услуги
type UpdateServiceRequest struct {
	ID              string
	Name            string
	Price           float64
	DurationMinutes int
	PixKey          *string
	PixQRCode       *string
}

// ServiceResponse данные услуги
type ServiceResponse struct {
	ID              string
	Name            string
	Price           float64
	DurationMinutes int
	PixKey          *string
	PixQRCode       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []*ServiceResponse
}

// CreateProfessionalRequest запрос на создание мастера
type CreateProfessionalRequest struct {
	Name       string
	ServiceIDs []string
	PhotoURL   *string
}

// UpdateProfessionalRequest запрос на полное обновление мастера
type UpdateProfessionalRequest struct {
	ID         string
	Name       string
	ServiceIDs []string
	PhotoURL   *string
}

// ProfessionalResponse данные мастера
type ProfessionalResponse struct {
	ID         string
	Name       string
	ServiceIDs []string
	PhotoURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProfessionalListResponse список мастеров
type ProfessionalListResponse struct {
	Professionals []*ProfessionalResponse
}

// FromDomainService конвертирует доменную модель услуги в ответ сервиса
func FromDomainService(svc *domain.Service) *ServiceResponse {
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

// FromDomainServices конвертирует список доменных моделей услуг
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	out := make([]*ServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, FromDomainService(svc))
	}
	return &ServiceListResponse{Services: out}
}

// FromDomainProfessional конвертирует доменную модель мастера в ответ сервиса
func FromDomainProfessional(prof *domain.Professional) *ProfessionalResponse {
	return &ProfessionalResponse{
		ID:         prof.ID,
		Name:       prof.Name,
		ServiceIDs: prof.ServiceIDs,
		PhotoURL:   prof.PhotoURL,
		CreatedAt:  prof.CreatedAt,
		UpdatedAt:  prof.UpdatedAt,
	}
}

// FromDomainProfessionals конвертирует список доменных моделей мастеров
func FromDomainProfessionals(professionals []*domain.Professional) *ProfessionalListResponse {
	out := make([]*ProfessionalResponse, 0, len(professionals))
	for _, prof := range professionals {
		out = append(out, FromDomainProfessional(prof))
	}
	return &ProfessionalListResponse{Professionals: out}
}

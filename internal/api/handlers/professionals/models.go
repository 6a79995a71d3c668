package professionals

import (
	"time"

	"github.com/geekpf/agenda2/internal/service/catalog/models"
)

// ProfessionalRequest HTTP модель создания и полного обновления мастера
type ProfessionalRequest struct {
	Name       string   `json:"name"`
	ServiceIDs []string `json:"serviceIds"`
	PhotoURL   *string  `json:"photoUrl,omitempty"`
}

// ProfessionalResponse HTTP модель мастера
type ProfessionalResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ServiceIDs []string  `json:"serviceIds"`
	PhotoURL   *string   `json:"photoUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ProfessionalListResponse HTTP модель списка мастеров
type ProfessionalListResponse struct {
	Professionals []*ProfessionalResponse `json:"professionals"`
}

// ToCreateRequest конвертирует HTTP запрос в модель сервиса каталога
func (r *ProfessionalRequest) ToCreateRequest() *models.CreateProfessionalRequest {
	return &models.CreateProfessionalRequest{
		Name:       r.Name,
		ServiceIDs: r.ServiceIDs,
		PhotoURL:   r.PhotoURL,
	}
}

// ToUpdateRequest конвертирует HTTP запрос в модель сервиса каталога
func (r *ProfessionalRequest) ToUpdateRequest(id string) *models.UpdateProfessionalRequest {
	return &models.UpdateProfessionalRequest{
		ID:         id,
		Name:       r.Name,
		ServiceIDs: r.ServiceIDs,
		PhotoURL:   r.PhotoURL,
	}
}

// FromProfessionalResponse конвертирует ответ сервиса каталога в HTTP модель
func FromProfessionalResponse(prof *models.ProfessionalResponse) *ProfessionalResponse {
	return &ProfessionalResponse{
		ID:         prof.ID,
		Name:       prof.Name,
		ServiceIDs: prof.ServiceIDs,
		PhotoURL:   prof.PhotoURL,
		CreatedAt:  prof.CreatedAt,
		UpdatedAt:  prof.UpdatedAt,
	}
}

// FromProfessionalListResponse конвертирует список мастеров в HTTP модель
func FromProfessionalListResponse(list *models.ProfessionalListResponse) *ProfessionalListResponse {
	out := make([]*ProfessionalResponse, 0, len(list.Professionals))
	for _, prof := range list.Professionals {
		out = append(out, FromProfessionalResponse(prof))
	}
	return &ProfessionalListResponse{Professionals: out}
}

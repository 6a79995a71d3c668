package appointments

import (
	"time"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/internal/service/appointments/models"
	"github.com/geekpf/agenda2/pkg/ptr"
)

// UpdateStatusRequest HTTP модель решения модерации
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AppointmentResponse HTTP модель записи
type AppointmentResponse struct {
	ID               string    `json:"id"`
	ClientName       string    `json:"clientName"`
	ClientContact    string    `json:"clientContact"`
	ServiceID        string    `json:"serviceId"`
	ServiceName      string    `json:"serviceName"`
	ProfessionalID   string    `json:"professionalId"`
	ProfessionalName string    `json:"professionalName"`
	Date             string    `json:"date"`
	StartTime        string    `json:"startTime"`
	EndTime          *string   `json:"endTime,omitempty"`
	Status           string    `json:"status"`
	Price            float64   `json:"price"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// AppointmentListResponse HTTP модель списка записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP модель
func FromServiceResponse(appt *models.AppointmentResponse) *AppointmentResponse {
	var endTime *string
	if appt.EndTime != nil {
		endTime = ptr.Ptr(appt.EndTime.String())
	}
	return &AppointmentResponse{
		ID:               appt.ID,
		ClientName:       appt.ClientName,
		ClientContact:    appt.ClientContact,
		ServiceID:        appt.ServiceID,
		ServiceName:      appt.ServiceName,
		ProfessionalID:   appt.ProfessionalID,
		ProfessionalName: appt.ProfessionalName,
		Date:             appt.Date.Format(domain.DateFormat),
		StartTime:        appt.StartTime.String(),
		EndTime:          endTime,
		Status:           string(appt.Status),
		Price:            appt.Price,
		CreatedAt:        appt.CreatedAt,
		UpdatedAt:        appt.UpdatedAt,
	}
}

// FromServiceListResponse конвертирует список записей в HTTP модель
func FromServiceListResponse(list *models.AppointmentListResponse) *AppointmentListResponse {
	out := make([]*AppointmentResponse, 0, len(list.Appointments))
	for _, appt := range list.Appointments {
		out = append(out, FromServiceResponse(appt))
	}
	return &AppointmentListResponse{Appointments: out}
}

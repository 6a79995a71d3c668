package models

import (
	"time"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/pkg/ptr"
	"github.com/geekpf/agenda2/pkg/types"
)

// Подстановки для записей, чьи услуга или мастер были удалены
const (
	MissingServiceName      = "Serviço não encontrado"
	MissingProfessionalName = "Profissional não encontrado"
)

// AppointmentResponse запись с именами услуги и мастера на момент чтения
type AppointmentResponse struct {
	ID               string
	ClientName       string
	ClientContact    string
	ServiceID        string
	ServiceName      string
	ProfessionalID   string
	ProfessionalName string
	Date             time.Time
	StartTime        types.TimeString
	EndTime          *types.TimeString
	Status           domain.AppointmentStatus
	Price            float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse
}

// FromDomainAppointment конвертирует запись в ответ сервиса.
// Имена услуги и мастера берутся из справочников; для удалённых
// сущностей подставляются заглушки, а время окончания не вычисляется.
func FromDomainAppointment(
	appt *domain.Appointment,
	serviceNames map[string]string,
	serviceDurations map[string]int,
	professionalNames map[string]string,
) *AppointmentResponse {
	serviceName, ok := serviceNames[appt.ServiceID]
	if !ok {
		serviceName = MissingServiceName
	}
	professionalName, ok := professionalNames[appt.ProfessionalID]
	if !ok {
		professionalName = MissingProfessionalName
	}

	var endTime *types.TimeString
	if duration, ok := serviceDurations[appt.ServiceID]; ok {
		if end, err := appt.StartTime.AddMinutes(duration); err == nil {
			endTime = ptr.Ptr(end)
		}
	}

	return &AppointmentResponse{
		ID:               appt.ID,
		ClientName:       appt.ClientName,
		ClientContact:    appt.ClientContact,
		ServiceID:        appt.ServiceID,
		ServiceName:      serviceName,
		ProfessionalID:   appt.ProfessionalID,
		ProfessionalName: professionalName,
		Date:             appt.Date,
		StartTime:        appt.StartTime,
		EndTime:          endTime,
		Status:           appt.Status,
		Price:            appt.Price,
		CreatedAt:        appt.CreatedAt,
		UpdatedAt:        appt.UpdatedAt,
	}
}

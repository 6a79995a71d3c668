package booking_session

import (
	"time"

	"github.com/geekpf/agenda2/internal/domain"
	bookingFlow "github.com/geekpf/agenda2/internal/usecase/booking_flow"
	"github.com/geekpf/agenda2/pkg/ptr"
	"github.com/geekpf/agenda2/pkg/types"
)

// SelectServiceRequest HTTP модель выбора услуги
type SelectServiceRequest struct {
	ServiceID string `json:"serviceId"`
}

// SelectProfessionalRequest HTTP модель выбора мастера
type SelectProfessionalRequest struct {
	ProfessionalID string `json:"professionalId"`
}

// SelectDateTimeRequest HTTP модель выбора даты и времени
type SelectDateTimeRequest struct {
	Date string  `json:"date"`
	Slot *string `json:"slot,omitempty"`
}

// ConfirmRequest HTTP модель подтверждения бронирования
type ConfirmRequest struct {
	ClientName    string `json:"clientName"`
	ClientContact string `json:"clientContact"`
}

// ServiceSummary данные услуги в контексте сессии
type ServiceSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ProfessionalSummary данные мастера в контексте сессии
type ProfessionalSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// PaymentInfo платёжные реквизиты на шаге подтверждения
type PaymentInfo struct {
	PixKey    *string `json:"pixKey,omitempty"`
	PixQRCode *string `json:"pixQrCode,omitempty"`
}

// AppointmentSummary данные созданной записи
type AppointmentSummary struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	Status    string  `json:"status"`
	Price     float64 `json:"price"`
}

// SessionResponse HTTP модель состояния сессии бронирования
type SessionResponse struct {
	ID            string                 `json:"id"`
	State         string                 `json:"state"`
	ServiceID     *string                `json:"serviceId,omitempty"`
	Professional  *ProfessionalSummary   `json:"professional,omitempty"`
	Service       *ServiceSummary        `json:"service,omitempty"`
	Professionals []*ProfessionalSummary `json:"professionals,omitempty"`
	Date          *string                `json:"date,omitempty"`
	Slot          *string                `json:"slot,omitempty"`
	Payment       *PaymentInfo           `json:"payment,omitempty"`
	Appointment   *AppointmentSummary    `json:"appointment,omitempty"`
	AppointmentID *string                `json:"appointmentId,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// ToSlot конвертирует опциональную метку слота
func (r *SelectDateTimeRequest) ToSlot() *types.TimeString {
	if r.Slot == nil {
		return nil
	}
	return ptr.Ptr(types.TimeString(*r.Slot))
}

// FromSessionView конвертирует ответ use case в HTTP модель
func FromSessionView(view *bookingFlow.SessionView) *SessionResponse {
	sess := view.Session
	resp := &SessionResponse{
		ID:            sess.ID,
		State:         string(sess.State),
		ServiceID:     sess.ServiceID,
		AppointmentID: sess.AppointmentID,
		CreatedAt:     sess.CreatedAt,
		UpdatedAt:     sess.UpdatedAt,
	}

	if sess.Date != nil {
		resp.Date = ptr.Ptr(sess.Date.Format(domain.DateFormat))
	}
	if sess.Slot != nil {
		resp.Slot = ptr.Ptr(sess.Slot.String())
	}

	if view.Service != nil {
		resp.Service = &ServiceSummary{
			ID:              view.Service.ID,
			Name:            view.Service.Name,
			Price:           view.Service.Price,
			DurationMinutes: view.Service.DurationMinutes,
		}
	}
	if view.Professional != nil {
		resp.Professional = &ProfessionalSummary{
			ID:       view.Professional.ID,
			Name:     view.Professional.Name,
			PhotoURL: view.Professional.PhotoURL,
		}
	}
	if len(view.Professionals) > 0 {
		out := make([]*ProfessionalSummary, 0, len(view.Professionals))
		for _, prof := range view.Professionals {
			out = append(out, &ProfessionalSummary{
				ID:       prof.ID,
				Name:     prof.Name,
				PhotoURL: prof.PhotoURL,
			})
		}
		resp.Professionals = out
	}
	if view.Payment != nil {
		resp.Payment = &PaymentInfo{
			PixKey:    view.Payment.PixKey,
			PixQRCode: view.Payment.PixQRCode,
		}
	}
	if view.Appointment != nil {
		resp.Appointment = &AppointmentSummary{
			ID:        view.Appointment.ID,
			Date:      view.Appointment.Date.Format(domain.DateFormat),
			StartTime: view.Appointment.StartTime.String(),
			Status:    string(view.Appointment.Status),
			Price:     view.Appointment.Price,
		}
	}

	return resp
}

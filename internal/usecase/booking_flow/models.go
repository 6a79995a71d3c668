package booking_flow

import (
	"time"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/pkg/types"
)

// SelectServiceRequest запрос выбора услуги
type SelectServiceRequest struct {
	SessionID string
	ServiceID string
}

// SelectProfessionalRequest запрос выбора мастера
type SelectProfessionalRequest struct {
	SessionID      string
	ProfessionalID string
}

// SelectDateTimeRequest запрос выбора даты и времени.
// Slot может отсутствовать: выбор только даты сбрасывает ранее выбранный слот.
type SelectDateTimeRequest struct {
	SessionID string
	Date      time.Time
	Slot      *types.TimeString
}

// ConfirmRequest запрос подтверждения бронирования
type ConfirmRequest struct {
	SessionID     string
	ClientName    string
	ClientContact string
}

// PaymentInfo платёжные реквизиты выбранной услуги
type PaymentInfo struct {
	PixKey    *string
	PixQRCode *string
}

// SessionView состояние сессии бронирования вместе с контекстными данными шага
type SessionView struct {
	Session       *domain.BookingSession
	Service       *domain.Service
	Professional  *domain.Professional
	Professionals []*domain.Professional
	Payment       *PaymentInfo
	Appointment   *domain.Appointment
}

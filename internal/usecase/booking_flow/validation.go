package booking_flow

import (
	"fmt"
	"strings"
	"time"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/pkg/types"
)

func validateSelectService(req *SelectServiceRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.SessionID == "" {
		return fmt.Errorf("%w: session id is empty", ErrInvalidInput)
	}
	if req.ServiceID == "" {
		return fmt.Errorf("%w: service id is empty", ErrInvalidInput)
	}
	return nil
}

func validateSelectProfessional(req *SelectProfessionalRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.SessionID == "" {
		return fmt.Errorf("%w: session id is empty", ErrInvalidInput)
	}
	if req.ProfessionalID == "" {
		return fmt.Errorf("%w: professional id is empty", ErrInvalidInput)
	}
	return nil
}

func validateSelectDateTime(req *SelectDateTimeRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.SessionID == "" {
		return fmt.Errorf("%w: session id is empty", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is empty", ErrInvalidInput)
	}
	if req.Slot != nil {
		if err := req.Slot.Validate(); err != nil {
			return fmt.Errorf("%w: slot: %v", ErrInvalidInput, err)
		}
	}
	return nil
}

func validateConfirm(req *ConfirmRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.SessionID == "" {
		return fmt.Errorf("%w: session id is empty", ErrInvalidInput)
	}
	name := strings.TrimSpace(req.ClientName)
	contact := strings.TrimSpace(req.ClientContact)
	if name == "" || contact == "" {
		return ErrMissingClientInfo
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: client name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if len(contact) > domain.MaxContactLength {
		return fmt.Errorf("%w: client contact exceeds %d characters", ErrInvalidInput, domain.MaxContactLength)
	}
	return nil
}

func normalizeClientInfo(name, contact string) (string, string) {
	return strings.TrimSpace(name), strings.TrimSpace(contact)
}

// isDateBookable проверяет, что дата попадает в окно записи и день недели открыт.
// Дата запроса может прийти в другой временной зоне (например, UTC после
// time.Parse), поэтому сравниваются календарные компоненты в зоне салона.
func isDateBookable(availability []domain.DayAvailability, horizonDays int, today, date time.Time) bool {
	todayDay := truncateToDay(today)
	target := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, todayDay.Location())

	if target.Before(todayDay) {
		return false
	}
	last := todayDay.AddDate(0, 0, horizonDays-1)
	if target.After(last) {
		return false
	}

	day := domain.FindDayForDate(availability, target)
	return day != nil && day.HasBookableSlots()
}

// isSlotFree проверяет, что слот есть в шаблоне дня и не занят другой записью
func isSlotFree(
	availability []domain.DayAvailability,
	appointments []*domain.Appointment,
	professionalID string,
	date time.Time,
	slot types.TimeString,
) bool {
	day := domain.FindDayForDate(availability, date)
	if day == nil || !day.Enabled || !day.ContainsSlot(slot) {
		return false
	}
	for _, appt := range appointments {
		if appt.ProfessionalID != professionalID || !appt.HoldsSlot() {
			continue
		}
		if isSameDay(appt.Date, date) && appt.StartTime == slot {
			return false
		}
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

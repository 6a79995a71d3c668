package get_free_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/pkg/types"
)

const (
	anaID   = "b2f7c0e4-5d1a-4f5b-9c2e-111111111111"
	brunoID = "b2f7c0e4-5d1a-4f5b-9c2e-222222222222"
)

// 2026-03-09 — понедельник
var monday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func mondayTemplate(slots ...types.TimeString) []domain.DayAvailability {
	week := make([]domain.DayAvailability, 0, domain.DaysPerWeek)
	for d := 0; d < domain.DaysPerWeek; d++ {
		day := domain.DayAvailability{DayOfWeek: d}
		if d == 1 {
			day.Enabled = true
			day.Slots = slots
		}
		week = append(week, day)
	}
	return week
}

func appt(professionalID string, date time.Time, slot types.TimeString, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:             "a-" + string(slot),
		ProfessionalID: professionalID,
		ServiceID:      "svc-1",
		Date:           date,
		StartTime:      slot,
		Status:         status,
	}
}

func TestFreeSlots_NoAppointments(t *testing.T) {
	availability := mondayTemplate("09:00", "09:30", "10:00")

	free := FreeSlots(anaID, monday, availability, nil)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, free)
}

func TestFreeSlots_ConfirmedAppointmentExcluded(t *testing.T) {
	availability := mondayTemplate("09:00", "09:30", "10:00")
	appointments := []*domain.Appointment{
		appt(anaID, monday, "09:30", domain.StatusConfirmed),
	}

	free := FreeSlots(anaID, monday, availability, appointments)
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, free)
}

func TestFreeSlots_PendingAppointmentHoldsSlot(t *testing.T) {
	availability := mondayTemplate("09:00", "09:30", "10:00")
	appointments := []*domain.Appointment{
		appt(anaID, monday, "09:00", domain.StatusPending),
	}

	free := FreeSlots(anaID, monday, availability, appointments)
	assert.Equal(t, []types.TimeString{"09:30", "10:00"}, free)
}

func TestFreeSlots_RejectedAppointmentFreesSlot(t *testing.T) {
	availability := mondayTemplate("09:00", "09:30", "10:00")
	appointments := []*domain.Appointment{
		appt(anaID, monday, "09:30", domain.StatusRejected),
	}

	free := FreeSlots(anaID, monday, availability, appointments)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, free)
}

func TestFreeSlots_OtherProfessionalDoesNotBlock(t *testing.T) {
	availability := mondayTemplate("09:00", "09:30")
	appointments := []*domain.Appointment{
		appt(brunoID, monday, "09:00", domain.StatusConfirmed),
	}

	free := FreeSlots(anaID, monday, availability, appointments)
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, free)
}

func TestFreeSlots_OtherDateDoesNotBlock(t *testing.T) {
	availability := mondayTemplate("09:00", "09:30")
	nextMonday := monday.AddDate(0, 0, 7)
	appointments := []*domain.Appointment{
		appt(anaID, nextMonday, "09:00", domain.StatusConfirmed),
	}

	free := FreeSlots(anaID, monday, availability, appointments)
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, free)
}

func TestFreeSlots_DisabledDayGivesEmpty(t *testing.T) {
	availability := mondayTemplate("09:00", "09:30")
	availability[1].Enabled = false

	free := FreeSlots(anaID, monday, availability, nil)
	assert.Empty(t, free)
}

func TestFreeSlots_MissingTemplateGivesEmpty(t *testing.T) {
	free := FreeSlots(anaID, monday, nil, nil)
	assert.Empty(t, free)
}

func TestFreeSlots_AllSlotsTakenGivesEmpty(t *testing.T) {
	availability := mondayTemplate("09:00", "09:30")
	appointments := []*domain.Appointment{
		appt(anaID, monday, "09:00", domain.StatusPending),
		appt(anaID, monday, "09:30", domain.StatusConfirmed),
	}

	free := FreeSlots(anaID, monday, availability, appointments)
	assert.Empty(t, free)
}

func TestFreeSlots_SubsetOfTemplateInTemplateOrder(t *testing.T) {
	availability := mondayTemplate("08:00", "09:00", "10:00", "11:00", "12:00")
	appointments := []*domain.Appointment{
		appt(anaID, monday, "09:00", domain.StatusConfirmed),
		appt(anaID, monday, "11:00", domain.StatusPending),
	}

	free := FreeSlots(anaID, monday, availability, appointments)
	assert.Equal(t, []types.TimeString{"08:00", "10:00", "12:00"}, free)
}

func TestFreeSlots_Idempotent(t *testing.T) {
	availability := mondayTemplate("09:00", "09:30", "10:00")
	appointments := []*domain.Appointment{
		appt(anaID, monday, "09:30", domain.StatusConfirmed),
	}

	first := FreeSlots(anaID, monday, availability, appointments)
	second := FreeSlots(anaID, monday, availability, appointments)
	assert.Equal(t, first, second)
}

package availability

import (
	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/pkg/types"
)

// UpdateDayRequest HTTP модель обновления одного дня недели
type UpdateDayRequest struct {
	Enabled bool     `json:"enabled"`
	Slots   []string `json:"slots"`
}

// DayResponse HTTP модель шаблона одного дня недели
type DayResponse struct {
	DayOfWeek int      `json:"dayOfWeek"`
	Enabled   bool     `json:"enabled"`
	Slots     []string `json:"slots"`
}

// WeekResponse HTTP модель недельного расписания
type WeekResponse struct {
	Days []DayResponse `json:"days"`
}

// ToSlots конвертирует метки слотов из HTTP запроса
func (r *UpdateDayRequest) ToSlots() []types.TimeString {
	slots := make([]types.TimeString, len(r.Slots))
	for i, s := range r.Slots {
		slots[i] = types.TimeString(s)
	}
	return slots
}

// FromDomainDay конвертирует доменную модель дня в HTTP модель
func FromDomainDay(day *domain.DayAvailability) DayResponse {
	slots := make([]string, len(day.Slots))
	for i, slot := range day.Slots {
		slots[i] = slot.String()
	}
	return DayResponse{
		DayOfWeek: day.DayOfWeek,
		Enabled:   day.Enabled,
		Slots:     slots,
	}
}

// FromDomainWeek конвертирует недельное расписание в HTTP модель
func FromDomainWeek(week []domain.DayAvailability) *WeekResponse {
	days := make([]DayResponse, 0, len(week))
	for i := range week {
		days = append(days, FromDomainDay(&week[i]))
	}
	return &WeekResponse{Days: days}
}

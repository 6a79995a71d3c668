package get_available_dates

import (
	"time"

	"github.com/geekpf/agenda2/internal/domain"
)

// BookableDates вычисляет даты, открытые для бронирования, в скользящем окне.
// Перебирает календарные даты от referenceDate (включительно) вперед на
// horizonDays дней. Дата попадает в результат, только если шаблон её дня
// недели включен и содержит хотя бы один слот.
//
// Гарантии:
// - результат хронологический, без дубликатов, длиной <= horizonDays
// - horizonDays = 0 дает пустой результат
// - отсутствующий шаблон дня недели означает "закрыто", а не ошибку
func BookableDates(
	availability []domain.DayAvailability,
	horizonDays int,
	referenceDate time.Time,
) []time.Time {
	dates := make([]time.Time, 0, horizonDays)

	// Обнуляем время, чтобы работать только с датами
	day := time.Date(
		referenceDate.Year(), referenceDate.Month(), referenceDate.Day(),
		0, 0, 0, 0, referenceDate.Location(),
	)

	for i := 0; i < horizonDays; i++ {
		template := domain.FindDayForDate(availability, day)
		if template != nil && template.HasBookableSlots() {
			dates = append(dates, day)
		}
		day = day.AddDate(0, 0, 1)
	}

	return dates
}

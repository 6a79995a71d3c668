package get_free_slots

import (
	"time"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/pkg/types"
)

// FreeSlots вычисляет свободные слоты мастера на конкретную дату.
//
// Алгоритм:
//  1. Находим шаблон дня недели. Отсутствующий или выключенный шаблон
//     дает пустой результат (не ошибку).
//  2. Собираем занятые слоты: время каждой записи этого мастера на эту
//     дату, чей статус удерживает слот (отклоненные записи слот освобождают).
//  3. Возвращаем слоты шаблона без занятых, сохраняя порядок шаблона.
//
// Гарантии: каждый слот встречается не более одного раза, результат -
// подмножество слотов шаблона, и в нем нет слота, занятого неотклоненной
// записью. Чистая функция: два вызова с одинаковыми входами дают
// одинаковый результат.
func FreeSlots(
	professionalID string,
	date time.Time,
	availability []domain.DayAvailability,
	appointments []*domain.Appointment,
) []types.TimeString {
	template := domain.FindDayForDate(availability, date)
	if template == nil || !template.HasBookableSlots() {
		return []types.TimeString{}
	}

	booked := bookedSlots(professionalID, date, appointments)

	free := make([]types.TimeString, 0, len(template.Slots))
	seen := make(map[types.TimeString]bool, len(template.Slots))

	for _, slot := range template.Slots {
		if booked[slot] || seen[slot] {
			continue
		}
		seen[slot] = true
		free = append(free, slot)
	}

	return free
}

// bookedSlots собирает множество занятых слотов мастера на дату
func bookedSlots(
	professionalID string,
	date time.Time,
	appointments []*domain.Appointment,
) map[types.TimeString]bool {
	booked := make(map[types.TimeString]bool)

	for _, appt := range appointments {
		if appt.ProfessionalID != professionalID {
			continue
		}
		if !isSameDay(appt.Date, date) {
			continue
		}
		if !appt.HoldsSlot() {
			continue
		}
		booked[appt.StartTime] = true
	}

	return booked
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

package get_available_dates

import "time"

// Request модель запроса на получение доступных дат
type Request struct {
	ProfessionalID string // ID мастера
}

// Response модель ответа со списком доступных дат
type Response struct {
	ProfessionalID string      // ID мастера
	ReferenceDate  time.Time   // "Сегодня" в фиксированном смещении
	HorizonDays    int         // Длина скользящего окна в днях
	Dates          []time.Time // Даты по возрастанию, без дубликатов
}

package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default configuration values
const (
	DefaultHorizonDays = 30      // rolling booking window
	DefaultUTCOffset   = "-03:00" // fixed local offset for date interpretation
)

// Calendar constants
const DaysPerWeek = 7

// Business validation constants
const (
	MaxNameLength    = 200
	MaxContactLength = 200
	MinDurationMinutes = 1
	MaxDurationMinutes = 480 // 8 hours
	MaxHorizonDays     = 365
)

// SlotHoldingStatuses список статусов, при которых запись удерживает свой слот
// Используется при фильтрации занятых слотов
var SlotHoldingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

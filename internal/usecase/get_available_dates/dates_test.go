package get_available_dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/pkg/types"
)

func weekdaysTemplate(enabled map[int][]types.TimeString) []domain.DayAvailability {
	week := make([]domain.DayAvailability, 0, domain.DaysPerWeek)
	for d := 0; d < domain.DaysPerWeek; d++ {
		slots, ok := enabled[d]
		week = append(week, domain.DayAvailability{
			DayOfWeek: d,
			Enabled:   ok,
			Slots:     slots,
		})
	}
	return week
}

func TestBookableDates_WithinHorizon(t *testing.T) {
	// Понедельник и среда открыты; окно 30 дней
	availability := weekdaysTemplate(map[int][]types.TimeString{
		1: {"09:00", "09:30"},
		3: {"14:00"},
	})

	// 2026-03-09 — понедельник
	reference := time.Date(2026, 3, 9, 15, 42, 0, 0, time.UTC)
	dates := BookableDates(availability, 30, reference)

	require.NotEmpty(t, dates)
	for _, d := range dates {
		weekday := int(d.Weekday())
		assert.Contains(t, []int{1, 3}, weekday, "date %s has unexpected weekday", d)

		// Дата внутри окна [reference, reference+30)
		assert.False(t, d.Before(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)))
		assert.True(t, d.Before(time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)))

		// Время обнулено
		assert.Equal(t, 0, d.Hour())
		assert.Equal(t, 0, d.Minute())
	}

	// 30 дней покрывают ровно 9 понедельников и сред: 5 пн + 4 ср
	assert.Len(t, dates, 9)

	// Первая дата — сам reference-день (понедельник открыт)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), dates[0])
}

func TestBookableDates_StrictlyAscendingNoDuplicates(t *testing.T) {
	availability := weekdaysTemplate(map[int][]types.TimeString{
		0: {"10:00"}, 1: {"10:00"}, 2: {"10:00"}, 3: {"10:00"},
		4: {"10:00"}, 5: {"10:00"}, 6: {"10:00"},
	})

	reference := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	dates := BookableDates(availability, 30, reference)

	require.Len(t, dates, 30)
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i-1].Before(dates[i]), "dates must be strictly ascending")
	}
}

func TestBookableDates_DisabledDayExcluded(t *testing.T) {
	// Вторник хранит слоты, но выключен: его даты не попадают в результат
	availability := weekdaysTemplate(map[int][]types.TimeString{
		1: {"09:00"},
	})
	availability[2].Slots = []types.TimeString{"09:00", "10:00"}
	availability[2].Enabled = false

	reference := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	dates := BookableDates(availability, 30, reference)

	for _, d := range dates {
		assert.NotEqual(t, time.Tuesday, d.Weekday())
	}
}

func TestBookableDates_EnabledDayWithoutSlotsExcluded(t *testing.T) {
	availability := weekdaysTemplate(map[int][]types.TimeString{
		1: {},
	})

	reference := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	dates := BookableDates(availability, 30, reference)
	assert.Empty(t, dates)
}

func TestBookableDates_ZeroHorizon(t *testing.T) {
	availability := weekdaysTemplate(map[int][]types.TimeString{
		1: {"09:00"},
	})

	reference := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	dates := BookableDates(availability, 0, reference)
	assert.Empty(t, dates)
}

func TestBookableDates_AllDaysClosed(t *testing.T) {
	availability := weekdaysTemplate(map[int][]types.TimeString{})

	reference := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	dates := BookableDates(availability, 30, reference)
	assert.Empty(t, dates)
}

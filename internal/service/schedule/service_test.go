package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAvailabilityRepo struct {
	week    map[int]domain.DayAvailability
	updated []domain.DayAvailability
}

func (r *fakeAvailabilityRepo) GetAll(_ context.Context) ([]domain.DayAvailability, error) {
	out := make([]domain.DayAvailability, 0, domain.DaysPerWeek)
	for d := 0; d < domain.DaysPerWeek; d++ {
		out = append(out, r.week[d])
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) UpdateDay(_ context.Context, day domain.DayAvailability) error {
	r.week[day.DayOfWeek] = day
	r.updated = append(r.updated, day)
	return nil
}

func newFixture() (*Service, *fakeAvailabilityRepo) {
	repo := &fakeAvailabilityRepo{week: map[int]domain.DayAvailability{}}
	for d := 0; d < domain.DaysPerWeek; d++ {
		repo.week[d] = domain.DayAvailability{DayOfWeek: d}
	}
	return NewService(repo, nopLogger{}), repo
}

func TestUpdateDay_SortsAndDeduplicates(t *testing.T) {
	svc, repo := newFixture()

	day, err := svc.UpdateDay(context.Background(), 1, true, []types.TimeString{
		"10:00", "09:00", "10:00", "09:30",
	})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, day.Slots)
	assert.True(t, day.Enabled)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, repo.updated[0].Slots)
}

func TestUpdateDay_EmptySlots(t *testing.T) {
	svc, _ := newFixture()

	day, err := svc.UpdateDay(context.Background(), 2, true, nil)
	require.NoError(t, err)
	assert.Empty(t, day.Slots)
}

func TestUpdateDay_InvalidDayOfWeek(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.UpdateDay(context.Background(), 7, true, nil)
	assert.ErrorIs(t, err, ErrInvalidDayOfWeek)

	_, err = svc.UpdateDay(context.Background(), -1, true, nil)
	assert.ErrorIs(t, err, ErrInvalidDayOfWeek)
}

func TestUpdateDay_InvalidSlotLabel(t *testing.T) {
	svc, _ := newFixture()

	tests := []types.TimeString{"9:00", "24:00", "09:60", "ab:cd", ""}
	for _, slot := range tests {
		_, err := svc.UpdateDay(context.Background(), 1, true, []types.TimeString{slot})
		assert.ErrorIs(t, err, ErrInvalidSlot, "slot %q must be rejected", slot)
	}
}

func TestGetWeek(t *testing.T) {
	svc, repo := newFixture()
	repo.week[1] = domain.DayAvailability{
		DayOfWeek: 1,
		Enabled:   true,
		Slots:     []types.TimeString{"09:00"},
	}

	week, err := svc.GetWeek(context.Background())
	require.NoError(t, err)
	require.Len(t, week, domain.DaysPerWeek)
	assert.True(t, week[1].Enabled)
}

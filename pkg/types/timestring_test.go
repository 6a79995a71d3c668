package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 9, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid last minute", input: "23:59", want: "23:59"},
		{name: "missing zero padding", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "12:60", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "with seconds", input: "09:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	// Лексикографический порядок меток совпадает с хронологическим
	a := TimeString("09:00")
	b := TimeString("09:30")
	c := TimeString("10:00")

	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsBefore(c))
	assert.True(t, c.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestTimeString_Minutes(t *testing.T) {
	got, err := TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = TimeString("09:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, got)

	got, err = TimeString("23:59").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1439, got)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), got)

	_, err = TimeString("23:30").AddMinutes(120)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("01:00").AddMinutes(-120)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_IsZero(t *testing.T) {
	var empty TimeString
	assert.True(t, empty.IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}

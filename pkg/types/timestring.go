package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString represents a time-of-day value in zero-padded 24-hour "HH:MM" form.
// The format guarantees that lexicographic order equals chronological order,
// so values can be compared and sorted as plain strings.
type TimeString string

const timeStringLayout = "15:04"

// ErrInvalidTimeString is returned for values that are not zero-padded "HH:MM".
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// NewTimeString builds a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString parses and validates a "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a zero-padded 24-hour "HH:MM" string.
func (ts TimeString) Validate() error {
	if len(ts) != 5 || ts[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	parsed, err := time.Parse(timeStringLayout, string(ts))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	// time.Parse accepts some non-canonical forms; require exact round-trip.
	if parsed.Format(timeStringLayout) != string(ts) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String returns the raw "HH:MM" value.
func (ts TimeString) String() string {
	return string(ts)
}

// IsBefore reports whether ts is strictly earlier than other.
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter reports whether ts is strictly later than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// Minutes returns the value as minutes since midnight.
func (ts TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeStringLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the value shifted forward by n minutes.
// The result is clamped to the same day: shifting past midnight is an error.
func (ts TimeString) AddMinutes(n int) (TimeString, error) {
	total, err := ts.Minutes()
	if err != nil {
		return "", err
	}
	total += n
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q+%dm is outside the day", ErrInvalidTimeString, string(ts), n)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

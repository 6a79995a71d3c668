package schedule

import "errors"

var (
	ErrInvalidDayOfWeek = errors.New("schedule: day of week must be between 0 and 6")
	ErrInvalidSlot      = errors.New("schedule: invalid slot label")
	ErrInternal         = errors.New("schedule: internal error")
)

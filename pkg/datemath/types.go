package datemath

import (
	"errors"
	"time"
)

// DayLayout is the canonical day key format used by the deals store.
const DayLayout = "2006-01-02"

var (
	ErrInvalidDuration = errors.New("datemath: invalid duration")
	ErrUnknownWeekday  = errors.New("datemath: unknown weekday")
	ErrUnknownDay      = errors.New("datemath: unrecognized day expression")
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

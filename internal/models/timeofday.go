package models

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay bounds a TimeOfDay value.
const MinutesPerDay = 24 * 60

// TimeUnset is the sentinel for schedule fields that legitimately carry no
// time, such as the "end of day" marker in availability rows. It formats as
// an empty string instead of failing.
const TimeUnset TimeOfDay = -1

// TimeOfDay is a minute-of-day integer in [0, 1440).
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" into minutes since midnight.
// Seconds are accepted and discarded; the grid never needs sub-minute
// resolution.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("malformed time %q: want HH:MM or HH:MM:SS", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: non-numeric hour", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: non-numeric minute", s)
	}
	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, fmt.Errorf("malformed time %q: non-numeric second", s)
		}
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("malformed time %q: hour out of range", s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("malformed time %q: minute out of range", s)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// Valid reports whether the value lies within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// String returns the 24-hour "HH:MM" form.
func (t TimeOfDay) String() string {
	if !t.Valid() {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// TwelveHour returns the "h:mm AM/PM" display form. Unset or out-of-range
// values render as an empty string.
func (t TimeOfDay) TwelveHour() string {
	if !t.Valid() {
		return ""
	}
	hour := t.Hour()
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, t.Minute(), meridiem)
}

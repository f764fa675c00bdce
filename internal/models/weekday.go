package models

import (
	"fmt"
	"strings"
	"time"
)

// Weekday identifies a day of the academic week. The canonical order starts
// at Sunday, matching the university calendar.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DaysInWeek is the number of weekdays in the canonical ordering.
const DaysInWeek = 7

var weekdayNames = [DaysInWeek]string{
	"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY",
}

// AllWeekdays returns the canonical week ordering.
func AllWeekdays() [DaysInWeek]Weekday {
	return [DaysInWeek]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// Valid reports whether the weekday is one of the seven canonical values.
func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// String returns the uppercase day name.
func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("WEEKDAY(%d)", int(d))
	}
	return weekdayNames[d]
}

// MarshalJSON encodes the weekday as its uppercase name.
func (d Weekday) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid weekday %d", int(d))
	}
	return []byte(`"` + weekdayNames[d] + `"`), nil
}

// UnmarshalJSON decodes an uppercase or mixed-case day name.
func (d *Weekday) UnmarshalJSON(data []byte) error {
	name := strings.Trim(string(data), `"`)
	parsed, err := ParseWeekday(name)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseWeekday converts a day name into a Weekday. Matching is
// case-insensitive.
func ParseWeekday(name string) (Weekday, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, candidate := range weekdayNames {
		if candidate == upper {
			return Weekday(i), nil
		}
	}
	return Sunday, fmt.Errorf("unknown weekday %q", name)
}

// WeekdayOf maps a time.Weekday onto the canonical ordering.
func WeekdayOf(d time.Weekday) Weekday {
	return Weekday(int(d))
}

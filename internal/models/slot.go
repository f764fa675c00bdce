package models

import (
	"fmt"
	"strings"
)

// TimeSlot is one fixed institutional period in the daily grid.
type TimeSlot struct {
	ID    int       `json:"id"`
	Start TimeOfDay `json:"start_minute"`
	End   TimeOfDay `json:"end_minute"`
}

// Display returns the 12-hour range shown in grid headers.
func (s TimeSlot) Display() string {
	return s.Start.TwelveHour() + " - " + s.End.TwelveHour()
}

// SlotTable is the ordered, non-overlapping list of daily periods every grid
// is laid out against. It is built once at startup and never mutated.
type SlotTable []TimeSlot

// NewSlotTable validates and numbers a list of periods. Periods must be
// sorted ascending, non-overlapping, and each must satisfy start < end.
func NewSlotTable(periods []TimeSlot) (SlotTable, error) {
	if len(periods) == 0 {
		return nil, fmt.Errorf("slot table must contain at least one period")
	}
	table := make(SlotTable, len(periods))
	for i, p := range periods {
		if !p.Start.Valid() || !p.End.Valid() || p.Start >= p.End {
			return nil, fmt.Errorf("slot %d has invalid range %s-%s", i, p.Start, p.End)
		}
		if i > 0 && p.Start < table[i-1].End {
			return nil, fmt.Errorf("slot %d overlaps or precedes slot %d", i, i-1)
		}
		table[i] = TimeSlot{ID: i, Start: p.Start, End: p.End}
	}
	return table, nil
}

// ParseSlotTable builds a table from "HH:MM-HH:MM" ranges, the form the
// configuration layer supplies.
func ParseSlotTable(ranges []string) (SlotTable, error) {
	periods := make([]TimeSlot, 0, len(ranges))
	for _, r := range ranges {
		bounds := strings.SplitN(strings.TrimSpace(r), "-", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("malformed slot range %q: want HH:MM-HH:MM", r)
		}
		start, err := ParseTimeOfDay(bounds[0])
		if err != nil {
			return nil, fmt.Errorf("slot range %q: %w", r, err)
		}
		end, err := ParseTimeOfDay(bounds[1])
		if err != nil {
			return nil, fmt.Errorf("slot range %q: %w", r, err)
		}
		periods = append(periods, TimeSlot{Start: start, End: end})
	}
	return NewSlotTable(periods)
}

// DefaultSlotTable returns the standard seven 80-minute periods with
// ten-minute gaps.
func DefaultSlotTable() SlotTable {
	table, err := ParseSlotTable([]string{
		"08:00-09:20",
		"09:30-10:50",
		"11:00-12:20",
		"12:30-13:50",
		"14:00-15:20",
		"15:30-16:50",
		"17:00-18:20",
	})
	if err != nil {
		panic(err) // static data, cannot fail
	}
	return table
}

// IndexAt returns the slot whose [start, end) range contains the minute.
func (t SlotTable) IndexAt(minute TimeOfDay) (int, bool) {
	for i, slot := range t {
		if minute >= slot.Start && minute < slot.End {
			return i, true
		}
	}
	return 0, false
}

// IndexStartingAt returns the slot whose start exactly equals the minute.
// Grid placement only accepts boundary-aligned blocks.
func (t SlotTable) IndexStartingAt(minute TimeOfDay) (int, bool) {
	for i, slot := range t {
		if slot.Start == minute {
			return i, true
		}
		if slot.Start > minute {
			break
		}
	}
	return 0, false
}

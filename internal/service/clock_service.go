package service

import (
	"sort"
	"time"

	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
)

// ClockService reads the wall clock in the institution's timezone. Snapshot
// is the only impure primitive in the composition pipeline: every other stage
// takes the snapshot as an argument, so recomputing "current" and "next"
// annotations is a caller-driven, pure operation.
type ClockService struct {
	location *time.Location
	now      func() time.Time
}

// NewClockService resolves the IANA timezone once at startup. The now
// function is replaceable in tests.
func NewClockService(timezone string) (*ClockService, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &ClockService{location: loc, now: time.Now}, nil
}

// WithNow returns a copy of the service with a fixed clock source.
func (s *ClockService) WithNow(now func() time.Time) *ClockService {
	return &ClockService{location: s.location, now: now}
}

// Snapshot returns the current weekday and minute-of-day in the configured
// timezone.
func (s *ClockService) Snapshot() models.TemporalSnapshot {
	t := s.now().In(s.location)
	return models.TemporalSnapshot{
		Day:    models.WeekdayOf(t.Weekday()),
		Minute: models.TimeOfDay(t.Hour()*60 + t.Minute()),
	}
}

// isCurrent reports whether the snapshot minute falls inside the block's
// range on the block's own day.
func isCurrent(b models.ScheduleBlock, snap models.TemporalSnapshot) bool {
	return b.Day == snap.Day && b.Start <= snap.Minute && snap.Minute < b.End
}

// AnnotateCurrent returns a copy of the blocks with IsCurrent set on every
// block containing the snapshot minute. When a class and its lab overlap the
// snapshot, both are marked; collapsing to one is the notifier's job.
func AnnotateCurrent(blocks []models.ScheduleBlock, snap models.TemporalSnapshot) []models.ScheduleBlock {
	out := make([]models.ScheduleBlock, len(blocks))
	for i, b := range blocks {
		b.IsCurrent = isCurrent(b, snap)
		out[i] = b
	}
	return out
}

// CurrentBlocks returns every block the snapshot falls inside, ordered by
// start then course code so the first entry is a deterministic primary.
func CurrentBlocks(blocks []models.ScheduleBlock, snap models.TemporalSnapshot) []models.ScheduleBlock {
	var current []models.ScheduleBlock
	for _, b := range blocks {
		if isCurrent(b, snap) {
			b.IsCurrent = true
			current = append(current, b)
		}
	}
	sort.SliceStable(current, func(i, j int) bool {
		if current[i].Start != current[j].Start {
			return current[i].Start < current[j].Start
		}
		return current[i].CourseCode < current[j].CourseCode
	})
	return current
}

// NextBlock returns the upcoming block on the snapshot day with the smallest
// start strictly after the snapshot minute, ties broken by course code. Nil
// when the day has nothing left.
func NextBlock(blocks []models.ScheduleBlock, snap models.TemporalSnapshot) *models.ScheduleBlock {
	var next *models.ScheduleBlock
	for _, b := range blocks {
		if b.Day != snap.Day || b.Start <= snap.Minute {
			continue
		}
		if next == nil || b.Start < next.Start ||
			(b.Start == next.Start && b.CourseCode < next.CourseCode) {
			candidate := b
			next = &candidate
		}
	}
	return next
}

// DayOrder returns the days a view covers. Single-day scope yields just
// today; full-week scope yields the canonical week order. Today-first
// reshuffling is a presentation concern left to callers.
func DayOrder(scope models.ViewScope, today models.Weekday) []models.Weekday {
	if scope == models.ScopeSingleDay {
		return []models.Weekday{today}
	}
	all := models.AllWeekdays()
	return all[:]
}

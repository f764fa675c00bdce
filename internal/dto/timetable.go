package dto

import "github.com/sora-rara/bracu-student-hub-sub005/internal/models"

// DayView is one day's block list for list-style rendering.
type DayView struct {
	Day    models.Weekday         `json:"day"`
	Blocks []models.ScheduleBlock `json:"blocks"`
}

// TimetableView is the day-partitioned, conflict-annotated schedule.
type TimetableView struct {
	Scope        models.ViewScope        `json:"scope"`
	Days         []DayView               `json:"days"`
	Conflicts    []models.ConflictPair   `json:"conflicts,omitempty"`
	SkippedPicks []models.Pick           `json:"skipped_picks,omitempty"`
	Snapshot     models.TemporalSnapshot `json:"snapshot"`
}

// GridView is the fixed-slot weekly matrix for table-style rendering.
type GridView struct {
	Grid         models.WeekGrid         `json:"grid"`
	Conflicts    []models.ConflictPair   `json:"conflicts,omitempty"`
	SkippedPicks []models.Pick           `json:"skipped_picks,omitempty"`
	Snapshot     models.TemporalSnapshot `json:"snapshot"`
}

// NowView feeds the current/next-class banner. Current is the deterministic
// primary among Currents; when a class and its lab are both in progress, all
// of them appear in Currents.
type NowView struct {
	Current  *models.ScheduleBlock   `json:"current,omitempty"`
	Currents []models.ScheduleBlock  `json:"currents,omitempty"`
	Next     *models.ScheduleBlock   `json:"next,omitempty"`
	Snapshot models.TemporalSnapshot `json:"snapshot"`
}

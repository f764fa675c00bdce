package models

// TemporalSnapshot is a timezone-correct reading of the wall clock, taken by
// the caller and threaded through the annotator so every computation stays a
// pure function of its inputs.
type TemporalSnapshot struct {
	Day    Weekday   `json:"day"`
	Minute TimeOfDay `json:"minute"`
}

// ViewScope selects how many days a composed timetable covers.
type ViewScope string

const (
	ScopeSingleDay ViewScope = "DAY"
	ScopeFullWeek  ViewScope = "WEEK"
)

package models

import "fmt"

// BlockKind distinguishes theory meetings from lab meetings.
type BlockKind string

const (
	BlockClass BlockKind = "CLASS"
	BlockLab   BlockKind = "LAB"
)

// PlaceholderTBA fills room/faculty fields the catalog left blank.
const PlaceholderTBA = "TBA"

// ScheduleBlock is one weekly meeting occurrence of a picked section. Blocks
// are rebuilt from scratch on every composition pass and never persisted.
type ScheduleBlock struct {
	CourseCode  string    `json:"course_code"`
	SectionName string    `json:"section_name"`
	Kind        BlockKind `json:"kind"`
	Day         Weekday   `json:"day"`
	Start       TimeOfDay `json:"start_minute"`
	End         TimeOfDay `json:"end_minute"`
	Room        string    `json:"room"`
	Faculty     string    `json:"faculty"`
	Label       string    `json:"label"`
	Conflicted  bool      `json:"conflicted"`
	IsCurrent   bool      `json:"is_current"`
}

// BlockLabel derives the display label for a block.
func BlockLabel(courseCode, sectionName string, kind BlockKind) string {
	label := fmt.Sprintf("%s [%s]", courseCode, sectionName)
	if kind == BlockLab {
		label += " Lab"
	}
	return label
}

// TimeRange returns the 12-hour display range, e.g. "9:30 AM - 10:50 AM".
func (b ScheduleBlock) TimeRange() string {
	return b.Start.TwelveHour() + " - " + b.End.TwelveHour()
}

// Overlaps reports whether two blocks share the same day and intersect in
// time. Blocks on different days never overlap.
func (b ScheduleBlock) Overlaps(other ScheduleBlock) bool {
	if b.Day != other.Day {
		return false
	}
	return b.Start < other.End && other.Start < b.End
}

// identityKey pins down a block by code, section, kind and range so conflict
// pairs can be deduplicated regardless of discovery order.
func (b ScheduleBlock) identityKey() string {
	return fmt.Sprintf("%s|%s|%s|%d|%d", b.CourseCode, b.SectionName, b.Kind, b.Start, b.End)
}

// ConflictPair records one physical clash between two same-day blocks.
type ConflictPair struct {
	Day    Weekday       `json:"day"`
	First  ScheduleBlock `json:"first"`
	Second ScheduleBlock `json:"second"`
}

// Key returns the dedup key for the pair. The two block identities are
// ordered canonically so (A,B) and (B,A) collapse to one entry.
func (p ConflictPair) Key() string {
	a, b := p.First.identityKey(), p.Second.identityKey()
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%s|%s|%s", p.Day, a, b)
}

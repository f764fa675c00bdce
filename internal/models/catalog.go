package models

import "time"

// Pick is a student's chosen (course, section) combination for the term.
type Pick struct {
	CourseCode  string `db:"course_code" json:"course_code"`
	SectionName string `db:"section_name" json:"section_name"`
}

// SectionMeeting is one weekly meeting row as stored in the catalog. Times
// stay raw strings here; the resolver parses them so malformed catalog data
// surfaces as a typed error instead of being swallowed at scan time.
type SectionMeeting struct {
	Day       string `db:"day_of_week" json:"day_of_week"`
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time" json:"end_time"`
	Room      string `db:"room" json:"room"`
	Faculty   string `db:"faculty" json:"faculty"`
}

// SectionOffering is a catalog entry for one section of a course, with its
// class meetings and lab meetings.
type SectionOffering struct {
	CourseCode    string           `json:"course_code"`
	SectionName   string           `json:"section_name"`
	ClassMeetings []SectionMeeting `json:"class_meetings"`
	LabMeetings   []SectionMeeting `json:"lab_meetings"`
}

// CourseSummary is a catalog browser row.
type CourseSummary struct {
	CourseCode   string `db:"course_code" json:"course_code"`
	SectionName  string `db:"section_name" json:"section_name"`
	Faculty      string `db:"faculty" json:"faculty"`
	MeetingCount int    `db:"meeting_count" json:"meeting_count"`
}

// StudentPick is the persisted form of a pick, ordered by position.
type StudentPick struct {
	ID          string    `db:"id" json:"id"`
	StudentID   string    `db:"student_id" json:"student_id"`
	CourseCode  string    `db:"course_code" json:"course_code"`
	SectionName string    `db:"section_name" json:"section_name"`
	Position    int       `db:"position" json:"position"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Pick returns the engine-facing pick for a stored row.
func (p StudentPick) Pick() Pick {
	return Pick{CourseCode: p.CourseCode, SectionName: p.SectionName}
}

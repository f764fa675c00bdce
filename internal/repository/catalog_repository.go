package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
)

// CatalogRepository reads the course/section catalog the resolver joins
// picks against.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

type sectionRow struct {
	ID          string `db:"id"`
	CourseCode  string `db:"course_code"`
	SectionName string `db:"section_name"`
}

type meetingRow struct {
	Kind      string         `db:"kind"`
	DayOfWeek string         `db:"day_of_week"`
	StartTime string         `db:"start_time"`
	EndTime   string         `db:"end_time"`
	Room      sql.NullString `db:"room"`
	Faculty   sql.NullString `db:"faculty"`
}

// FindSection returns the offering for a (course, section) pair with its
// class and lab meetings, or nil when the catalog has no such section. The
// nil result is how the resolver learns a pick went stale.
func (r *CatalogRepository) FindSection(ctx context.Context, courseCode, sectionName string) (*models.SectionOffering, error) {
	var section sectionRow
	err := r.db.GetContext(ctx, &section,
		"SELECT id, course_code, section_name FROM sections WHERE course_code = $1 AND section_name = $2",
		courseCode, sectionName)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find section %s/%s: %w", courseCode, sectionName, err)
	}

	var meetings []meetingRow
	err = r.db.SelectContext(ctx, &meetings,
		"SELECT kind, day_of_week, start_time, end_time, room, faculty FROM section_meetings WHERE section_id = $1 ORDER BY kind, day_of_week, start_time",
		section.ID)
	if err != nil {
		return nil, fmt.Errorf("list meetings for section %s: %w", section.ID, err)
	}

	offering := &models.SectionOffering{
		CourseCode:  section.CourseCode,
		SectionName: section.SectionName,
	}
	for _, m := range meetings {
		meeting := models.SectionMeeting{
			Day:       m.DayOfWeek,
			StartTime: m.StartTime,
			EndTime:   m.EndTime,
			Room:      m.Room.String,
			Faculty:   m.Faculty.String,
		}
		if m.Kind == string(models.BlockLab) {
			offering.LabMeetings = append(offering.LabMeetings, meeting)
		} else {
			offering.ClassMeetings = append(offering.ClassMeetings, meeting)
		}
	}
	return offering, nil
}

// ListCourses returns catalog browser rows with optional course-code search.
func (r *CatalogRepository) ListCourses(ctx context.Context, search string, page, pageSize int) ([]models.CourseSummary, int, error) {
	base := "FROM sections s LEFT JOIN section_meetings m ON m.section_id = s.id"
	var args []interface{}
	where := ""
	if search != "" {
		where = " WHERE s.course_code ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := fmt.Sprintf(`SELECT s.course_code, s.section_name,
COALESCE(MAX(m.faculty), '') AS faculty,
COUNT(m.section_id) AS meeting_count
%s%s
GROUP BY s.course_code, s.section_name
ORDER BY s.course_code, s.section_name
LIMIT %d OFFSET %d`, base, where, pageSize, offset)

	var courses []models.CourseSummary
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list courses: %w", err)
	}

	countQuery := "SELECT COUNT(*) FROM sections s" + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count courses: %w", err)
	}

	return courses, total, nil
}

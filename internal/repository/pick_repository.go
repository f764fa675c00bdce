package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
)

// PickRepository persists a student's ordered section picks.
type PickRepository struct {
	db *sqlx.DB
}

// NewPickRepository creates a new pick repository.
func NewPickRepository(db *sqlx.DB) *PickRepository {
	return &PickRepository{db: db}
}

// ListByStudent returns the student's picks in their stored order.
func (r *PickRepository) ListByStudent(ctx context.Context, studentID string) ([]models.StudentPick, error) {
	var picks []models.StudentPick
	err := r.db.SelectContext(ctx, &picks,
		"SELECT id, student_id, course_code, section_name, position, created_at FROM student_picks WHERE student_id = $1 ORDER BY position",
		studentID)
	if err != nil {
		return nil, fmt.Errorf("list picks for %s: %w", studentID, err)
	}
	return picks, nil
}

// Replace swaps the student's pick list atomically. Pick order is preserved
// through the position column.
func (r *PickRepository) Replace(ctx context.Context, studentID string, picks []models.Pick) ([]models.StudentPick, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin replace picks: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM student_picks WHERE student_id = $1", studentID); err != nil {
		return nil, fmt.Errorf("clear picks for %s: %w", studentID, err)
	}

	now := time.Now().UTC()
	stored := make([]models.StudentPick, 0, len(picks))
	for i, p := range picks {
		row := models.StudentPick{
			ID:          uuid.NewString(),
			StudentID:   studentID,
			CourseCode:  p.CourseCode,
			SectionName: p.SectionName,
			Position:    i,
			CreatedAt:   now,
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO student_picks (id, student_id, course_code, section_name, position, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
			row.ID, row.StudentID, row.CourseCode, row.SectionName, row.Position, row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("insert pick %s/%s: %w", p.CourseCode, p.SectionName, err)
		}
		stored = append(stored, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit replace picks: %w", err)
	}
	return stored, nil
}

// Delete removes every pick for the student.
func (r *PickRepository) Delete(ctx context.Context, studentID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM student_picks WHERE student_id = $1", studentID); err != nil {
		return fmt.Errorf("delete picks for %s: %w", studentID, err)
	}
	return nil
}

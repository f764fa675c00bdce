package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
	appErrors "github.com/sora-rara/bracu-student-hub-sub005/pkg/errors"
)

type pickRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.StudentPick, error)
	Replace(ctx context.Context, studentID string, picks []models.Pick) ([]models.StudentPick, error)
	Delete(ctx context.Context, studentID string) error
}

type timetableInvalidator interface {
	InvalidateStudent(ctx context.Context, studentID string)
}

// PickItem is one (course, section) choice in a replace request.
type PickItem struct {
	CourseCode  string `json:"course_code" validate:"required"`
	SectionName string `json:"section_name" validate:"required"`
}

// ReplacePicksRequest swaps a student's whole pick list. Order is
// significant: it is the order the resolver walks. An empty list is a
// valid request and clears the picks.
type ReplacePicksRequest struct {
	Picks []PickItem `json:"picks" validate:"dive"`
}

// PickService manages a student's section picks.
type PickService struct {
	repo       pickRepository
	timetables timetableInvalidator
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewPickService instantiates PickService.
func NewPickService(repo pickRepository, timetables timetableInvalidator, validate *validator.Validate, logger *zap.Logger) *PickService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PickService{repo: repo, timetables: timetables, validator: validate, logger: logger}
}

// List returns the student's picks in stored order.
func (s *PickService) List(ctx context.Context, studentID string) ([]models.StudentPick, error) {
	picks, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list picks")
	}
	return picks, nil
}

// Replace swaps the pick list and drops the student's cached timetable.
func (s *PickService) Replace(ctx context.Context, studentID string, req ReplacePicksRequest) ([]models.StudentPick, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid picks payload")
	}

	picks := make([]models.Pick, 0, len(req.Picks))
	for _, item := range req.Picks {
		picks = append(picks, models.Pick{CourseCode: item.CourseCode, SectionName: item.SectionName})
	}

	stored, err := s.repo.Replace(ctx, studentID, picks)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to replace picks")
	}

	if s.timetables != nil {
		s.timetables.InvalidateStudent(ctx, studentID)
	}
	return stored, nil
}

// Clear removes every pick and the cached timetable.
func (s *PickService) Clear(ctx context.Context, studentID string) error {
	if err := s.repo.Delete(ctx, studentID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear picks")
	}
	if s.timetables != nil {
		s.timetables.InvalidateStudent(ctx, studentID)
	}
	return nil
}

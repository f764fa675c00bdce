package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
	appErrors "github.com/sora-rara/bracu-student-hub-sub005/pkg/errors"
)

type courseCatalogRepository interface {
	FindSection(ctx context.Context, courseCode, sectionName string) (*models.SectionOffering, error)
	ListCourses(ctx context.Context, search string, page, pageSize int) ([]models.CourseSummary, int, error)
}

// CourseListRequest describes query params for browsing the catalog.
type CourseListRequest struct {
	Search   string
	Page     int
	PageSize int
}

// CourseService exposes read-only catalog browsing.
type CourseService struct {
	repo   courseCatalogRepository
	logger *zap.Logger
}

// NewCourseService instantiates CourseService.
func NewCourseService(repo courseCatalogRepository, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, logger: logger}
}

// List returns catalog rows with pagination metadata.
func (s *CourseService) List(ctx context.Context, req CourseListRequest) ([]models.CourseSummary, *models.Pagination, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	size := req.PageSize
	if size <= 0 {
		size = 20
	}
	courses, total, err := s.repo.ListCourses(ctx, req.Search, page, size)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Get returns one section offering, or a not-found error.
func (s *CourseService) Get(ctx context.Context, courseCode, sectionName string) (*models.SectionOffering, error) {
	offering, err := s.repo.FindSection(ctx, courseCode, sectionName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load section")
	}
	if offering == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "section not found")
	}
	return offering, nil
}

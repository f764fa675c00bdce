package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
	appErrors "github.com/sora-rara/bracu-student-hub-sub005/pkg/errors"
)

type fakeCourseRepo struct {
	summaries []models.CourseSummary
	total     int
	offering  *models.SectionOffering
	err       error

	gotSearch string
	gotPage   int
	gotSize   int
}

func (f *fakeCourseRepo) FindSection(_ context.Context, _, _ string) (*models.SectionOffering, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.offering, nil
}

func (f *fakeCourseRepo) ListCourses(_ context.Context, search string, page, pageSize int) ([]models.CourseSummary, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	f.gotSearch, f.gotPage, f.gotSize = search, page, pageSize
	return f.summaries, f.total, nil
}

func TestCourseServiceListDefaultsPagination(t *testing.T) {
	repo := &fakeCourseRepo{
		summaries: []models.CourseSummary{{CourseCode: "CSE220", SectionName: "07"}},
		total:     41,
	}
	svc := NewCourseService(repo, nil)

	courses, page, err := svc.List(context.Background(), CourseListRequest{Search: "cse"})

	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "cse", repo.gotSearch)
	assert.Equal(t, 1, repo.gotPage)
	assert.Equal(t, 20, repo.gotSize)
	require.NotNil(t, page)
	assert.Equal(t, 41, page.TotalCount)
}

func TestCourseServiceGetNotFound(t *testing.T) {
	svc := NewCourseService(&fakeCourseRepo{}, nil)

	_, err := svc.Get(context.Background(), "CSE999", "01")

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestCourseServiceGetPropagatesRepoError(t *testing.T) {
	svc := NewCourseService(&fakeCourseRepo{err: errors.New("db down")}, nil)

	_, err := svc.Get(context.Background(), "CSE220", "07")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
	appErrors "github.com/sora-rara/bracu-student-hub-sub005/pkg/errors"
)

type fakeCatalogRepo struct {
	offerings map[string]*models.SectionOffering
	err       error
	calls     int
}

func (f *fakeCatalogRepo) FindSection(_ context.Context, courseCode, sectionName string) (*models.SectionOffering, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.offerings[courseCode+"|"+sectionName], nil
}

type fakePickStore struct {
	picks []models.StudentPick
	err   error
}

func (f *fakePickStore) ListByStudent(_ context.Context, _ string) ([]models.StudentPick, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.picks, nil
}

type fakeCacheRepo struct {
	entries map[string][]byte
	deleted []string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{entries: map[string][]byte{}}
}

func (f *fakeCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := f.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	return nil
}

func (f *fakeCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	f.deleted = append(f.deleted, pattern)
	for key := range f.entries {
		if key == pattern {
			delete(f.entries, key)
		}
	}
	return nil
}

func storedPick(studentID, courseCode, sectionName string, position int) models.StudentPick {
	return models.StudentPick{
		ID:          courseCode + "-" + sectionName,
		StudentID:   studentID,
		CourseCode:  courseCode,
		SectionName: sectionName,
		Position:    position,
	}
}

func offering(courseCode, sectionName string, class, lab []models.SectionMeeting) *models.SectionOffering {
	return &models.SectionOffering{
		CourseCode:    courseCode,
		SectionName:   sectionName,
		ClassMeetings: class,
		LabMeetings:   lab,
	}
}

func meeting(day, start, end, room, faculty string) models.SectionMeeting {
	return models.SectionMeeting{Day: day, StartTime: start, EndTime: end, Room: room, Faculty: faculty}
}

// Monday 10:00 in Dhaka.
func mondayMorningClock(t *testing.T) *ClockService {
	return fixedClock(t, time.Date(2025, time.March, 10, 4, 0, 0, 0, time.UTC))
}

func newTimetableService(t *testing.T, catalog *fakeCatalogRepo, picks *fakePickStore, cache *CacheService) *TimetableService {
	t.Helper()
	return NewTimetableService(catalog, picks, models.DefaultSlotTable(), mondayMorningClock(t), cache, NewMetricsService(), nil)
}

func TestResolveBlocksExpandsMeetingsIntoBlocks(t *testing.T) {
	catalog := &fakeCatalogRepo{offerings: map[string]*models.SectionOffering{
		"CSE220|07": offering("CSE220", "07",
			[]models.SectionMeeting{
				meeting("MONDAY", "09:30", "10:50", "UB20301", "TAS"),
				meeting("WEDNESDAY", "09:30", "10:50", "UB20301", "TAS"),
			},
			[]models.SectionMeeting{
				meeting("TUESDAY", "11:00", "13:50", "UB20504", ""),
			}),
	}}
	svc := newTimetableService(t, catalog, &fakePickStore{}, nil)

	blocks, skipped, err := svc.ResolveBlocks(context.Background(), []models.Pick{
		{CourseCode: "CSE220", SectionName: "07"},
	})

	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, blocks, 3)

	assert.Equal(t, "CSE220 [07]", blocks[0].Label)
	assert.Equal(t, models.Monday, blocks[0].Day)
	assert.Equal(t, models.TimeOfDay(570), blocks[0].Start)
	assert.Equal(t, models.TimeOfDay(650), blocks[0].End)
	assert.Equal(t, "UB20301", blocks[0].Room)

	lab := blocks[2]
	assert.Equal(t, models.BlockLab, lab.Kind)
	assert.Equal(t, "CSE220 [07] Lab", lab.Label)
	assert.Equal(t, models.PlaceholderTBA, lab.Faculty, "missing faculty falls back to TBA")
}

func TestResolveBlocksSkipsStalePicks(t *testing.T) {
	catalog := &fakeCatalogRepo{offerings: map[string]*models.SectionOffering{
		"CSE220|07": offering("CSE220", "07",
			[]models.SectionMeeting{meeting("MONDAY", "09:30", "10:50", "", "")}, nil),
	}}
	svc := newTimetableService(t, catalog, &fakePickStore{}, nil)

	blocks, skipped, err := svc.ResolveBlocks(context.Background(), []models.Pick{
		{CourseCode: "CSE220", SectionName: "07"},
		{CourseCode: "MAT110", SectionName: "12"},
	})

	require.NoError(t, err)
	assert.Len(t, blocks, 1)
	require.Len(t, skipped, 1)
	assert.Equal(t, "MAT110", skipped[0].CourseCode)
}

func TestResolveBlocksRejectsMalformedCatalogData(t *testing.T) {
	cases := []struct {
		name string
		row  models.SectionMeeting
		code string
	}{
		{"unknown day", meeting("FUNDAY", "09:30", "10:50", "", ""), appErrors.ErrInvalidMeeting.Code},
		{"bad start", meeting("MONDAY", "25:00", "10:50", "", ""), appErrors.ErrInvalidTimeFormat.Code},
		{"bad end", meeting("MONDAY", "09:30", "10:75", "", ""), appErrors.ErrInvalidTimeFormat.Code},
		{"inverted range", meeting("MONDAY", "10:50", "09:30", "", ""), appErrors.ErrInvalidMeeting.Code},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := &fakeCatalogRepo{offerings: map[string]*models.SectionOffering{
				"CSE220|07": offering("CSE220", "07", []models.SectionMeeting{tc.row}, nil),
			}}
			svc := newTimetableService(t, catalog, &fakePickStore{}, nil)

			_, _, err := svc.ResolveBlocks(context.Background(), []models.Pick{
				{CourseCode: "CSE220", SectionName: "07"},
			})

			require.Error(t, err)
			appErr := appErrors.FromError(err)
			assert.Equal(t, tc.code, appErr.Code)
		})
	}
}

func TestComposeEndToEnd(t *testing.T) {
	catalog := &fakeCatalogRepo{offerings: map[string]*models.SectionOffering{
		"CSE220|07": offering("CSE220", "07",
			[]models.SectionMeeting{meeting("MONDAY", "09:30", "10:50", "UB20301", "TAS")},
			[]models.SectionMeeting{meeting("MONDAY", "09:30", "12:20", "UB20504", "TAS")}),
		"MAT110|12": offering("MAT110", "12",
			[]models.SectionMeeting{meeting("TUESDAY", "08:00", "09:20", "UB10101", "MRH")}, nil),
	}}
	picks := &fakePickStore{picks: []models.StudentPick{
		storedPick("st-1", "CSE220", "07", 0),
		storedPick("st-1", "MAT110", "12", 1),
	}}
	svc := newTimetableService(t, catalog, picks, nil)

	view, err := svc.Compose(context.Background(), "st-1", models.ScopeFullWeek)
	require.NoError(t, err)

	assert.Equal(t, models.ScopeFullWeek, view.Scope)
	require.Len(t, view.Days, models.DaysInWeek)
	assert.Equal(t, models.Sunday, view.Days[0].Day)

	// Class and lab overlap on Monday.
	require.Len(t, view.Conflicts, 1)
	assert.Equal(t, models.Monday, view.Conflicts[0].Day)

	monday := view.Days[int(models.Monday)]
	require.Len(t, monday.Blocks, 2)
	for _, b := range monday.Blocks {
		assert.True(t, b.Conflicted)
		assert.True(t, b.IsCurrent, "10:00 falls inside both Monday blocks")
	}

	tuesday := view.Days[int(models.Tuesday)]
	require.Len(t, tuesday.Blocks, 1)
	assert.False(t, tuesday.Blocks[0].Conflicted)
	assert.False(t, tuesday.Blocks[0].IsCurrent)
}

func TestComposeSingleDayScope(t *testing.T) {
	catalog := &fakeCatalogRepo{offerings: map[string]*models.SectionOffering{
		"CSE220|07": offering("CSE220", "07",
			[]models.SectionMeeting{meeting("MONDAY", "09:30", "10:50", "", "")}, nil),
	}}
	picks := &fakePickStore{picks: []models.StudentPick{storedPick("st-1", "CSE220", "07", 0)}}
	svc := newTimetableService(t, catalog, picks, nil)

	view, err := svc.Compose(context.Background(), "st-1", models.ScopeSingleDay)
	require.NoError(t, err)

	require.Len(t, view.Days, 1)
	assert.Equal(t, models.Monday, view.Days[0].Day)
	assert.Equal(t, models.Monday, view.Snapshot.Day)
}

func TestComposeIsIdempotent(t *testing.T) {
	catalog := &fakeCatalogRepo{offerings: map[string]*models.SectionOffering{
		"CSE220|07": offering("CSE220", "07",
			[]models.SectionMeeting{meeting("MONDAY", "09:30", "10:50", "", "")},
			[]models.SectionMeeting{meeting("MONDAY", "09:30", "12:20", "", "")}),
	}}
	picks := &fakePickStore{picks: []models.StudentPick{storedPick("st-1", "CSE220", "07", 0)}}
	svc := newTimetableService(t, catalog, picks, nil)

	first, err := svc.Compose(context.Background(), "st-1", models.ScopeFullWeek)
	require.NoError(t, err)
	second, err := svc.Compose(context.Background(), "st-1", models.ScopeFullWeek)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComposeServesFromCache(t *testing.T) {
	catalog := &fakeCatalogRepo{offerings: map[string]*models.SectionOffering{
		"CSE220|07": offering("CSE220", "07",
			[]models.SectionMeeting{meeting("MONDAY", "09:30", "10:50", "", "")}, nil),
	}}
	picks := &fakePickStore{picks: []models.StudentPick{storedPick("st-1", "CSE220", "07", 0)}}

	repo := newFakeCacheRepo()
	cache := NewCacheService(repo, NewMetricsService(), time.Minute, nil, true)
	svc := newTimetableService(t, catalog, picks, cache)

	_, err := svc.Compose(context.Background(), "st-1", models.ScopeFullWeek)
	require.NoError(t, err)
	require.Contains(t, repo.entries, "timetable:v1:st-1")

	lookupsAfterMiss := catalog.calls
	view, err := svc.Compose(context.Background(), "st-1", models.ScopeFullWeek)
	require.NoError(t, err)
	assert.Equal(t, lookupsAfterMiss, catalog.calls, "cache hit must not touch the catalog")

	// Annotations are layered on after the cache read, so a cached entry
	// still reflects the caller's clock.
	monday := view.Days[int(models.Monday)]
	require.Len(t, monday.Blocks, 1)
	assert.True(t, monday.Blocks[0].IsCurrent)
}

func TestInvalidateStudentDropsCachedComposition(t *testing.T) {
	catalog := &fakeCatalogRepo{offerings: map[string]*models.SectionOffering{
		"CSE220|07": offering("CSE220", "07",
			[]models.SectionMeeting{meeting("MONDAY", "09:30", "10:50", "", "")}, nil),
	}}
	picks := &fakePickStore{picks: []models.StudentPick{storedPick("st-1", "CSE220", "07", 0)}}

	repo := newFakeCacheRepo()
	cache := NewCacheService(repo, NewMetricsService(), time.Minute, nil, true)
	svc := newTimetableService(t, catalog, picks, cache)

	_, err := svc.Compose(context.Background(), "st-1", models.ScopeFullWeek)
	require.NoError(t, err)

	svc.InvalidateStudent(context.Background(), "st-1")
	assert.NotContains(t, repo.entries, "timetable:v1:st-1")

	lookupsBefore := catalog.calls
	_, err = svc.Compose(context.Background(), "st-1", models.ScopeFullWeek)
	require.NoError(t, err)
	assert.Greater(t, catalog.calls, lookupsBefore, "invalidation forces a recompute")
}

func TestGridReportsUnalignedBlocks(t *testing.T) {
	catalog := &fakeCatalogRepo{offerings: map[string]*models.SectionOffering{
		"CSE220|07": offering("CSE220", "07",
			[]models.SectionMeeting{meeting("MONDAY", "09:35", "10:50", "", "")}, nil),
	}}
	picks := &fakePickStore{picks: []models.StudentPick{storedPick("st-1", "CSE220", "07", 0)}}
	svc := newTimetableService(t, catalog, picks, nil)

	view, err := svc.Grid(context.Background(), "st-1")
	require.NoError(t, err)

	require.Len(t, view.Grid.Unaligned, 1)
	assert.Equal(t, "CSE220", view.Grid.Unaligned[0].CourseCode)
}

func TestGridPlacesResolvedBlocks(t *testing.T) {
	catalog := &fakeCatalogRepo{offerings: map[string]*models.SectionOffering{
		"CSE220|07": offering("CSE220", "07",
			[]models.SectionMeeting{meeting("MONDAY", "09:30", "10:50", "", "")},
			[]models.SectionMeeting{meeting("MONDAY", "09:30", "12:20", "", "")}),
	}}
	picks := &fakePickStore{picks: []models.StudentPick{storedPick("st-1", "CSE220", "07", 0)}}
	svc := newTimetableService(t, catalog, picks, nil)

	view, err := svc.Grid(context.Background(), "st-1")
	require.NoError(t, err)

	cell := view.Grid.Days[models.Monday].Cells[1]
	require.Equal(t, models.CellBlockHead, cell.State)
	assert.Len(t, cell.Heads, 2)
	assert.Len(t, view.Conflicts, 1)
}

func TestNowBannerReportsAllCurrentsAndNext(t *testing.T) {
	catalog := &fakeCatalogRepo{offerings: map[string]*models.SectionOffering{
		"CSE220|07": offering("CSE220", "07",
			[]models.SectionMeeting{meeting("MONDAY", "09:30", "10:50", "", "")},
			[]models.SectionMeeting{meeting("MONDAY", "09:30", "12:20", "", "")}),
		"MAT110|12": offering("MAT110", "12",
			[]models.SectionMeeting{meeting("MONDAY", "11:00", "12:20", "", "")}, nil),
	}}
	picks := &fakePickStore{picks: []models.StudentPick{
		storedPick("st-1", "CSE220", "07", 0),
		storedPick("st-1", "MAT110", "12", 1),
	}}
	svc := newTimetableService(t, catalog, picks, nil)

	view, err := svc.NowBanner(context.Background(), "st-1")
	require.NoError(t, err)

	require.Len(t, view.Currents, 2)
	require.NotNil(t, view.Current)
	assert.Equal(t, models.BlockClass, view.Current.Kind, "resolver emits the class first; the stable sort keeps it primary")

	require.NotNil(t, view.Next)
	assert.Equal(t, "MAT110", view.Next.CourseCode)
}

func TestComposeSurfacesPickStoreFailure(t *testing.T) {
	picks := &fakePickStore{err: errors.New("connection refused")}
	svc := newTimetableService(t, &fakeCatalogRepo{}, picks, nil)

	_, err := svc.Compose(context.Background(), "st-1", models.ScopeFullWeek)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

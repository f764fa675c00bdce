package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sora-rara/bracu-student-hub-sub005/internal/dto"
	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
	appErrors "github.com/sora-rara/bracu-student-hub-sub005/pkg/errors"
)

type catalogRepository interface {
	FindSection(ctx context.Context, courseCode, sectionName string) (*models.SectionOffering, error)
}

type timetablePickRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.StudentPick, error)
}

// composition is the cacheable result of one Resolve -> Detect pass. It is
// snapshot-independent: current/next annotations are layered on after every
// fetch so a cached entry never pins the clock.
type composition struct {
	Blocks       []models.ScheduleBlock `json:"blocks"`
	Conflicts    []models.ConflictPair  `json:"conflicts"`
	SkippedPicks []models.Pick          `json:"skipped_picks"`
}

// TimetableService runs the composition pipeline: resolve picks into blocks,
// detect conflicts, lay out the grid, and annotate with the current time.
type TimetableService struct {
	catalog catalogRepository
	picks   timetablePickRepository
	slots   models.SlotTable
	clock   *ClockService
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
}

// NewTimetableService instantiates TimetableService.
func NewTimetableService(catalog catalogRepository, picks timetablePickRepository, slots models.SlotTable, clock *ClockService, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *TimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{
		catalog: catalog,
		picks:   picks,
		slots:   slots,
		clock:   clock,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// ResolveBlocks joins picks against the catalog and emits one block per
// weekly meeting. Picks the catalog no longer offers are skipped and
// returned so callers can warn the student; malformed catalog data is an
// error, not something to repair quietly.
func (s *TimetableService) ResolveBlocks(ctx context.Context, picks []models.Pick) ([]models.ScheduleBlock, []models.Pick, error) {
	var blocks []models.ScheduleBlock
	var skipped []models.Pick

	for _, pick := range picks {
		offering, err := s.catalog.FindSection(ctx, pick.CourseCode, pick.SectionName)
		if err != nil {
			return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up catalog section")
		}
		if offering == nil {
			skipped = append(skipped, pick)
			continue
		}
		for _, meeting := range offering.ClassMeetings {
			block, err := buildBlock(*offering, meeting, models.BlockClass)
			if err != nil {
				return nil, nil, err
			}
			blocks = append(blocks, block)
		}
		for _, meeting := range offering.LabMeetings {
			block, err := buildBlock(*offering, meeting, models.BlockLab)
			if err != nil {
				return nil, nil, err
			}
			blocks = append(blocks, block)
		}
	}
	return blocks, skipped, nil
}

func buildBlock(offering models.SectionOffering, meeting models.SectionMeeting, kind models.BlockKind) (models.ScheduleBlock, error) {
	day, err := models.ParseWeekday(meeting.Day)
	if err != nil {
		return models.ScheduleBlock{}, appErrors.Wrap(err, appErrors.ErrInvalidMeeting.Code, appErrors.ErrInvalidMeeting.Status,
			fmt.Sprintf("catalog meeting for %s has an unknown day", offering.CourseCode))
	}
	start, err := models.ParseTimeOfDay(meeting.StartTime)
	if err != nil {
		return models.ScheduleBlock{}, appErrors.Wrap(err, appErrors.ErrInvalidTimeFormat.Code, appErrors.ErrInvalidTimeFormat.Status,
			fmt.Sprintf("catalog meeting for %s has a malformed start time", offering.CourseCode))
	}
	end, err := models.ParseTimeOfDay(meeting.EndTime)
	if err != nil {
		return models.ScheduleBlock{}, appErrors.Wrap(err, appErrors.ErrInvalidTimeFormat.Code, appErrors.ErrInvalidTimeFormat.Status,
			fmt.Sprintf("catalog meeting for %s has a malformed end time", offering.CourseCode))
	}
	if start >= end {
		return models.ScheduleBlock{}, appErrors.Clone(appErrors.ErrInvalidMeeting,
			fmt.Sprintf("catalog meeting for %s ends before it starts", offering.CourseCode))
	}

	room := meeting.Room
	if room == "" {
		room = models.PlaceholderTBA
	}
	faculty := meeting.Faculty
	if faculty == "" {
		faculty = models.PlaceholderTBA
	}

	return models.ScheduleBlock{
		CourseCode:  offering.CourseCode,
		SectionName: offering.SectionName,
		Kind:        kind,
		Day:         day,
		Start:       start,
		End:         end,
		Room:        room,
		Faculty:     faculty,
		Label:       models.BlockLabel(offering.CourseCode, offering.SectionName, kind),
	}, nil
}

func timetableCacheKey(studentID string) string {
	return "timetable:v1:" + studentID
}

// compose returns the conflict-annotated block list for a student, from
// cache when possible.
func (s *TimetableService) compose(ctx context.Context, studentID string) (composition, error) {
	key := timetableCacheKey(studentID)

	var cached composition
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	start := time.Now()
	stored, err := s.picks.ListByStudent(ctx, studentID)
	if err != nil {
		return composition{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load picks")
	}
	picks := make([]models.Pick, 0, len(stored))
	for _, row := range stored {
		picks = append(picks, row.Pick())
	}

	blocks, skippedPicks, err := s.ResolveBlocks(ctx, picks)
	if err != nil {
		return composition{}, err
	}

	week, pairs := DetectConflicts(blocks)
	comp := composition{
		Blocks:       week.All(),
		Conflicts:    pairs,
		SkippedPicks: skippedPicks,
	}

	s.metrics.RecordComposition(time.Since(start), len(pairs), len(skippedPicks))
	if len(skippedPicks) > 0 {
		s.logger.Info("skipped stale picks",
			zap.String("student_id", studentID),
			zap.Int("count", len(skippedPicks)))
	}

	_ = s.cache.Set(ctx, key, comp, 0)
	return comp, nil
}

// Compose returns the day-partitioned, conflict- and time-annotated schedule
// for list-style rendering.
func (s *TimetableService) Compose(ctx context.Context, studentID string, scope models.ViewScope) (*dto.TimetableView, error) {
	comp, err := s.compose(ctx, studentID)
	if err != nil {
		return nil, err
	}

	snap := s.clock.Snapshot()
	week := PartitionByDay(AnnotateCurrent(comp.Blocks, snap))

	view := &dto.TimetableView{
		Scope:        scope,
		Conflicts:    comp.Conflicts,
		SkippedPicks: comp.SkippedPicks,
		Snapshot:     snap,
	}
	for _, day := range DayOrder(scope, snap.Day) {
		view.Days = append(view.Days, dto.DayView{Day: day, Blocks: week[day]})
	}
	return view, nil
}

// Grid returns the fixed-slot weekly matrix for table-style rendering.
func (s *TimetableService) Grid(ctx context.Context, studentID string) (*dto.GridView, error) {
	comp, err := s.compose(ctx, studentID)
	if err != nil {
		return nil, err
	}

	snap := s.clock.Snapshot()
	week := PartitionByDay(AnnotateCurrent(comp.Blocks, snap))
	grid := BuildWeekGrid(s.slots, week)

	if len(grid.Unaligned) > 0 {
		s.metrics.RecordUnalignedBlocks(len(grid.Unaligned))
		s.logger.Warn("blocks omitted from grid: start off slot boundary",
			zap.String("student_id", studentID),
			zap.Int("count", len(grid.Unaligned)))
	}

	return &dto.GridView{
		Grid:         grid,
		Conflicts:    comp.Conflicts,
		SkippedPicks: comp.SkippedPicks,
		Snapshot:     snap,
	}, nil
}

// NowBanner returns the current/next-class payload for the notifier. All
// simultaneously running blocks are reported; Current is the deterministic
// primary (earliest start, then course code).
func (s *TimetableService) NowBanner(ctx context.Context, studentID string) (*dto.NowView, error) {
	comp, err := s.compose(ctx, studentID)
	if err != nil {
		return nil, err
	}

	snap := s.clock.Snapshot()
	currents := CurrentBlocks(comp.Blocks, snap)
	view := &dto.NowView{
		Currents: currents,
		Next:     NextBlock(comp.Blocks, snap),
		Snapshot: snap,
	}
	if len(currents) > 0 {
		view.Current = &currents[0]
	}
	return view, nil
}

// InvalidateStudent drops the cached composition after a pick change.
func (s *TimetableService) InvalidateStudent(ctx context.Context, studentID string) {
	_ = s.cache.Invalidate(ctx, timetableCacheKey(studentID))
}

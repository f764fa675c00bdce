package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
)

func testBlock(code string, kind models.BlockKind, day models.Weekday, start, end models.TimeOfDay) models.ScheduleBlock {
	return models.ScheduleBlock{
		CourseCode:  code,
		SectionName: "A",
		Kind:        kind,
		Day:         day,
		Start:       start,
		End:         end,
		Room:        "UB1234",
		Faculty:     "TBA",
		Label:       models.BlockLabel(code, "A", kind),
	}
}

func TestDetectConflictsFlagsOverlappingPair(t *testing.T) {
	class := testBlock("CSE220", models.BlockClass, models.Monday, 570, 650)
	lab := testBlock("CSE220", models.BlockLab, models.Monday, 570, 740)

	week, pairs := DetectConflicts([]models.ScheduleBlock{class, lab})

	require.Len(t, pairs, 1)
	assert.Equal(t, models.Monday, pairs[0].Day)

	monday := week[models.Monday]
	require.Len(t, monday, 2)
	assert.True(t, monday[0].Conflicted)
	assert.True(t, monday[1].Conflicted)
}

func TestDetectConflictsIgnoresOtherDays(t *testing.T) {
	a := testBlock("CSE220", models.BlockClass, models.Monday, 570, 650)
	b := testBlock("MAT110", models.BlockClass, models.Tuesday, 570, 650)

	week, pairs := DetectConflicts([]models.ScheduleBlock{a, b})

	assert.Empty(t, pairs)
	assert.False(t, week[models.Monday][0].Conflicted)
	assert.False(t, week[models.Tuesday][0].Conflicted)
}

func TestDetectConflictsBackToBackIsNotAClash(t *testing.T) {
	a := testBlock("CSE220", models.BlockClass, models.Sunday, 480, 560)
	b := testBlock("MAT110", models.BlockClass, models.Sunday, 560, 640)

	_, pairs := DetectConflicts([]models.ScheduleBlock{a, b})
	assert.Empty(t, pairs)
}

// A long block followed by a short non-overlapping one must not stop the
// scan before a third block that still intersects the first.
func TestDetectConflictsFindsNestedOverlapPastGap(t *testing.T) {
	long := testBlock("CSE220", models.BlockLab, models.Wednesday, 480, 800)
	short := testBlock("MAT110", models.BlockClass, models.Wednesday, 500, 520)
	late := testBlock("PHY111", models.BlockClass, models.Wednesday, 700, 780)

	_, pairs := DetectConflicts([]models.ScheduleBlock{long, short, late})

	// long/short and long/late clash; short/late do not.
	require.Len(t, pairs, 2)
	keys := map[string]struct{}{}
	for _, p := range pairs {
		keys[p.Key()] = struct{}{}
	}
	assert.Len(t, keys, 2)
}

func TestDetectConflictsReportsEachPairOnce(t *testing.T) {
	a := testBlock("CSE220", models.BlockClass, models.Monday, 570, 650)
	b := testBlock("CSE220", models.BlockLab, models.Monday, 570, 740)
	c := testBlock("MAT110", models.BlockClass, models.Monday, 600, 680)

	_, pairs := DetectConflicts([]models.ScheduleBlock{a, b, c})

	// a-b, a-c, b-c: three distinct physical clashes.
	require.Len(t, pairs, 3)
	seen := map[string]struct{}{}
	for _, p := range pairs {
		_, dup := seen[p.Key()]
		assert.False(t, dup, "pair reported twice")
		seen[p.Key()] = struct{}{}
	}
}

func TestPartitionByDayIsStableForEqualStarts(t *testing.T) {
	first := testBlock("CSE220", models.BlockClass, models.Monday, 570, 650)
	second := testBlock("MAT110", models.BlockClass, models.Monday, 570, 650)

	week := PartitionByDay([]models.ScheduleBlock{first, second})

	monday := week[models.Monday]
	require.Len(t, monday, 2)
	assert.Equal(t, "CSE220", monday[0].CourseCode)
	assert.Equal(t, "MAT110", monday[1].CourseCode)
}

func TestDetectConflictsDoesNotMutateInput(t *testing.T) {
	blocks := []models.ScheduleBlock{
		testBlock("CSE220", models.BlockClass, models.Monday, 570, 650),
		testBlock("CSE220", models.BlockLab, models.Monday, 570, 740),
	}

	DetectConflicts(blocks)

	assert.False(t, blocks[0].Conflicted)
	assert.False(t, blocks[1].Conflicted)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func block(day Weekday, start, end TimeOfDay) ScheduleBlock {
	return ScheduleBlock{
		CourseCode:  "CSE220",
		SectionName: "A",
		Kind:        BlockClass,
		Day:         day,
		Start:       start,
		End:         end,
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	a := block(Monday, 570, 650)
	b := block(Monday, 600, 740)
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
}

func TestOverlapsIgnoresOtherDays(t *testing.T) {
	a := block(Monday, 570, 650)
	b := block(Tuesday, 570, 650)
	assert.False(t, a.Overlaps(b))
}

func TestOverlapsExcludesTouchingRanges(t *testing.T) {
	a := block(Monday, 480, 560)
	b := block(Monday, 560, 640)
	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestConflictPairKeyIsOrderIndependent(t *testing.T) {
	a := block(Monday, 570, 650)
	b := block(Monday, 570, 740)
	b.CourseCode = "MAT110"

	forward := ConflictPair{Day: Monday, First: a, Second: b}
	reverse := ConflictPair{Day: Monday, First: b, Second: a}
	assert.Equal(t, forward.Key(), reverse.Key())
}

func TestBlockLabel(t *testing.T) {
	assert.Equal(t, "CSE220 [A]", BlockLabel("CSE220", "A", BlockClass))
	assert.Equal(t, "CSE220 [A] Lab", BlockLabel("CSE220", "A", BlockLab))
}

package service

import (
	"sort"

	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
)

// WeekBlocks partitions a term's blocks into the fixed weekday ordering.
// Indexing by models.Weekday keeps the grouping exhaustive at compile time
// instead of leaning on dynamically keyed maps.
type WeekBlocks [models.DaysInWeek][]models.ScheduleBlock

// All flattens the partition back into one list in day order.
func (w WeekBlocks) All() []models.ScheduleBlock {
	var out []models.ScheduleBlock
	for _, day := range w {
		out = append(out, day...)
	}
	return out
}

// PartitionByDay groups blocks by weekday and sorts each day ascending by
// start. The sort is stable so blocks sharing a start keep their pick order,
// which keeps conflict reporting deterministic.
func PartitionByDay(blocks []models.ScheduleBlock) WeekBlocks {
	var week WeekBlocks
	for _, b := range blocks {
		if !b.Day.Valid() {
			continue
		}
		week[b.Day] = append(week[b.Day], b)
	}
	for d := range week {
		day := week[d]
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].Start < day[j].Start
		})
	}
	return week
}

// DetectConflicts partitions the blocks by day, flags every block that
// overlaps another block on the same day, and reports each physical clash
// exactly once.
//
// The scan compares every later block against every earlier one. Breaking
// the inner loop at b[j].Start >= b[i].End would be safe only if durations
// were non-nested; a long lab can overlap a block that an intervening short
// class does not, so the loop skips the pair and keeps scanning.
func DetectConflicts(blocks []models.ScheduleBlock) (WeekBlocks, []models.ConflictPair) {
	week := PartitionByDay(blocks)

	var pairs []models.ConflictPair
	seen := make(map[string]struct{})

	for d := range week {
		day := week[d]
		for i := 0; i < len(day); i++ {
			for j := i + 1; j < len(day); j++ {
				if day[j].Start >= day[i].End {
					continue
				}
				day[i].Conflicted = true
				day[j].Conflicted = true
				pair := models.ConflictPair{
					Day:    models.Weekday(d),
					First:  day[i],
					Second: day[j],
				}
				if _, dup := seen[pair.Key()]; dup {
					continue
				}
				seen[pair.Key()] = struct{}{}
				pairs = append(pairs, pair)
			}
		}
	}
	return week, pairs
}

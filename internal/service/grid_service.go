package service

import (
	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
)

// BuildWeekGrid lays a week's blocks onto the slot table, producing the
// complete (day, slot) matrix a table renderer consumes. Blocks whose start
// does not line up with any slot boundary cannot be placed; they are
// collected in the grid's Unaligned list so callers can surface them instead
// of losing them.
func BuildWeekGrid(slots models.SlotTable, week WeekBlocks) models.WeekGrid {
	grid := models.WeekGrid{Slots: slots}
	for d := range week {
		day, unaligned := buildDayGrid(models.Weekday(d), slots, week[d])
		grid.Days[d] = day
		grid.Unaligned = append(grid.Unaligned, unaligned...)
	}
	return grid
}

func buildDayGrid(day models.Weekday, slots models.SlotTable, blocks []models.ScheduleBlock) (models.DayGrid, []models.ScheduleBlock) {
	heads := make([][]models.BlockHead, len(slots))
	covered := make([]bool, len(slots))
	var unaligned []models.ScheduleBlock

	for _, b := range blocks {
		idx, ok := slots.IndexStartingAt(b.Start)
		if !ok {
			unaligned = append(unaligned, b)
			continue
		}
		span := blockSpan(slots, idx, b)
		heads[idx] = append(heads[idx], models.BlockHead{Block: b, Span: span})
		for i := idx + 1; i < idx+span && i < len(slots); i++ {
			covered[i] = true
		}
	}

	cells := make([]models.GridCell, len(slots))
	for i := range cells {
		switch {
		case len(heads[i]) > 0:
			// A block starting here stays visible even when an earlier
			// block's span also covers this slot.
			cells[i] = models.GridCell{State: models.CellBlockHead, Heads: heads[i]}
		case covered[i]:
			cells[i] = models.GridCell{State: models.CellHidden}
		default:
			cells[i] = models.GridCell{State: models.CellEmpty}
		}
	}

	markBreaks(slots, cells, blocks)

	return models.DayGrid{Day: day, Cells: cells}, unaligned
}

// blockSpan counts the consecutive slots starting at idx that are fully
// contained in the block's range. The floor of 1 keeps a head visible even
// when the block is shorter than its own slot.
func blockSpan(slots models.SlotTable, idx int, b models.ScheduleBlock) int {
	span := 0
	for i := idx; i < len(slots); i++ {
		if slots[i].Start < b.Start || slots[i].End > b.End {
			break
		}
		span++
	}
	if span < 1 {
		span = 1
	}
	return span
}

// markBreaks turns empty cells between the day's first start and last end
// into breaks. A day with no blocks keeps every cell empty.
func markBreaks(slots models.SlotTable, cells []models.GridCell, blocks []models.ScheduleBlock) {
	if len(blocks) == 0 {
		return
	}
	minStart, maxEnd := blocks[0].Start, blocks[0].End
	for _, b := range blocks[1:] {
		if b.Start < minStart {
			minStart = b.Start
		}
		if b.End > maxEnd {
			maxEnd = b.End
		}
	}
	for i := range cells {
		if cells[i].State != models.CellEmpty {
			continue
		}
		if slots[i].Start >= minStart && slots[i].Start < maxEnd {
			cells[i].State = models.CellBreak
		}
	}
}

package models

// CellState tags the mutually exclusive grid cell variants.
type CellState string

const (
	CellEmpty     CellState = "EMPTY"
	CellBreak     CellState = "BREAK"
	CellBlockHead CellState = "BLOCK"
	CellHidden    CellState = "HIDDEN"
)

// BlockHead anchors a block at the slot its start aligns to. Span counts the
// consecutive slots the block covers, minimum 1.
type BlockHead struct {
	Block ScheduleBlock `json:"block"`
	Span  int           `json:"span"`
}

// GridCell is one (day, slot) entry in the weekly grid. Heads is populated
// only for CellBlockHead; conflicting blocks that start at the same slot all
// anchor here rather than silently shadowing one another. Hidden cells carry
// no content and exist so row-span consumers know which columns to skip.
type GridCell struct {
	State CellState   `json:"state"`
	Heads []BlockHead `json:"heads,omitempty"`
}

// DayGrid is one day's row of cells, indexed by slot.
type DayGrid struct {
	Day   Weekday    `json:"day"`
	Cells []GridCell `json:"cells"`
}

// WeekGrid is the complete (day, slot) matrix together with the slot table it
// was laid out against and the blocks that could not be placed on a slot
// boundary. Unaligned blocks still appear in list views and conflict
// detection; omitting them here is an observable recovery, not data loss.
type WeekGrid struct {
	Slots     SlotTable           `json:"slots"`
	Days      [DaysInWeek]DayGrid `json:"days"`
	Unaligned []ScheduleBlock     `json:"unaligned,omitempty"`
}

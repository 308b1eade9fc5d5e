package layout

// RowKind distinguishes dated history rows from the synthetic rows the
// template always carries.
type RowKind int

const (
	// RowData carries an actual year/month pair.
	RowData RowKind = iota
	// RowSectionLabel opens a section (学歴 or 職歴); year and month are empty.
	RowSectionLabel
	// RowClosing is one of the fixed trailing markers (現在に至る, 以上).
	RowClosing
)

// HistoryRow is one line of the 学歴・職歴 table.
type HistoryRow struct {
	Year  string
	Month string
	Label string
	Kind  RowKind
}

// Split is the division of history rows between the two pages.
type Split struct {
	Left  []HistoryRow
	Right []HistoryRow
	// SectionLabelMoved reports that a section label would have landed on
	// the last left-page row and was pushed to the right page instead.
	SectionLabelMoved bool
}

// SplitHistory assigns the first leftCapacity rows to the left page and the
// rest to the right page, with one adjustment: a section label stranded as
// the last left-page row (a header with its entries on the other page) is
// moved to the top of the right page together with everything after it.
func SplitHistory(rows []HistoryRow, leftCapacity int) Split {
	if leftCapacity < 0 {
		leftCapacity = 0
	}
	if len(rows) <= leftCapacity {
		return Split{Left: rows}
	}

	cut := leftCapacity
	moved := false
	if cut > 0 && rows[cut-1].Kind == RowSectionLabel {
		cut--
		moved = true
	}

	return Split{
		Left:              rows[:cut],
		Right:             rows[cut:],
		SectionLabelMoved: moved,
	}
}

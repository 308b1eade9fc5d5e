package layout

// DataCounts is the solver's view of the résumé: two opaque demand figures.
// The counter that produces it lives with the structured section types; the
// solver never re-derives or mutates it.
type DataCounts struct {
	HistoryRows int // dated 学歴・職歴 rows, synthetic rows excluded
	LicenseRows int // 免許・資格 rows
}

// SyntheticHistoryRows is the number of undated rows every history table
// carries: the 学歴 and 職歴 section labels plus the two fixed closing
// markers (現在に至る and 以上), each appended exactly once.
const SyntheticHistoryRows = 4

// TotalHistoryRows is the full row demand of the history table.
func (c DataCounts) TotalHistoryRows() int {
	return c.HistoryRows + SyntheticHistoryRows
}

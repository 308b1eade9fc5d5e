package layout

// Notes:
// - SplitHistory: baseline split, full fit, stranded section label rule,
//   degenerate capacities

import (
	"reflect"
	"testing"
)

// historyFixture builds a row list: 学歴 label, eduRows data rows, 職歴
// label, workRows data rows, then the two closing markers.
func historyFixture(eduRows, workRows int) []HistoryRow {
	rows := []HistoryRow{{Label: "学歴", Kind: RowSectionLabel}}
	for i := 0; i < eduRows; i++ {
		rows = append(rows, HistoryRow{Year: "2015", Month: "4", Label: "○○高等学校 入学", Kind: RowData})
	}
	rows = append(rows, HistoryRow{Label: "職歴", Kind: RowSectionLabel})
	for i := 0; i < workRows; i++ {
		rows = append(rows, HistoryRow{Year: "2020", Month: "4", Label: "株式会社○○ 入社", Kind: RowData})
	}
	rows = append(rows,
		HistoryRow{Label: "現在に至る", Kind: RowClosing},
		HistoryRow{Label: "以上", Kind: RowClosing},
	)
	return rows
}

// ---------------------------------------------------------------------------
// TestSplitHistory - Page Split Adjustment
// ---------------------------------------------------------------------------

func TestSplitHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rows      []HistoryRow
		capacity  int
		wantLeft  int
		wantRight int
		wantMoved bool
	}{
		{
			name:      "everything fits on the left page",
			rows:      historyFixture(3, 2),
			capacity:  20,
			wantLeft:  9,
			wantRight: 0,
			wantMoved: false,
		},
		{
			name:      "plain split on a data row",
			rows:      historyFixture(3, 4),
			capacity:  3, // boundary row is an education data row
			wantLeft:  3,
			wantRight: 8,
			wantMoved: false,
		},
		{
			name: "section label stranded at the page boundary moves right",
			// Rows: [学歴, edu, edu, edu, 職歴, ...]; capacity 5 puts 職歴
			// last on the left page with its entries on the right.
			rows:      historyFixture(3, 4),
			capacity:  5,
			wantLeft:  4,
			wantRight: 7,
			wantMoved: true,
		},
		{
			name:      "label just inside the left page stays",
			rows:      historyFixture(3, 4),
			capacity:  6, // 職歴 followed by one work row on the left
			wantLeft:  6,
			wantRight: 5,
			wantMoved: false,
		},
		{
			name:      "zero capacity pushes everything right",
			rows:      historyFixture(1, 1),
			capacity:  0,
			wantLeft:  0,
			wantRight: 6,
			wantMoved: false,
		},
		{
			name:      "exact fit is not split",
			rows:      historyFixture(2, 1),
			capacity:  7,
			wantLeft:  7,
			wantRight: 0,
			wantMoved: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SplitHistory(tt.rows, tt.capacity)

			if len(got.Left) != tt.wantLeft || len(got.Right) != tt.wantRight {
				t.Fatalf("split = %d/%d rows, want %d/%d", len(got.Left), len(got.Right), tt.wantLeft, tt.wantRight)
			}
			if got.SectionLabelMoved != tt.wantMoved {
				t.Errorf("SectionLabelMoved = %v, want %v", got.SectionLabelMoved, tt.wantMoved)
			}

			// The split must preserve order and content.
			rejoined := append(append([]HistoryRow{}, got.Left...), got.Right...)
			if !reflect.DeepEqual(rejoined, tt.rows) {
				t.Error("split does not reassemble into the original rows")
			}
		})
	}
}

func TestSplitHistoryMovedLabelLeadsRightPage(t *testing.T) {
	t.Parallel()

	rows := historyFixture(3, 4)
	got := SplitHistory(rows, 5)

	if !got.SectionLabelMoved {
		t.Fatal("expected the 職歴 label to be moved")
	}
	if len(got.Right) == 0 || got.Right[0].Kind != RowSectionLabel || got.Right[0].Label != "職歴" {
		t.Errorf("right page starts with %+v, want the moved 職歴 label", got.Right[0])
	}
}

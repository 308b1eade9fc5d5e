package resume

import (
	"strconv"

	"github.com/go-rirekisho/rirekisho/internal/dateutil"
	"github.com/go-rirekisho/rirekisho/internal/layout"
)

// Form labels for the history table.
const (
	labelEducation = "学歴"
	labelWork      = "職歴"
	labelCombined  = "学歴・職歴"
	markerPresent  = "現在に至る"
	markerEnd      = "以上"
)

// Entry/leave suffixes appended to school and company names.
const (
	suffixEnroll   = "入学"
	suffixGraduate = "卒業"
	suffixJoin     = "入社"
	suffixLeave    = "退社"
)

// BuildHistoryRows produces the ordered 学歴・職歴 rows: section labels,
// dated entries with era-formatted years, and the fixed closing markers.
//
// Pre-formatted rows bypass the structured sections: they are emitted under
// a combined label with only the 以上 marker appended, since the author
// already controls every line. The counter's uniform synthetic-row constant
// then overestimates by two rows, which only adds slack.
func BuildHistoryRows(doc *Document) []layout.HistoryRow {
	if doc.HistoryRows != nil {
		rows := []layout.HistoryRow{{Label: labelCombined, Kind: layout.RowSectionLabel}}
		for _, line := range doc.HistoryRows {
			rows = append(rows, layout.HistoryRow{Label: line, Kind: layout.RowData})
		}
		return append(rows, layout.HistoryRow{Label: markerEnd, Kind: layout.RowClosing})
	}

	rows := []layout.HistoryRow{{Label: labelEducation, Kind: layout.RowSectionLabel}}
	for _, e := range doc.Education {
		rows = append(rows, dataRow(e.Start, e.Name+" "+suffixEnroll))
		if e.End != "" {
			rows = append(rows, dataRow(e.End, e.Name+" "+suffixGraduate))
		}
	}

	rows = append(rows, layout.HistoryRow{Label: labelWork, Kind: layout.RowSectionLabel})
	for _, w := range doc.Work {
		rows = append(rows, dataRow(w.Start, w.Name+" "+suffixJoin))
		if w.End != "" && !w.ToPresent {
			rows = append(rows, dataRow(w.End, w.Name+" "+suffixLeave))
		}
	}

	return append(rows,
		layout.HistoryRow{Label: markerPresent, Kind: layout.RowClosing},
		layout.HistoryRow{Label: markerEnd, Kind: layout.RowClosing},
	)
}

// BuildLicenseRows produces the 免許・資格 rows in entry order.
func BuildLicenseRows(doc *Document) []layout.HistoryRow {
	if doc.LicenseRows != nil {
		rows := make([]layout.HistoryRow, 0, len(doc.LicenseRows))
		for _, line := range doc.LicenseRows {
			rows = append(rows, layout.HistoryRow{Label: line, Kind: layout.RowData})
		}
		return rows
	}

	rows := make([]layout.HistoryRow, 0, len(doc.Licenses))
	for _, l := range doc.Licenses {
		rows = append(rows, dataRow(l.Date, l.Name))
	}
	return rows
}

// dataRow formats one dated row, converting the western year to its era
// label. A date that fails to parse (callers that skipped validation) is
// printed as-is.
func dataRow(yearMonth, label string) layout.HistoryRow {
	ym, err := dateutil.ParseYearMonth(yearMonth)
	if err != nil {
		return layout.HistoryRow{Year: yearMonth, Label: label, Kind: layout.RowData}
	}
	return layout.HistoryRow{
		Year:  dateutil.EraYearMonth(ym),
		Month: strconv.Itoa(int(ym.Month)),
		Kind:  layout.RowData,
		Label: label,
	}
}

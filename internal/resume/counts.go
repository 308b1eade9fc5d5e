package resume

import "github.com/go-rirekisho/rirekisho/internal/layout"

// CountDemand reduces the structured sections to the two row counts the
// layout solver works with. Counting is purely additive and performs no
// date validation:
//
//   - an education entry contributes its entry row plus a leaving row when
//     End is set;
//   - a work entry contributes its joining row plus a leaving row when it
//     has a definite end (open-ended roles contribute one);
//   - a license entry contributes one row;
//   - pre-formatted rows are counted verbatim and replace their section.
func CountDemand(doc *Document) layout.DataCounts {
	var c layout.DataCounts

	if doc.HistoryRows != nil {
		c.HistoryRows = len(doc.HistoryRows)
	} else {
		for _, e := range doc.Education {
			c.HistoryRows++
			if e.End != "" {
				c.HistoryRows++
			}
		}
		for _, w := range doc.Work {
			c.HistoryRows++
			if w.End != "" && !w.ToPresent {
				c.HistoryRows++
			}
		}
	}

	if doc.LicenseRows != nil {
		c.LicenseRows = len(doc.LicenseRows)
	} else {
		c.LicenseRows = len(doc.Licenses)
	}

	return c
}

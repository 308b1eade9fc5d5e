package layout

import "errors"

// ErrOverflow reports that the résumé data cannot be rendered on the
// selected paper even after exhausting row-count and row-height reduction.
// The message is shown to the user verbatim; generation must stop without
// producing output.
var ErrOverflow = errors.New("データが多すぎてページに収まりません。学歴・職歴または免許・資格の数を減らしてください。")

// Request is the solver's complete input. It is treated as immutable:
// BuildPlan is a pure function of this value.
type Request struct {
	Paper        Paper
	HidePersonal bool
	Counts       DataCounts
}

// Plan is every measurement the renderer needs to paint the two pages.
// Consumed read-only; the renderer maps fields onto CSS without
// recomputing anything.
type Plan struct {
	Dims Dimensions

	PageWidthMm  float64
	PageHeightMm float64

	RowHeightMm float64
	FontSizePt  float64

	LeftHistoryRows  int
	RightHistoryRows int
	LicenseRows      int

	LeftHistoryTableHeightMm  float64
	RightHistoryTableHeightMm float64
	LicenseTableHeightMm      float64

	MotivationHeightMm float64
	WishesHeightMm     float64

	ShowPersonalStrip bool
	Overflows         bool
}

// BuildPlan runs the solver: seed the right-page allocation from the
// left-page overflow at the default row height, then rebuild the left page
// from the allocator's final row height so both pages agree on geometry.
func BuildPlan(req Request) Plan {
	d := DimensionsFor(req.Paper)

	leftCapDefault := d.LeftCapacity(d.DefaultRowHeightMm)
	overflow := maxInt(0, req.Counts.TotalHistoryRows()-leftCapDefault)

	alloc := Allocate(d.PageHeightMm(), overflow, req.Counts.LicenseRows, d, req.HidePersonal)

	// The left page must use the allocator's final row height, not the
	// default that seeded the overflow count; otherwise the two pages
	// disagree about where the history splits.
	leftRows := d.LeftCapacity(alloc.RowHeightMm)

	return Plan{
		Dims: d,

		PageWidthMm:  d.PageWidthMm(),
		PageHeightMm: d.PageHeightMm(),

		RowHeightMm: alloc.RowHeightMm,
		FontSizePt:  alloc.FontSizePt,

		LeftHistoryRows:  leftRows,
		RightHistoryRows: alloc.RightHistoryRows,
		LicenseRows:      alloc.LicenseRows,

		LeftHistoryTableHeightMm:  TableHeightMm(leftRows, alloc.RowHeightMm),
		RightHistoryTableHeightMm: TableHeightMm(alloc.RightHistoryRows, alloc.RowHeightMm),
		LicenseTableHeightMm:      TableHeightMm(alloc.LicenseRows, alloc.RowHeightMm),

		MotivationHeightMm: alloc.MotivationHeightMm,
		WishesHeightMm:     alloc.WishesHeightMm,

		ShowPersonalStrip: !req.HidePersonal,
		Overflows:         alloc.Overflows,
	}
}

// Validate is the solver's single error gate: nil when the plan is safe to
// render, ErrOverflow when the data cannot fit. Callers must treat
// ErrOverflow as a hard stop and produce no document.
func Validate(p Plan) error {
	if p.Overflows {
		return ErrOverflow
	}
	return nil
}

package layout

// Allocation is the outcome of dividing the right page between the history
// continuation table, the license table, and the two free-text boxes.
type Allocation struct {
	RightHistoryRows   int
	LicenseRows        int
	MotivationHeightMm float64
	WishesHeightMm     float64
	RowHeightMm        float64
	FontSizePt         float64
	TotalHeightMm      float64
	Overflows          bool
}

const (
	// motivationShare is the free-text split: the motivation box takes this
	// share of leftover space, the wishes box the rest.
	motivationShare = 0.6

	// rightPageGaps is the number of section gaps between the four right-page
	// regions (history, licenses, motivation, wishes).
	rightPageGaps = 3

	// heightEpsilonMm absorbs floating-point noise in fit comparisons.
	heightEpsilonMm = 0.01

	// Bounds for the uniform row-height search.
	heightSearchIterations  = 20
	heightSearchToleranceMm = 0.01
)

// TableHeightMm is the rendered height of a table: its rows plus one header
// row, at the given row height.
func TableHeightMm(rows int, rowHeightMm float64) float64 {
	return float64(rows+1) * rowHeightMm
}

// reduceStrategy selects which regions give up space first when the
// preferred allocation does not fit.
type reduceStrategy int

const (
	// reduceBalanced: free text to minimums, then alternate license/history
	// row reductions. Covers both-large and neither-large.
	reduceBalanced reduceStrategy = iota
	// reduceLicenseHeavy: license demand exceeds its preferred count but
	// history does not. Free text shrinks first, then history rows.
	reduceLicenseHeavy
	// reduceHistoryHeavy: history demand exceeds its preferred count but
	// license does not. License rows shrink first, then free text.
	reduceHistoryHeavy
)

// classify picks the reduction strategy from which demands exceed their
// preferred row counts.
func classify(historyLarge, licenseLarge bool) reduceStrategy {
	switch {
	case licenseLarge && !historyLarge:
		return reduceLicenseHeavy
	case historyLarge && !licenseLarge:
		return reduceHistoryHeavy
	default:
		return reduceBalanced
	}
}

// splitFreeText divides leftover vertical space between the motivation and
// wishes boxes. The split is motivationShare / rest, raised to each box's
// minimum; when even the minimums exceed the leftover, both shrink by the
// same proportional factor.
func splitFreeText(remainingMm, motivationMinMm, wishesMinMm float64) (motivationMm, wishesMm float64) {
	motivationMm = remainingMm * motivationShare
	wishesMm = remainingMm - motivationMm
	if motivationMm < motivationMinMm {
		motivationMm = motivationMinMm
		wishesMm = remainingMm - motivationMm
	}
	if wishesMm < wishesMinMm {
		wishesMm = wishesMinMm
		motivationMm = remainingMm - wishesMm
	}
	if motivationMm < motivationMinMm {
		// Even the minimums do not fit.
		factor := remainingMm / (motivationMinMm + wishesMinMm)
		if factor < 0 {
			factor = 0
		}
		motivationMm = motivationMinMm * factor
		wishesMm = wishesMinMm * factor
	}
	return motivationMm, wishesMm
}

// maxFittingHeight finds the largest row height in [lo, hi] satisfying
// fits, by bounded binary search. Returns (hi, true) when hi already fits
// and (lo, false) when not even lo fits.
func maxFittingHeight(lo, hi float64, fits func(float64) bool) (float64, bool) {
	if fits(hi) {
		return hi, true
	}
	if !fits(lo) {
		return lo, false
	}
	best := lo
	for i := 0; i < heightSearchIterations && hi-lo > heightSearchToleranceMm; i++ {
		mid := (lo + hi) / 2
		if fits(mid) {
			best = mid
			lo = mid
		} else {
			hi = mid
		}
	}
	return best, true
}

// Allocate divides availableHeightMm of right-page space between the
// history continuation table, the license table, and the two free-text
// boxes.
//
// historyOverflow is how many history rows did not fit on the left page at
// the default row height; licenseDemand is the license row count. Both
// tables start from the paper's preferred row counts and only give back
// their aesthetic padding; as a last resort the row height (and with it the
// font size) shrinks uniformly for every table on both pages.
//
// Allocate never fails: it returns a best-effort Allocation and reports an
// impossible fit through the Overflows flag.
func Allocate(availableHeightMm float64, historyOverflow, licenseDemand int, d Dimensions, hidePersonal bool) Allocation {
	effective := availableHeightMm
	if !hidePersonal {
		effective -= d.PersonalStripHeightMm + d.SectionGapMm
	}

	histFloor := maxInt(1, historyOverflow)
	licFloor := maxInt(1, licenseDemand)

	histRows := maxInt(d.PreferredHistoryRows, histFloor)
	licRows := maxInt(d.PreferredLicenseRows, licFloor)
	rowHeight := d.DefaultRowHeightMm

	leftover := func(hist, lic int, h float64) float64 {
		return effective - TableHeightMm(hist, h) - TableHeightMm(lic, h) -
			rightPageGaps*d.SectionGapMm
	}
	fitsWith := func(hist, lic int, h, motivation, wishes float64) bool {
		used := TableHeightMm(hist, h) + TableHeightMm(lic, h) +
			motivation + wishes + rightPageGaps*d.SectionGapMm
		return used <= effective+heightEpsilonMm
	}
	fitsMin := func(hist, lic int, h float64) bool {
		return fitsWith(hist, lic, h, d.MotivationMinHeightMm, d.WishesMinHeightMm)
	}

	// Common case: the preferred allocation leaves at least the free-text
	// minimums. The minimums are the binding constraint for every fit
	// decision; the boxes' final heights come from the last recompute.
	fitted := fitsMin(histRows, licRows, rowHeight)

	if !fitted {
		switch classify(historyOverflow > d.PreferredHistoryRows, licenseDemand > d.PreferredLicenseRows) {
		case reduceLicenseHeavy:
			// Free text is already pinned at minimums by the fit test, so
			// the only padding left to give back is the history table's.
			for !fitsMin(histRows, licRows, rowHeight) && histRows > histFloor {
				histRows--
			}
			fitted = fitsMin(histRows, licRows, rowHeight)

		case reduceHistoryHeavy:
			// Trim license padding first, re-testing after every step since
			// each removed row changes the free-text leftover.
			for licRows > licFloor && !fitsMin(histRows, licRows, rowHeight) {
				licRows--
			}
			fitted = fitsMin(histRows, licRows, rowHeight)

		case reduceBalanced:
			// Free text to minimums, then alternate reductions, license first.
			for !fitsMin(histRows, licRows, rowHeight) {
				reduced := false
				if licRows > licFloor {
					licRows--
					reduced = true
				}
				if fitsMin(histRows, licRows, rowHeight) {
					break
				}
				if histRows > histFloor {
					histRows--
					reduced = true
				}
				if !reduced {
					break
				}
			}
			fitted = fitsMin(histRows, licRows, rowHeight)
		}
	}

	fontSize := d.DefaultFontSizePt

	if !fitted {
		// Uniform fallback: shrink the row height shared by every table on
		// both pages. A smaller row height also raises the left page's
		// capacity, which in turn lowers the right-page history demand.
		leftCapDefault := d.LeftCapacity(d.DefaultRowHeightMm)
		rightHistoryAt := func(h float64) int {
			return maxInt(1, historyOverflow+leftCapDefault-d.LeftCapacity(h))
		}
		rowHeight, _ = maxFittingHeight(d.MinRowHeightMm, d.DefaultRowHeightMm,
			func(h float64) bool {
				return fitsMin(rightHistoryAt(h), licFloor, h)
			})
		histRows = rightHistoryAt(rowHeight)
		licRows = licFloor
		fontSize = clampFloat(
			d.DefaultFontSizePt*rowHeight/d.DefaultRowHeightMm,
			d.MinFontSizePt, d.DefaultFontSizePt)
	}

	// Final pass: let the free-text boxes absorb whatever space remains at
	// the settled rows and row height, then take the true total.
	motivation, wishes := splitFreeText(leftover(histRows, licRows, rowHeight),
		d.MotivationMinHeightMm, d.WishesMinHeightMm)
	total := TableHeightMm(histRows, rowHeight) + TableHeightMm(licRows, rowHeight) +
		motivation + wishes + rightPageGaps*d.SectionGapMm
	if !hidePersonal {
		total += d.PersonalStripHeightMm + d.SectionGapMm
	}

	return Allocation{
		RightHistoryRows:   histRows,
		LicenseRows:        licRows,
		MotivationHeightMm: motivation,
		WishesHeightMm:     wishes,
		RowHeightMm:        rowHeight,
		FontSizePt:         fontSize,
		TotalHeightMm:      total,
		Overflows:          total > availableHeightMm+heightEpsilonMm,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

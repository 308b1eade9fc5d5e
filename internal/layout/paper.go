// Package layout solves the geometry of the two-page 履歴書 form.
//
// The form is a fixed template: a landscape sheet split into a left and a
// right page. The left page carries the identity header and the first part
// of the history (学歴・職歴) table; the right page carries the history
// continuation, the license (免許・資格) table, an optional personal strip,
// and two free-text boxes. Every function in this package is pure: no I/O,
// no shared state, deterministic output for a given input.
package layout

import "strings"

// Paper identifies a supported sheet size. The sheet is landscape and holds
// both pages of the form side by side.
type Paper string

// Supported paper sizes.
const (
	PaperA3     Paper = "a3"
	PaperA4     Paper = "a4"
	PaperB4     Paper = "b4"
	PaperB5     Paper = "b5"
	PaperLetter Paper = "letter"
)

// Papers lists every supported paper size.
var Papers = []Paper{PaperA3, PaperA4, PaperB4, PaperB5, PaperLetter}

// ParsePaper resolves a case-insensitive paper name.
// Returns ok=false for unknown names.
func ParsePaper(name string) (Paper, bool) {
	switch Paper(strings.ToLower(name)) {
	case PaperA3:
		return PaperA3, true
	case PaperA4:
		return PaperA4, true
	case PaperB4:
		return PaperB4, true
	case PaperB5:
		return PaperB5, true
	case PaperLetter:
		return PaperLetter, true
	}
	return "", false
}

// Profile holds the physical identity of a paper size.
// Scale is the unit-less multiplier applied to every other linear dimension
// and font size; A3, the largest supported sheet, is 1.0.
type Profile struct {
	Paper    Paper
	WidthMm  float64
	HeightMm float64
	Scale    float64
}

// profiles enumerates every supported sheet, landscape orientation.
var profiles = map[Paper]Profile{
	PaperA3:     {Paper: PaperA3, WidthMm: 420, HeightMm: 297, Scale: 1.0},
	PaperB4:     {Paper: PaperB4, WidthMm: 364, HeightMm: 257, Scale: 0.866},
	PaperA4:     {Paper: PaperA4, WidthMm: 297, HeightMm: 210, Scale: 0.707},
	PaperLetter: {Paper: PaperLetter, WidthMm: 279.4, HeightMm: 215.9, Scale: 0.665},
	PaperB5:     {Paper: PaperB5, WidthMm: 257, HeightMm: 182, Scale: 0.612},
}

// ProfileFor returns the physical profile of p.
// Unknown papers fall back to A4, the most common print target.
func ProfileFor(p Paper) Profile {
	if prof, ok := profiles[p]; ok {
		return prof
	}
	return profiles[PaperA4]
}

// Base dimensions at scale 1.0 (A3), in millimeters unless noted.
// Derived from the government-standard 履歴書 template measured on A3.
const (
	baseMarginMm       = 14.0
	baseCenterGapMm    = 10.0
	baseCaptionMm      = 10.0 // 履歴書 title + date line
	baseNameMm         = 18.0
	baseKanaMm         = 7.0
	baseBirthGenderMm  = 10.0
	baseAddressMm      = 22.0
	baseContactMm      = 12.0
	basePhotoWidthMm   = 30.0
	basePhotoHeightMm  = 40.0
	baseYearColMm      = 16.0
	baseMonthColMm     = 10.0
	baseRowDefaultMm   = 9.0
	baseRowMinMm       = 5.5
	baseRowMaxMm       = 11.0
	baseMotivMinMm     = 28.0
	baseWishMinMm      = 18.0
	basePersonalMm     = 16.0
	baseSectionGapMm   = 4.0
	baseFontDefaultPt  = 10.5
	baseFontMinPt      = 7.0
	baseFontCaptionPt  = 16.0
	baseHeaderLabelPt  = 8.0
)

// preferredRows holds the aesthetically chosen default row counts for the
// right-page tables, per paper. Smaller sheets start with fewer rows.
var preferredRows = map[Paper]struct{ history, license int }{
	PaperA3:     {history: 8, license: 6},
	PaperB4:     {history: 7, license: 5},
	PaperA4:     {history: 6, license: 5},
	PaperLetter: {history: 6, license: 4},
	PaperB5:     {history: 5, license: 4},
}

// Dimensions carries every template measurement for one paper size,
// pre-multiplied by the paper's scale. Millimeters except font sizes (pt).
type Dimensions struct {
	Profile Profile

	MarginMm    float64
	CenterGapMm float64

	// Left page header sub-regions, top to bottom.
	CaptionHeightMm     float64
	NameHeightMm        float64
	KanaHeightMm        float64
	BirthGenderHeightMm float64
	AddressHeightMm     float64
	ContactHeightMm     float64

	PhotoWidthMm  float64
	PhotoHeightMm float64

	YearColWidthMm  float64
	MonthColWidthMm float64

	DefaultRowHeightMm float64
	MinRowHeightMm     float64
	MaxRowHeightMm     float64

	DefaultFontSizePt float64
	MinFontSizePt     float64
	CaptionFontSizePt float64
	LabelFontSizePt   float64

	MotivationMinHeightMm float64
	WishesMinHeightMm     float64
	PersonalStripHeightMm float64
	SectionGapMm          float64

	PreferredHistoryRows int
	PreferredLicenseRows int
}

// DimensionsFor returns the complete scaled dimension set for p.
// Pure lookup; every paper has a full profile and there are no error cases.
func DimensionsFor(p Paper) Dimensions {
	prof := ProfileFor(p)
	s := prof.Scale
	pref := preferredRows[prof.Paper]
	return Dimensions{
		Profile: prof,

		MarginMm:    baseMarginMm * s,
		CenterGapMm: baseCenterGapMm * s,

		CaptionHeightMm:     baseCaptionMm * s,
		NameHeightMm:        baseNameMm * s,
		KanaHeightMm:        baseKanaMm * s,
		BirthGenderHeightMm: baseBirthGenderMm * s,
		AddressHeightMm:     baseAddressMm * s,
		ContactHeightMm:     baseContactMm * s,

		PhotoWidthMm:  basePhotoWidthMm * s,
		PhotoHeightMm: basePhotoHeightMm * s,

		YearColWidthMm:  baseYearColMm * s,
		MonthColWidthMm: baseMonthColMm * s,

		DefaultRowHeightMm: baseRowDefaultMm * s,
		MinRowHeightMm:     baseRowMinMm * s,
		MaxRowHeightMm:     baseRowMaxMm * s,

		DefaultFontSizePt: baseFontDefaultPt * s,
		MinFontSizePt:     baseFontMinPt * s,
		CaptionFontSizePt: baseFontCaptionPt * s,
		LabelFontSizePt:   baseHeaderLabelPt * s,

		MotivationMinHeightMm: baseMotivMinMm * s,
		WishesMinHeightMm:     baseWishMinMm * s,
		PersonalStripHeightMm: basePersonalMm * s,
		SectionGapMm:          baseSectionGapMm * s,

		PreferredHistoryRows: pref.history,
		PreferredLicenseRows: pref.license,
	}
}

// PageWidthMm is the width of one of the two form pages.
func (d Dimensions) PageWidthMm() float64 {
	return (d.Profile.WidthMm - 2*d.MarginMm - d.CenterGapMm) / 2
}

// PageHeightMm is the usable height of one form page.
func (d Dimensions) PageHeightMm() float64 {
	return d.Profile.HeightMm - 2*d.MarginMm
}

// HeaderHeightMm is the total height of the left-page identity header.
func (d Dimensions) HeaderHeightMm() float64 {
	return d.CaptionHeightMm + d.NameHeightMm + d.KanaHeightMm +
		d.BirthGenderHeightMm + d.AddressHeightMm + d.ContactHeightMm
}

// LeftCapacity is how many history data rows fit on the left page at the
// given row height, after the header, one section gap, and the table's own
// header row. Always at least one: the template shows at least one ruled row.
func (d Dimensions) LeftCapacity(rowHeightMm float64) int {
	free := d.PageHeightMm() - d.HeaderHeightMm() - d.SectionGapMm
	rows := int(free/rowHeightMm) - 1 // one header row
	if rows < 1 {
		return 1
	}
	return rows
}

package render

import (
	"fmt"
	"strings"

	"github.com/go-rirekisho/rirekisho/internal/layout"
)

// BuildCSS generates the geometry stylesheet for one solved plan. Every
// measurement is copied from the plan verbatim; the static theme (ruling,
// typography) layers underneath it.
func BuildCSS(p layout.Plan) string {
	var buf strings.Builder

	buf.WriteString(buildPageCSS(p))
	buf.WriteString(buildHeaderCSS(p.Dims))
	buf.WriteString(buildTableCSS(p))
	buf.WriteString(buildFreeTextCSS(p))
	buf.WriteString(buildPersonalCSS(p))

	return buf.String()
}

// buildPageCSS sizes the two printed pages. Each page is half the selected
// sheet; the outer margin wraps three sides and half the center gap forms
// the gutter.
func buildPageCSS(p layout.Plan) string {
	d := p.Dims
	halfSheetMm := d.Profile.WidthMm / 2

	return fmt.Sprintf(`
/* Page geometry */
body {
  font-size: %.2fpt;
}
.page {
  width: %.3fmm;
  height: %.3fmm;
}
.page-left {
  padding: %.3fmm %.3fmm %.3fmm %.3fmm;
}
.page-right {
  padding: %.3fmm %.3fmm %.3fmm %.3fmm;
}
`,
		p.FontSizePt,
		halfSheetMm, d.Profile.HeightMm,
		d.MarginMm, d.CenterGapMm/2, d.MarginMm, d.MarginMm,
		d.MarginMm, d.MarginMm, d.MarginMm, d.CenterGapMm/2)
}

// buildHeaderCSS sizes the left-page header: caption line, identity rows,
// and the photo box.
func buildHeaderCSS(d layout.Dimensions) string {
	return fmt.Sprintf(`
/* Header */
.caption {
  height: %.3fmm;
  font-size: %.2fpt;
}
.identity-table tr.row-name { height: %.3fmm; }
.identity-table tr.row-kana { height: %.3fmm; }
.identity-table tr.row-birth { height: %.3fmm; }
.identity-table tr.row-address { height: %.3fmm; }
.identity-table tr.row-contact { height: %.3fmm; }
.identity-table th {
  font-size: %.2fpt;
}
.photo-col {
  width: %.3fmm;
}
.photo-box {
  width: %.3fmm;
  height: %.3fmm;
}
`,
		d.CaptionHeightMm, d.CaptionFontSizePt,
		d.NameHeightMm, d.KanaHeightMm, d.BirthGenderHeightMm,
		d.AddressHeightMm, d.ContactHeightMm,
		d.LabelFontSizePt,
		d.PhotoWidthMm,
		d.PhotoWidthMm, d.PhotoHeightMm)
}

// buildTableCSS sizes the ruled history and license tables: column widths,
// the solved uniform row height, and total table heights.
func buildTableCSS(p layout.Plan) string {
	d := p.Dims

	return fmt.Sprintf(`
/* Ruled tables */
.history-table col.col-year { width: %.3fmm; }
.history-table col.col-month { width: %.3fmm; }
.history-table tr { height: %.3fmm; }
.history-table th { font-size: %.2fpt; }
.table-history-left { height: %.3fmm; }
.table-history-right { height: %.3fmm; }
.table-license { height: %.3fmm; }
.section-gap { height: %.3fmm; }
`,
		d.YearColWidthMm, d.MonthColWidthMm,
		p.RowHeightMm, d.LabelFontSizePt,
		p.LeftHistoryTableHeightMm,
		p.RightHistoryTableHeightMm,
		p.LicenseTableHeightMm,
		d.SectionGapMm)
}

// buildFreeTextCSS sizes the two free-text boxes to their allocated heights.
func buildFreeTextCSS(p layout.Plan) string {
	return fmt.Sprintf(`
/* Free-text boxes */
.box-motivation { height: %.3fmm; }
.box-wishes { height: %.3fmm; }
.free-text .box-caption { font-size: %.2fpt; }
`,
		p.MotivationHeightMm, p.WishesHeightMm, p.Dims.LabelFontSizePt)
}

// buildPersonalCSS sizes the preferences strip, or hides it entirely when
// the plan reclaimed its space.
func buildPersonalCSS(p layout.Plan) string {
	if !p.ShowPersonalStrip {
		return `
/* Personal strip hidden */
.personal-strip { display: none; }
`
	}

	return fmt.Sprintf(`
/* Personal strip */
.personal-table { height: %.3fmm; }
.personal-table th { font-size: %.2fpt; }
`,
		p.Dims.PersonalStripHeightMm, p.Dims.LabelFontSizePt)
}

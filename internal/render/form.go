package render

import (
	"fmt"
	"html/template"
	"time"

	"github.com/go-rirekisho/rirekisho/internal/dateutil"
	"github.com/go-rirekisho/rirekisho/internal/layout"
	"github.com/go-rirekisho/rirekisho/internal/resume"
)

// Row wraps a table row with the CSS class the template paints it with.
type Row struct {
	layout.HistoryRow
}

// Class returns the cell class for the row's kind.
func (r Row) Class() string {
	switch r.Kind {
	case layout.RowSectionLabel:
		return "section-label"
	case layout.RowClosing:
		return "closing"
	default:
		return "entry"
	}
}

// Form is the template's complete input: the plan plus every display string,
// already formatted. The template does no logic beyond iteration.
type Form struct {
	Plan layout.Plan

	IssueDate string
	Name      string
	Kana      string
	BirthLine string
	Gender    string
	Address   string
	Phone     string
	Email     string
	PhotoSrc  string

	LeftRows    []Row
	RightRows   []Row
	LicenseRows []Row

	MotivationHTML template.HTML
	WishesHTML     template.HTML

	CommuteTime string
	Dependents  string
	Spouse      string
}

// BuildForm assembles the view model: splits the history rows across the two
// pages at the plan's left capacity, pads every table to its planned row
// count, and formats the date strings with era years.
func BuildForm(plan layout.Plan, doc *resume.Document, issued time.Time) Form {
	split := layout.SplitHistory(resume.BuildHistoryRows(doc), plan.LeftHistoryRows)

	f := Form{
		Plan: plan,

		IssueDate: fmt.Sprintf("%s年%d月%d日現在", dateutil.EraYear(issued), int(issued.Month()), issued.Day()),
		Name:      doc.Identity.Name,
		Kana:      doc.Identity.Kana,
		BirthLine: birthLine(doc, issued),
		Gender:    doc.Identity.Gender,
		Address:   doc.Identity.Address,
		Phone:     doc.Identity.Phone,
		Email:     doc.Identity.Email,
		PhotoSrc:  doc.Identity.Photo,

		LeftRows:    padRows(split.Left, plan.LeftHistoryRows),
		RightRows:   padRows(split.Right, plan.RightHistoryRows),
		LicenseRows: padRows(resume.BuildLicenseRows(doc), plan.LicenseRows),

		MotivationHTML: template.HTML(doc.MotivationHTML), // #nosec G203 -- rendered by goldmark, raw HTML disabled
		WishesHTML:     template.HTML(doc.WishesHTML),     // #nosec G203 -- rendered by goldmark, raw HTML disabled
	}

	if p := doc.Personal; p != nil {
		f.CommuteTime = p.CommuteTime
		f.Dependents = p.Dependents
		f.Spouse = p.Spouse
	}

	return f
}

// birthLine formats 生年月日 as an era date with the age at the issue date,
// e.g. 平成7年4月2日生（満30歳）. An unset or unparseable birthday is shown
// as-is.
func birthLine(doc *resume.Document, issued time.Time) string {
	if doc.Identity.Birthday == "" {
		return ""
	}
	bd, err := dateutil.ParseDate(doc.Identity.Birthday)
	if err != nil {
		return doc.Identity.Birthday
	}
	return fmt.Sprintf("%s年%d月%d日生（満%d歳）",
		dateutil.EraYear(bd), int(bd.Month()), bd.Day(),
		dateutil.Age(bd, issued))
}

// padRows extends rows with empty entries up to n so ruled tables print
// their full grid. Longer slices are kept intact.
func padRows(rows []layout.HistoryRow, n int) []Row {
	out := make([]Row, 0, maxLen(len(rows), n))
	for _, r := range rows {
		out = append(out, Row{r})
	}
	for len(out) < n {
		out = append(out, Row{})
	}
	return out
}

func maxLen(a, b int) int {
	if a > b {
		return a
	}
	return b
}

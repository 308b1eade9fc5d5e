// Package resume parses a Markdown résumé with YAML frontmatter into the
// structured sections the layout solver and renderer consume.
package resume

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/go-rirekisho/rirekisho/internal/dateutil"
)

// Sentinel errors for résumé parsing.
var (
	ErrNoFrontmatter = errors.New("frontmatter not found (expected a leading --- block)")
	ErrFrontmatter   = errors.New("invalid frontmatter")
	ErrInvalidField  = errors.New("invalid résumé field")
)

// SchoolEntry is one education record. End is empty for schools still
// attended (only the entry row is printed).
type SchoolEntry struct {
	Start string `yaml:"start" validate:"required"`
	End   string `yaml:"end,omitempty"`
	Name  string `yaml:"name" validate:"required"`
}

// WorkEntry is one employment record. ToPresent marks an open-ended role:
// no leaving row is printed and the 現在に至る marker covers it.
type WorkEntry struct {
	Start     string `yaml:"start" validate:"required"`
	End       string `yaml:"end,omitempty"`
	Name      string `yaml:"name" validate:"required"`
	ToPresent bool   `yaml:"to_present,omitempty"`
}

// LicenseEntry is one 免許・資格 record.
type LicenseEntry struct {
	Date string `yaml:"date" validate:"required"`
	Name string `yaml:"name" validate:"required"`
}

// Identity is the personal-data header of the form.
type Identity struct {
	Name     string `yaml:"name" validate:"required"`
	Kana     string `yaml:"kana,omitempty"`
	Birthday string `yaml:"birthday,omitempty"`
	Gender   string `yaml:"gender,omitempty"`
	Address  string `yaml:"address,omitempty"`
	Phone    string `yaml:"phone,omitempty"`
	Email    string `yaml:"email,omitempty" validate:"omitempty,email"`
	Photo    string `yaml:"photo,omitempty"`
}

// Personal is the optional preferences strip on the right page.
type Personal struct {
	CommuteTime string `yaml:"commute_time,omitempty"`
	Dependents  string `yaml:"dependents,omitempty"`
	Spouse      string `yaml:"spouse,omitempty"`
}

// frontmatter mirrors the YAML block of a résumé file.
type frontmatter struct {
	Identity  Identity       `yaml:"identity"`
	Education []SchoolEntry  `yaml:"education,omitempty"`
	Work      []WorkEntry    `yaml:"work,omitempty"`
	Licenses  []LicenseEntry `yaml:"licenses,omitempty"`

	// Pre-formatted rows override the structured sections; their length is
	// the demand, verbatim.
	HistoryRows []string `yaml:"history_rows,omitempty"`
	LicenseRows []string `yaml:"license_rows,omitempty"`

	Personal *Personal `yaml:"personal,omitempty"`
}

// Document is a fully parsed résumé.
type Document struct {
	Identity  Identity
	Education []SchoolEntry
	Work      []WorkEntry
	Licenses  []LicenseEntry

	HistoryRows []string
	LicenseRows []string

	Personal *Personal

	// Free-text bodies from the Markdown sections, already rendered to HTML.
	MotivationHTML string
	WishesHTML     string
}

// validate is shared across parses; validator.Validate is safe for
// concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// checkDocument validates identity and entry fields, including date formats
// the struct tags cannot express.
func checkDocument(doc *Document) error {
	if err := validate.Struct(doc.Identity); err != nil {
		return fmt.Errorf("%w: identity: %v", ErrInvalidField, err)
	}
	if doc.Identity.Birthday != "" {
		if _, err := dateutil.ParseDate(doc.Identity.Birthday); err != nil {
			return fmt.Errorf("%w: birthday: %v", ErrInvalidField, err)
		}
	}
	for i, e := range doc.Education {
		if err := validate.Struct(e); err != nil {
			return fmt.Errorf("%w: education[%d]: %v", ErrInvalidField, i, err)
		}
		if err := checkYearMonths(e.Start, e.End); err != nil {
			return fmt.Errorf("%w: education[%d]: %v", ErrInvalidField, i, err)
		}
	}
	for i, w := range doc.Work {
		if err := validate.Struct(w); err != nil {
			return fmt.Errorf("%w: work[%d]: %v", ErrInvalidField, i, err)
		}
		if err := checkYearMonths(w.Start, w.End); err != nil {
			return fmt.Errorf("%w: work[%d]: %v", ErrInvalidField, i, err)
		}
	}
	for i, l := range doc.Licenses {
		if err := validate.Struct(l); err != nil {
			return fmt.Errorf("%w: licenses[%d]: %v", ErrInvalidField, i, err)
		}
		if _, err := dateutil.ParseYearMonth(l.Date); err != nil {
			return fmt.Errorf("%w: licenses[%d]: %v", ErrInvalidField, i, err)
		}
	}
	return nil
}

func checkYearMonths(start, end string) error {
	if _, err := dateutil.ParseYearMonth(start); err != nil {
		return err
	}
	if end != "" {
		if _, err := dateutil.ParseYearMonth(end); err != nil {
			return err
		}
	}
	return nil
}

// Age returns the 満年齢 on the given day, or -1 when no birthday is set.
func (d *Document) Age(on time.Time) int {
	if d.Identity.Birthday == "" {
		return -1
	}
	birthday, err := dateutil.ParseDate(d.Identity.Birthday)
	if err != nil {
		return -1
	}
	return dateutil.Age(birthday, on)
}

// Package dateutil provides the Japanese calendar arithmetic the form
// needs: year/month parsing, era (元号) conversion, and age calculation.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate indicates a date that is not in YYYY-MM or YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid date")

// YearMonth is a calendar month without a day component, the resolution the
// 学歴・職歴 and 免許・資格 tables work at.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth parses "YYYY-MM" or "YYYY-MM-DD" (day ignored).
func ParseYearMonth(s string) (YearMonth, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 3)
	if len(parts) < 2 {
		return YearMonth{}, fmt.Errorf("%w: %q (want YYYY-MM)", ErrInvalidDate, s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return YearMonth{}, fmt.Errorf("%w: %q (bad year)", ErrInvalidDate, s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return YearMonth{}, fmt.Errorf("%w: %q (bad month)", ErrInvalidDate, s)
	}
	return YearMonth{Year: year, Month: time.Month(month)}, nil
}

// ParseDate parses a full "YYYY-MM-DD" date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return t, nil
}

// era is one Japanese era, addressed by its first day.
type era struct {
	name  string
	start time.Time
}

// eras newest-first; lookup walks until it finds an era starting on or
// before the date. Meiji is the oldest era the form supports.
var eras = []era{
	{name: "令和", start: time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC)},
	{name: "平成", start: time.Date(1989, 1, 8, 0, 0, 0, 0, time.UTC)},
	{name: "昭和", start: time.Date(1926, 12, 25, 0, 0, 0, 0, time.UTC)},
	{name: "大正", start: time.Date(1912, 7, 30, 0, 0, 0, 0, time.UTC)},
	{name: "明治", start: time.Date(1868, 1, 25, 0, 0, 0, 0, time.UTC)},
}

// EraYear formats a date as a Japanese era year, e.g. "令和2". The first
// year of an era is written 元年 by convention.
func EraYear(t time.Time) string {
	for _, e := range eras {
		if !t.Before(e.start) {
			y := t.Year() - e.start.Year() + 1
			if y == 1 {
				return e.name + "元"
			}
			return e.name + strconv.Itoa(y)
		}
	}
	// Predates the supported eras; fall back to the western year.
	return strconv.Itoa(t.Year())
}

// EraYearMonth formats ym as an era year, e.g. "平成31" for 2019-04.
func EraYearMonth(ym YearMonth) string {
	return EraYear(time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC))
}

// Age is the full years between birthday and on, the 満年齢 printed next to
// the birth date.
func Age(birthday, on time.Time) int {
	years := on.Year() - birthday.Year()
	if on.Month() < birthday.Month() ||
		(on.Month() == birthday.Month() && on.Day() < birthday.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

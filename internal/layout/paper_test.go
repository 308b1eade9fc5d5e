package layout

// Notes:
// - ParsePaper: case-insensitive resolution, unknown names rejected
// - DimensionsFor: every dimension pre-multiplied by the paper scale
// - LeftCapacity: grows as the row height shrinks, never below one row

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// ---------------------------------------------------------------------------
// TestParsePaper - Paper Name Resolution
// ---------------------------------------------------------------------------

func TestParsePaper(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Paper
		ok    bool
	}{
		{name: "lowercase a3", input: "a3", want: PaperA3, ok: true},
		{name: "uppercase A4", input: "A4", want: PaperA4, ok: true},
		{name: "mixed case Letter", input: "Letter", want: PaperLetter, ok: true},
		{name: "b4", input: "b4", want: PaperB4, ok: true},
		{name: "b5", input: "b5", want: PaperB5, ok: true},
		{name: "unknown size", input: "a5", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParsePaper(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParsePaper(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParsePaper(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDimensionsFor - Scaled Dimension Lookup
// ---------------------------------------------------------------------------

func TestDimensionsForScale(t *testing.T) {
	t.Parallel()

	for _, p := range Papers {
		p := p
		t.Run(string(p), func(t *testing.T) {
			t.Parallel()

			d := DimensionsFor(p)
			s := d.Profile.Scale

			if p == PaperA3 && s != 1.0 {
				t.Errorf("A3 scale = %v, want 1.0", s)
			}
			if p != PaperA3 && s >= 1.0 {
				t.Errorf("%s scale = %v, want < 1.0", p, s)
			}

			if !almostEqual(d.DefaultRowHeightMm, baseRowDefaultMm*s) {
				t.Errorf("DefaultRowHeightMm = %v, want %v", d.DefaultRowHeightMm, baseRowDefaultMm*s)
			}
			if !almostEqual(d.MinRowHeightMm, baseRowMinMm*s) {
				t.Errorf("MinRowHeightMm = %v, want %v", d.MinRowHeightMm, baseRowMinMm*s)
			}
			if !almostEqual(d.DefaultFontSizePt, baseFontDefaultPt*s) {
				t.Errorf("DefaultFontSizePt = %v, want %v", d.DefaultFontSizePt, baseFontDefaultPt*s)
			}
			if d.MinRowHeightMm >= d.DefaultRowHeightMm {
				t.Errorf("MinRowHeightMm %v not below DefaultRowHeightMm %v", d.MinRowHeightMm, d.DefaultRowHeightMm)
			}
			if d.DefaultRowHeightMm >= d.MaxRowHeightMm {
				t.Errorf("DefaultRowHeightMm %v not below MaxRowHeightMm %v", d.DefaultRowHeightMm, d.MaxRowHeightMm)
			}
			if d.PreferredHistoryRows < 1 || d.PreferredLicenseRows < 1 {
				t.Errorf("preferred row counts must be >= 1, got %d/%d", d.PreferredHistoryRows, d.PreferredLicenseRows)
			}
		})
	}
}

func TestDimensionsForUnknownFallsBackToA4(t *testing.T) {
	t.Parallel()

	d := DimensionsFor(Paper("postcard"))
	if d.Profile.Paper != PaperA4 {
		t.Errorf("unknown paper resolved to %q, want %q", d.Profile.Paper, PaperA4)
	}
}

// ---------------------------------------------------------------------------
// TestPageGeometry - Derived Page Measurements
// ---------------------------------------------------------------------------

func TestPageGeometry(t *testing.T) {
	t.Parallel()

	for _, p := range Papers {
		p := p
		t.Run(string(p), func(t *testing.T) {
			t.Parallel()

			d := DimensionsFor(p)
			if d.PageWidthMm() <= 0 {
				t.Errorf("PageWidthMm = %v, want > 0", d.PageWidthMm())
			}
			if d.PageHeightMm() <= 0 {
				t.Errorf("PageHeightMm = %v, want > 0", d.PageHeightMm())
			}
			if d.HeaderHeightMm() >= d.PageHeightMm() {
				t.Errorf("header %v does not leave room on page %v", d.HeaderHeightMm(), d.PageHeightMm())
			}

			// Two pages plus gap and margins reconstruct the sheet width.
			sheet := 2*d.PageWidthMm() + d.CenterGapMm + 2*d.MarginMm
			if !almostEqual(sheet, d.Profile.WidthMm) {
				t.Errorf("page widths sum to %v, want sheet width %v", sheet, d.Profile.WidthMm)
			}
		})
	}
}

func TestLeftCapacity(t *testing.T) {
	t.Parallel()

	d := DimensionsFor(PaperA3)

	atDefault := d.LeftCapacity(d.DefaultRowHeightMm)
	atMin := d.LeftCapacity(d.MinRowHeightMm)
	if atMin <= atDefault {
		t.Errorf("capacity at min height %d should exceed capacity at default %d", atMin, atDefault)
	}

	// Absurdly tall rows still leave one ruled row.
	if got := d.LeftCapacity(10000); got != 1 {
		t.Errorf("LeftCapacity(10000) = %d, want 1", got)
	}
}

package rirekisho

import "time"

// Input contains generation parameters.
type Input struct {
	Markdown     string // Markdown résumé with YAML frontmatter (required)
	Paper        string // "a3", "b4", "a4", "b5", "letter" (default: "a3")
	HidePersonal bool   // omit the personal preferences strip
	CSS          string // extra CSS appended after the theme (optional)
	HTMLOnly     bool   // skip PDF generation (for debugging)
}

// Result contains the generated document.
type Result struct {
	HTML []byte
	PDF  []byte // nil when HTMLOnly was set
}

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	timeout       time.Duration
	styleInput    string
	assetPath     string
	issueDate     time.Time
	resolvedStyle string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// defaultStyleName is the embedded theme loaded when no style is configured.
const defaultStyleName = "default"

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("rirekisho: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}

// WithStyle sets the form theme. Accepts a theme name (resolved through the
// asset loader), a CSS file path, or raw CSS content.
func WithStyle(style string) Option {
	return func(g *Generator) {
		g.cfg.styleInput = style
	}
}

// WithAssetPath sets a directory whose styles/ subdirectory shadows the
// embedded themes.
func WithAssetPath(path string) Option {
	return func(g *Generator) {
		g.cfg.assetPath = path
	}
}

// WithIssueDate fixes the 現在 date printed in the form caption. Zero means
// time.Now at generation, which is the default.
func WithIssueDate(t time.Time) Option {
	return func(g *Generator) {
		g.cfg.issueDate = t
	}
}

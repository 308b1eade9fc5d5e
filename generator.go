package rirekisho

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rirekisho/rirekisho/internal/assets"
	"github.com/go-rirekisho/rirekisho/internal/fileutil"
	"github.com/go-rirekisho/rirekisho/internal/layout"
	"github.com/go-rirekisho/rirekisho/internal/render"
	"github.com/go-rirekisho/rirekisho/internal/resume"
)

// Generator runs the résumé pipeline: parse, solve the layout, paint the
// form, render to PDF. Create with NewGenerator, use Generate, and Close
// when done.
type Generator struct {
	cfg          generatorConfig
	assetLoader  assets.StyleLoader
	pdfConverter pdfConverter
}

// NewGenerator creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithStyle,
// WithAssetPath). Returns an error if the theme cannot be resolved.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg:         generatorConfig{timeout: defaultTimeout},
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.cfg.assetPath != "" {
		resolver, err := assets.NewResolver(g.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		g.assetLoader = resolver
	}

	if err := g.resolveStyle(); err != nil {
		return nil, err
	}

	// Created here rather than injected by tests.
	if g.pdfConverter == nil {
		g.pdfConverter = newRodConverter(g.cfg.timeout)
	}

	return g, nil
}

// Generate runs the full pipeline and returns the result containing HTML
// and PDF. The context is used for cancellation and timeout.
// If input.HTMLOnly is true, PDF generation is skipped.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}
	paper, err := resolvePaper(input.Paper)
	if err != nil {
		return nil, err
	}

	doc, err := resume.Parse(ctx, input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("parsing résumé: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	plan := layout.BuildPlan(layout.Request{
		Paper:        paper,
		HidePersonal: input.HidePersonal,
		Counts:       resume.CountDemand(doc),
	})
	if err := layout.Validate(plan); err != nil {
		return nil, err
	}

	issued := g.cfg.issueDate
	if issued.IsZero() {
		issued = time.Now()
	}

	htmlContent, err := render.HTML(render.BuildForm(plan, doc, issued))
	if err != nil {
		return nil, fmt.Errorf("rendering form: %w", err)
	}

	// Order matters: theme first (base), plan geometry on top, user CSS
	// last so it can override both.
	cssContent := g.cfg.resolvedStyle + "\n" + render.BuildCSS(plan)
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}
	htmlContent = render.InjectCSS(htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &Result{HTML: []byte(htmlContent)}

	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := g.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{
		// Each PDF page is half the selected sheet; the spread prints on
		// two pages.
		PageWidthMm:  plan.Dims.Profile.WidthMm / 2,
		PageHeightMm: plan.Dims.Profile.HeightMm,
	})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (g *Generator) Close() error {
	if g.pdfConverter != nil {
		return g.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS
// content. Called during NewGenerator after options are applied and the
// asset loader is configured.
func (g *Generator) resolveStyle() error {
	input := g.cfg.styleInput
	if input == "" {
		css, err := g.assetLoader.LoadStyle(defaultStyleName)
		if err != nil {
			return fmt.Errorf("loading default theme: %w", err)
		}
		g.cfg.resolvedStyle = css
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		g.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		g.cfg.resolvedStyle = input
		return nil
	}

	// Theme name -> use asset loader
	css, err := g.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading theme %q: %w", input, err)
	}
	g.cfg.resolvedStyle = css
	return nil
}

// resolvePaper maps the input paper name to a layout paper, defaulting to
// the full-size A3 spread.
func resolvePaper(name string) (layout.Paper, error) {
	if name == "" {
		return layout.PaperA3, nil
	}
	p, ok := layout.ParsePaper(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPaper, name)
	}
	return p, nil
}

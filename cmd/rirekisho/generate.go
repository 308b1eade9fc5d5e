package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-rirekisho/rirekisho"
	"github.com/go-rirekisho/rirekisho/internal/config"
	"github.com/go-rirekisho/rirekisho/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrReadCSS            = errors.New("failed to read CSS file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// fileToGenerate represents a single résumé to process.
type fileToGenerate struct {
	inputPath  string
	outputPath string
}

// generationResult holds the outcome of a single generation.
type generationResult struct {
	inputPath  string
	outputPath string
	err        error
	duration   time.Duration
}

// runGenerate orchestrates the generation: config, discovery, batch.
func runGenerate(ctx context.Context, args []string, fl *cliFlags, pool Pool, stderr io.Writer) error {
	if fl.workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, fl.workers)
	}

	cfg := config.DefaultConfig()
	if fl.config != "" {
		var err error
		cfg, err = config.LoadConfig(fl.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(fl.config)))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI flags win over config values.
	mergeFlags(fl, cfg)

	extraCSS, err := readExtraCSS(fl.cssFile)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(args, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, resolveOutputDir(fl.output, cfg), fl.htmlOnly)
	if err != nil {
		return err
	}

	results := generateBatch(ctx, files, generationParams{
		paper:        cfg.Form.Paper,
		hidePersonal: cfg.Form.HidePersonal,
		css:          extraCSS,
		htmlOnly:     fl.htmlOnly,
	}, pool)

	return reportResults(results, fl.quiet, cfg.Form.Paper, stderr)
}

// generationParams groups per-file parameters shared across the batch.
type generationParams struct {
	paper        string
	hidePersonal bool
	css          string
	htmlOnly     bool
}

// mergeFlags overlays CLI flags onto the config. Flags win when set.
func mergeFlags(fl *cliFlags, cfg *config.Config) {
	if fl.paper != "" {
		cfg.Form.Paper = fl.paper
	}
	if fl.hidePersonal {
		cfg.Form.HidePersonal = true
	}
	if fl.style != "" {
		cfg.CSS.Style = fl.style
	}
	if fl.assetPath != "" {
		cfg.Assets.BasePath = fl.assetPath
	}
	if fl.output != "" {
		cfg.Output.DefaultDir = fl.output
	}
}

// generatorOptions converts merged config into library options.
func generatorOptions(fl *cliFlags, cfg *config.Config) []rirekisho.Option {
	var opts []rirekisho.Option
	if fl.timeout > 0 {
		opts = append(opts, rirekisho.WithTimeout(fl.timeout))
	}
	if cfg.CSS.Style != "" {
		opts = append(opts, rirekisho.WithStyle(cfg.CSS.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, rirekisho.WithAssetPath(cfg.Assets.BasePath))
	}
	return opts
}

// readExtraCSS loads the --css file, if any.
func readExtraCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(content), nil
}

// resolveInputPath picks the input from positional args or the config's
// default input directory.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir picks the output directory: flag, then config, then empty
// (next to each input file).
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// discoverFiles expands the input path into the list of résumés to convert.
// A file is used directly; a directory contributes every .md file in it
// (non-recursive).
func discoverFiles(inputPath, outputDir string, htmlOnly bool) ([]fileToGenerate, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	ext := ".pdf"
	if htmlOnly {
		ext = ".html"
	}

	if !info.IsDir() {
		if !isMarkdownFile(inputPath) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, inputPath)
		}
		return []fileToGenerate{{
			inputPath:  inputPath,
			outputPath: outputPathFor(inputPath, outputDir, ext),
		}}, nil
	}

	entries, err := os.ReadDir(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	var files []fileToGenerate
	for _, e := range entries {
		if e.IsDir() || !isMarkdownFile(e.Name()) {
			continue
		}
		in := filepath.Join(inputPath, e.Name())
		files = append(files, fileToGenerate{
			inputPath:  in,
			outputPath: outputPathFor(in, outputDir, ext),
		})
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no markdown files in %s", ErrNoInput, inputPath)
	}
	return files, nil
}

// isMarkdownFile reports whether path has a markdown extension.
func isMarkdownFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// outputPathFor swaps the extension and optionally redirects to outputDir.
func outputPathFor(inputPath, outputDir, ext string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ext
	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}
	return filepath.Join(outputDir, base)
}

// generateBatch converts every file, running up to pool.Size() generations
// in parallel. Results are returned in completion order.
func generateBatch(ctx context.Context, files []fileToGenerate, params generationParams, pool Pool) []generationResult {
	results := make([]generationResult, 0, len(files))

	var wg sync.WaitGroup
	resultCh := make(chan generationResult, len(files))

	for _, f := range files {
		wg.Add(1)
		go func(f fileToGenerate) {
			defer wg.Done()
			resultCh <- generateOne(ctx, f, params, pool)
		}(f)
	}

	wg.Wait()
	close(resultCh)

	for r := range resultCh {
		results = append(results, r)
	}
	return results
}

// generateOne converts a single résumé using a pooled generator.
func generateOne(ctx context.Context, f fileToGenerate, params generationParams, pool Pool) generationResult {
	start := time.Now()
	result := generationResult{inputPath: f.inputPath, outputPath: f.outputPath}

	g, err := pool.Acquire()
	if err != nil {
		result.err = err
		result.duration = time.Since(start)
		return result
	}
	defer pool.Release(g)

	markdown, err := os.ReadFile(f.inputPath) // #nosec G304 -- discovered from user input
	if err != nil {
		result.err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.duration = time.Since(start)
		return result
	}

	res, err := g.Generate(ctx, rirekisho.Input{
		Markdown:     string(markdown),
		Paper:        params.paper,
		HidePersonal: params.hidePersonal,
		CSS:          params.css,
		HTMLOnly:     params.htmlOnly,
	})
	if err != nil {
		result.err = fmt.Errorf("%s: %w", f.inputPath, err)
		result.duration = time.Since(start)
		return result
	}

	output := res.PDF
	if params.htmlOnly {
		output = res.HTML
	}

	if err := writeOutput(f.outputPath, output); err != nil {
		result.err = err
	}
	result.duration = time.Since(start)
	return result
}

// writeOutput creates the output directory if needed and writes the document.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
	}
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// reportResults prints per-file outcomes and returns the first error, with
// an actionable hint appended where one exists.
func reportResults(results []generationResult, quiet bool, paper string, stderr io.Writer) error {
	var firstErr error
	failed := 0

	for _, r := range results {
		switch {
		case r.err != nil:
			failed++
			fmt.Fprintf(stderr, "error: %v\n", r.err)
			if firstErr == nil {
				firstErr = r.err
			}
		case !quiet:
			fmt.Fprintf(stderr, "%s -> %s (%s)\n", r.inputPath, r.outputPath, r.duration.Round(time.Millisecond))
		}
	}

	if firstErr == nil {
		return nil
	}

	if len(results) > 1 {
		fmt.Fprintf(stderr, "%d of %d files failed\n", failed, len(results))
	}

	switch {
	case errors.Is(firstErr, rirekisho.ErrOverflow):
		return fmt.Errorf("%w%s", firstErr, hints.ForOverflow(paper))
	case errors.Is(firstErr, rirekisho.ErrBrowserConnect):
		return fmt.Errorf("%w%s", firstErr, hints.ForBrowserConnect())
	case errors.Is(firstErr, rirekisho.ErrPageLoad), errors.Is(firstErr, rirekisho.ErrPDFGeneration):
		return fmt.Errorf("%w%s", firstErr, hints.ForTimeout())
	}
	return firstErr
}

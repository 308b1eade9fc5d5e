package main

import (
	"errors"
	"os"

	"github.com/go-rirekisho/rirekisho"
	"github.com/go-rirekisho/rirekisho/internal/config"
	"github.com/go-rirekisho/rirekisho/internal/resume"
)

// Exit codes for the rirekisho CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful generation
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or résumé fields
	ExitIO       = 3 // File not found, permission denied
	ExitBrowser  = 4 // Browser/Chrome errors
	ExitOverflow = 5 // Data does not fit the selected paper
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Layout overflow (exit 5): the input is valid but does not fit.
	if errors.Is(err, rirekisho.ErrOverflow) {
		return ExitOverflow
	}

	// Browser errors (exit 4)
	if errors.Is(err, rirekisho.ErrBrowserConnect) ||
		errors.Is(err, rirekisho.ErrPageCreate) ||
		errors.Is(err, rirekisho.ErrPageLoad) ||
		errors.Is(err, rirekisho.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidPaper) ||
		errors.Is(err, rirekisho.ErrEmptyMarkdown) ||
		errors.Is(err, rirekisho.ErrInvalidPaper) ||
		errors.Is(err, rirekisho.ErrInvalidAssetPath) ||
		errors.Is(err, resume.ErrNoFrontmatter) ||
		errors.Is(err, resume.ErrFrontmatter) ||
		errors.Is(err, resume.ErrInvalidField) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}

package rirekisho

import (
	"errors"

	"github.com/go-rirekisho/rirekisho/internal/layout"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("résumé content cannot be empty")
	ErrInvalidPaper  = errors.New("invalid paper size")

	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// ErrOverflow reports that the résumé data cannot fit on the selected paper.
// The message is user-facing and printed verbatim.
var ErrOverflow = layout.ErrOverflow

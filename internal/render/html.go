package render

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrTemplate indicates the form template failed to execute.
var ErrTemplate = errors.New("failed to render form template")

//go:embed templates/form.html
var formTemplate string

// formTmpl is parsed once at init; the template is static and a parse
// failure is a programming error.
var formTmpl = template.Must(template.New("form").Parse(formTemplate))

// HTML executes the form template for f and returns the document markup.
// The result carries no styling; callers inject the theme and the plan's
// geometry CSS afterwards.
func HTML(f Form) (string, error) {
	var buf strings.Builder
	if err := formTmpl.Execute(&buf, f); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	return buf.String(), nil
}

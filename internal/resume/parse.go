package resume

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-rirekisho/rirekisho/internal/yamlutil"
)

const frontmatterFence = "---"

// Body section headings recognized as free-text boxes. Both the Japanese
// form labels and romanized aliases are accepted.
var (
	motivationHeadings = []string{"志望動機", "motivation"}
	wishesHeadings     = []string{"本人希望欄", "本人希望", "wishes", "notes"}
)

// Parse splits markdown into frontmatter and body, unmarshals the
// structured sections, validates them, and renders the free-text body
// sections to HTML.
func Parse(ctx context.Context, markdown string) (*Document, error) {
	fmBytes, body, err := splitFrontmatter(markdown)
	if err != nil {
		return nil, err
	}

	var fm frontmatter
	if err := yamlutil.UnmarshalStrict(fmBytes, &fm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontmatter, err)
	}

	doc := &Document{
		Identity:    fm.Identity,
		Education:   fm.Education,
		Work:        fm.Work,
		Licenses:    fm.Licenses,
		HistoryRows: fm.HistoryRows,
		LicenseRows: fm.LicenseRows,
		Personal:    fm.Personal,
	}
	if err := checkDocument(doc); err != nil {
		return nil, err
	}

	sections := splitBodySections(body)
	if sec := pickSection(sections, motivationHeadings); sec != "" {
		doc.MotivationHTML, err = renderMarkdown(ctx, sec)
		if err != nil {
			return nil, fmt.Errorf("rendering motivation section: %w", err)
		}
	}
	if sec := pickSection(sections, wishesHeadings); sec != "" {
		doc.WishesHTML, err = renderMarkdown(ctx, sec)
		if err != nil {
			return nil, fmt.Errorf("rendering wishes section: %w", err)
		}
	}

	return doc, nil
}

// splitFrontmatter extracts the leading --- fenced YAML block. The opening
// fence must be the first line; everything up to the closing fence is YAML.
func splitFrontmatter(markdown string) (yamlBytes []byte, body string, err error) {
	content := strings.TrimPrefix(markdown, "\uFEFF")
	lines := strings.SplitAfter(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontmatterFence {
		return nil, "", ErrNoFrontmatter
	}

	var fm strings.Builder
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterFence {
			return []byte(fm.String()), strings.Join(lines[i+1:], ""), nil
		}
		fm.WriteString(lines[i])
	}
	return nil, "", ErrNoFrontmatter
}

// splitBodySections cuts the markdown body into "## Heading" sections.
// Text before the first heading is ignored.
func splitBodySections(body string) map[string]string {
	sections := make(map[string]string)
	var current string
	var buf strings.Builder

	flush := func() {
		if current != "" {
			sections[normalizeHeading(current)] = strings.TrimSpace(buf.String())
		}
		buf.Reset()
	}

	for _, line := range strings.Split(body, "\n") {
		if heading, ok := cutHeading(line); ok {
			flush()
			current = heading
			continue
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	flush()
	return sections
}

func cutHeading(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "## ") {
		return "", false
	}
	return strings.TrimSpace(trimmed[3:]), true
}

func normalizeHeading(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func pickSection(sections map[string]string, names []string) string {
	for _, n := range names {
		if s, ok := sections[normalizeHeading(n)]; ok {
			return s
		}
	}
	return ""
}

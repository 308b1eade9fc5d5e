package resume

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrMarkdownRender indicates the free-text Markdown could not be converted.
var ErrMarkdownRender = errors.New("markdown rendering failed")

// md is the shared goldmark instance for free-text sections. GFM covers the
// lists and tables people paste into 本人希望欄; highlighting covers code in
// engineers' motivation sections. goldmark.Markdown is safe for concurrent
// use once built.
var (
	mdOnce sync.Once
	md     goldmark.Markdown
)

func markdownConverter() goldmark.Markdown {
	mdOnce.Do(func() {
		md = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
				highlighting.NewHighlighting(
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(true),
					),
				),
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(), // free text keeps its line breaks on the form
				html.WithXHTML(),
				// WithUnsafe() intentionally not used; résumé files may come
				// from untrusted templates.
			),
		)
	})
	return md
}

// renderMarkdown converts a free-text section to an HTML fragment.
// Goldmark has no native context support, so conversion runs in a goroutine
// and the select honors cancellation.
func renderMarkdown(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := markdownConverter().Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Package rirekisho generates Japanese 履歴書 résumés as print-ready PDFs.
//
// A résumé is written as Markdown with YAML frontmatter. The library parses
// it, solves the two-page layout for the selected paper size, paints the
// classic ruled form as HTML, and renders it with headless Chrome:
//
//	g, err := rirekisho.NewGenerator()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer g.Close()
//
//	res, err := g.Generate(ctx, rirekisho.Input{Markdown: src, Paper: "a4"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("resume.pdf", res.PDF, 0o644)
//
// Layout is deterministic: the same input and paper always produce the same
// geometry. When the data cannot fit even after row reduction, Generate
// fails with ErrOverflow and no document is produced.
//
// For parallel batch generation use GeneratorPool; each generator owns its
// browser instance.
package rirekisho

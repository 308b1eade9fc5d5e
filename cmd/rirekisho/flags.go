package main

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every parsed command-line flag.
type cliFlags struct {
	paper        string
	style        string
	cssFile      string
	assetPath    string
	hidePersonal bool
	htmlOnly     bool

	output  string
	config  string
	timeout time.Duration
	workers int

	quiet   bool
	verbose bool
	version bool
}

const usageText = `Usage: rirekisho [flags] <input.md | directory>

Generates a Japanese 履歴書 PDF from a Markdown résumé with YAML frontmatter.
When a directory is given, every .md file in it is converted.

Flags:
`

// newFlagSet builds the flag set; separate from parsing for usage printing.
func newFlagSet(fl *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("rirekisho", flag.ContinueOnError)

	fs.StringVarP(&fl.paper, "paper", "p", "", "paper size: a3, b4, a4, b5, letter (default a3)")
	fs.StringVarP(&fl.style, "style", "s", "", "form theme: name, CSS file path, or raw CSS")
	fs.StringVar(&fl.cssFile, "css", "", "extra CSS file appended after the theme")
	fs.StringVar(&fl.assetPath, "asset-path", "", "directory whose styles/ shadows embedded themes")
	fs.BoolVar(&fl.hidePersonal, "hide-personal", false, "omit the personal preferences strip")
	fs.BoolVar(&fl.htmlOnly, "html-only", false, "write HTML instead of PDF (debugging)")

	fs.StringVarP(&fl.output, "output", "o", "", "output directory (default: next to input)")
	fs.StringVarP(&fl.config, "config", "c", "", "config file path or name")
	fs.DurationVar(&fl.timeout, "timeout", 0, "PDF rendering timeout (default 30s)")
	fs.IntVarP(&fl.workers, "workers", "w", 0, "parallel browser instances (default: auto)")

	fs.BoolVarP(&fl.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&fl.verbose, "verbose", "v", false, "verbose progress output")
	fs.BoolVar(&fl.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fmt.Fprintln(fs.Output(), fs.FlagUsages())
	}

	return fs
}

// parseFlags parses argv (including the program name at argv[0]).
// Returns the flags and the positional arguments.
func parseFlags(argv []string) (*cliFlags, []string, error) {
	fl := &cliFlags{}
	fs := newFlagSet(fl)

	if err := fs.Parse(argv[1:]); err != nil {
		return nil, nil, err
	}

	return fl, fs.Args(), nil
}

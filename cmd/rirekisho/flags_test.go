package main

// Notes:
// - parseFlags: long/short forms, defaults, positional passthrough

import (
	"testing"
	"time"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	argv := []string{"rirekisho",
		"--paper", "a4",
		"-s", "default",
		"--hide-personal",
		"--html-only",
		"-o", "out",
		"--timeout", "45s",
		"-w", "2",
		"-q",
		"resume.md",
	}

	fl, args, err := parseFlags(argv)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	if fl.paper != "a4" || fl.style != "default" || !fl.hidePersonal || !fl.htmlOnly {
		t.Errorf("form flags = %+v", fl)
	}
	if fl.output != "out" || fl.timeout != 45*time.Second || fl.workers != 2 || !fl.quiet {
		t.Errorf("runtime flags = %+v", fl)
	}
	if len(args) != 1 || args[0] != "resume.md" {
		t.Errorf("positional args = %v", args)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	fl, args, err := parseFlags([]string{"rirekisho", "resume.md"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	if fl.paper != "" || fl.style != "" || fl.hidePersonal || fl.htmlOnly || fl.workers != 0 {
		t.Errorf("defaults = %+v", fl)
	}
	if fl.timeout != 0 {
		t.Errorf("timeout default = %v, want 0 (library default applies)", fl.timeout)
	}
	if len(args) != 1 {
		t.Errorf("args = %v", args)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"rirekisho", "--watermark", "x"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}

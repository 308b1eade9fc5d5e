package fileutil

// Notes:
// - WriteTempFile: content round-trip, cleanup removes the file
// - ValidateExtension: traversal and null-byte rejection
// - IsFilePath / IsCSS: style-input classification heuristics

import (
	"errors"
	"os"
	"testing"
)

// ---------------------------------------------------------------------------
// TestWriteTempFile - Temp File Lifecycle
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	path, cleanup, err := WriteTempFile("<html></html>", "html")
	if err != nil {
		t.Fatalf("WriteTempFile: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(content) != "<html></html>" {
		t.Errorf("content = %q, want %q", content, "<html></html>")
	}

	cleanup()
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("cleanup did not remove %s", path)
	}
}

func TestWriteTempFileRejectsBadExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ext  string
		want error
	}{
		{name: "empty", ext: "", want: ErrExtensionEmpty},
		{name: "path separator", ext: "a/b", want: ErrExtensionPathTraversal},
		{name: "backslash", ext: `a\b`, want: ErrExtensionPathTraversal},
		{name: "null byte", ext: "a\x00b", want: ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := WriteTempFile("x", tt.ext)
			if !errors.Is(err, tt.want) {
				t.Errorf("WriteTempFile(ext=%q) err = %v, want %v", tt.ext, err, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPathHeuristics - Style Input Classification
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"default", false},
		{"my-style", false},
		{"./custom.css", true},
		{"../shared/style.css", true},
		{"/absolute/path.css", true},
		{`C:\windows\path.css`, true},
		{"sub/dir", true},
	}

	for _, tt := range tests {
		tt := tt
		if got := IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsCSS(t *testing.T) {
	t.Parallel()

	if !IsCSS("body { color: red }") {
		t.Error("CSS content not recognized")
	}
	if IsCSS("classic") {
		t.Error("style name misclassified as CSS")
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	if FileExists(t.TempDir()) {
		t.Error("directory reported as regular file")
	}
	if FileExists("/nonexistent/definitely-not-here") {
		t.Error("missing path reported as existing")
	}

	path, cleanup, err := WriteTempFile("x", "txt")
	if err != nil {
		t.Fatalf("WriteTempFile: %v", err)
	}
	defer cleanup()
	if !FileExists(path) {
		t.Errorf("existing file %s not reported", path)
	}
}

package assets

// Notes:
// - ValidateAssetName: separator/dot/traversal rejection
// - EmbeddedLoader: default theme present, unknown names
// - FilesystemLoader: base path validation, containment
// - Resolver: custom-first with embedded fallback

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "simple name", input: "default", wantErr: nil},
		{name: "name with hyphen", input: "my-theme", wantErr: nil},
		{name: "name with underscore", input: "my_theme", wantErr: nil},
		{name: "empty name", input: "", wantErr: ErrInvalidAssetName},
		{name: "forward slash", input: "path/to/theme", wantErr: ErrInvalidAssetName},
		{name: "backslash", input: "path\\theme", wantErr: ErrInvalidAssetName},
		{name: "parent traversal", input: "../secret", wantErr: ErrInvalidAssetName},
		{name: "extension smuggling", input: "theme.css", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestEmbeddedLoaderLoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	css, err := loader.LoadStyle("default")
	if err != nil {
		t.Fatalf("LoadStyle(default) error = %v", err)
	}
	if !strings.Contains(css, ".history-table") {
		t.Error("default theme missing history table ruling")
	}

	if _, err := loader.LoadStyle("no-such-theme"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("unknown theme error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadStyle("../default"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("traversal name error = %v, want ErrInvalidAssetName", err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		if _, err := NewFilesystemLoader(t.TempDir()); err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewFilesystemLoader(""); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewFilesystemLoader("/nonexistent/path/abc123xyz"); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "f.txt")
		if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := NewFilesystemLoader(file); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestFilesystemLoaderLoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stylesDir := filepath.Join(dir, "styles")
	if err := os.MkdirAll(stylesDir, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(stylesDir, "corporate.css"), []byte("body { color: navy; }"), 0o600); err != nil {
		t.Fatal(err)
	}

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	css, err := loader.LoadStyle("corporate")
	if err != nil {
		t.Fatalf("LoadStyle(corporate) error = %v", err)
	}
	if css != "body { color: navy; }" {
		t.Errorf("LoadStyle content = %q", css)
	}

	if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("missing theme error = %v, want ErrStyleNotFound", err)
	}
}

func TestResolverFallback(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver("")
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if _, err := r.LoadStyle("default"); err != nil {
			t.Errorf("LoadStyle(default) error = %v", err)
		}
	})

	t.Run("custom shadows embedded", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "styles"), 0o750); err != nil {
			t.Fatal(err)
		}
		custom := "/* custom default */"
		if err := os.WriteFile(filepath.Join(dir, "styles", "default.css"), []byte(custom), 0o600); err != nil {
			t.Fatal(err)
		}

		r, err := NewResolver(dir)
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		css, err := r.LoadStyle("default")
		if err != nil {
			t.Fatalf("LoadStyle error = %v", err)
		}
		if css != custom {
			t.Errorf("custom theme not preferred, got %q", css)
		}
	})

	t.Run("falls back to embedded when custom misses", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		css, err := r.LoadStyle("default")
		if err != nil {
			t.Fatalf("LoadStyle error = %v", err)
		}
		if !strings.Contains(css, ".history-table") {
			t.Error("expected embedded default theme content")
		}
	})

	t.Run("invalid custom path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewResolver("/nonexistent/path/abc123xyz"); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}

package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParse(t *testing.T) {
	faces, err := Parse(goregular.TTF, 24)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	normal := faces.Normal.Metrics().Height
	large := faces.Large.Metrics().Height
	if large <= normal {
		t.Errorf("large height %v should exceed normal height %v", large, normal)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("not a font"), 24); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("Parse(garbage) = %v, expected ErrInvalidFont", err)
	}
	if _, err := Parse(goregular.TTF, 0); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("Parse(size 0) = %v, expected ErrInvalidFont", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	faces, err := Load(path, 18)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if faces.Source != path {
		t.Errorf("Source = %q, expected %q", faces.Source, path)
	}
}

func TestLoadConfiguredPathMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ttf"), 18)
	if err == nil {
		t.Fatal("expected an error for a missing configured font")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, expected it to wrap os.ErrNotExist", err)
	}
}

func TestLoadDefault(t *testing.T) {
	faces, err := Load("", 24)
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if faces.Normal == nil || faces.Large == nil {
		t.Fatal("default faces missing")
	}
	if faces.Source != SystemPath && faces.Source != "gobold" {
		t.Errorf("Source = %q, expected the system font or gobold", faces.Source)
	}
}

func TestFallback(t *testing.T) {
	f := Fallback()
	if f.Normal == nil || f.Large == nil || f.Source != "basicfont" {
		t.Errorf("Fallback() = %+v", f)
	}
}

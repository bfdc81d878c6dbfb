// Package fonts loads the font faces used by the window adapter.
package fonts

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// SystemPath is the bold sans-serif face looked up when no font is configured.
const SystemPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"

// ErrInvalidFont is returned when font data cannot be parsed.
var ErrInvalidFont = errors.New("invalid font")

// Faces holds the two sizes the window draws text in.
type Faces struct {
	Normal font.Face // HUD and summaries
	Large  font.Face // Titles and prompts
	Source string    // File the faces came from, or "gobold"/"basicfont"
}

// Load opens the faces for path at the given normal size; titles are 1.5x larger.
// An empty path tries SystemPath and then the bundled Go Bold face. A path that
// is set but cannot be loaded is an error.
func Load(path string, size float64) (Faces, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Faces{}, fmt.Errorf("failed to read font %s: %w", path, err)
		}
		faces, err := Parse(data, size)
		if err != nil {
			return Faces{}, fmt.Errorf("font %s: %w", path, err)
		}
		faces.Source = path
		return faces, nil
	}

	if data, err := os.ReadFile(SystemPath); err == nil {
		if faces, err := Parse(data, size); err == nil {
			faces.Source = SystemPath
			return faces, nil
		}
	}

	faces, err := Parse(gobold.TTF, size)
	if err != nil {
		return Fallback(), nil
	}
	faces.Source = "gobold"
	return faces, nil
}

// Parse builds faces from TrueType or OpenType data.
func Parse(data []byte, size float64) (Faces, error) {
	if size <= 0 {
		return Faces{}, fmt.Errorf("%w: size must be positive, got %v", ErrInvalidFont, size)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return Faces{}, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}

	normal, err := newFace(f, size)
	if err != nil {
		return Faces{}, err
	}
	large, err := newFace(f, size*1.5)
	if err != nil {
		return Faces{}, err
	}
	return Faces{Normal: normal, Large: large}, nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	return face, nil
}

// Fallback returns the fixed 7x13 bitmap face for both sizes.
func Fallback() Faces {
	return Faces{
		Normal: basicfont.Face7x13,
		Large:  basicfont.Face7x13,
		Source: "basicfont",
	}
}

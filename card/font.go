package card

import (
	"log/slog"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	GoRegular = "goregular"
	BasicFont = "basicfont"
)

// FontSource records which face the answers are drawn with. Fallback is set
// when none of the requested font files could be used.
type FontSource struct {
	Face     font.Face
	Name     string
	Fallback bool
}

func loadTrueType(data []byte, points float64) (font.Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse font")
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}

func loadFontFile(path string, points float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	face, err := loadTrueType(data, points)
	return face, errors.Wrapf(err, "font %v", path)
}

// LoadFont tries each path in order, then the embedded Go Regular face, and
// as a last resort the fixed-size basic font. It never fails.
func LoadFont(paths []string, points float64) FontSource {
	for _, path := range paths {
		face, err := loadFontFile(path, points)
		if err == nil {
			return FontSource{Face: face, Name: path}
		}
		slog.Debug("font unavailable", "path", path, "err", err)
	}

	face, err := loadTrueType(goregular.TTF, points)
	if err == nil {
		if len(paths) > 0 {
			slog.Warn("no font file usable, using built-in font", "font", GoRegular)
		}
		return FontSource{Face: face, Name: GoRegular, Fallback: true}
	}

	slog.Warn("built-in font unusable, using basic font", "err", err)
	return FontSource{Face: basicfont.Face7x13, Name: BasicFont, Fallback: true}
}

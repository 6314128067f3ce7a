// Package background loads the clef stave images that sit behind each note.
package background

import (
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/jsphweid/stavecards/constants"
	"github.com/jsphweid/stavecards/model"
	"github.com/pkg/errors"
)

type Status int

const (
	StatusAbsent Status = iota
	StatusLoaded
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	default:
		return "absent"
	}
}

// Background is either loaded, with an opaque Image, or absent, in which
// case Image is nil and cards are drawn without a stave.
type Background struct {
	Path   string
	Status Status
	Image  *image.NRGBA
}

func (b Background) Loaded() bool {
	return b.Status == StatusLoaded && b.Image != nil
}

func Absent(path string) Background {
	return Background{Path: path, Status: StatusAbsent}
}

// Flatten composites img over solid white so that transparent regions read
// as paper rather than as black.
func Flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	white := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(white, img, image.Pt(0, 0), 1.0)
}

func Decode(r io.Reader) (*image.NRGBA, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode background")
	}
	return Flatten(img), nil
}

// Load never fails on a missing file: it warns and returns an absent
// background. A file that exists but can't be decoded is an error.
func Load(path string) (Background, error) {
	img, err := imaging.Open(path)
	if os.IsNotExist(err) {
		slog.Warn("background not found, cards will have no stave", "path", path)
		return Absent(path), nil
	}
	if err != nil {
		return Background{}, errors.Wrapf(err, "could not load background %v", path)
	}
	return Background{Path: path, Status: StatusLoaded, Image: Flatten(img)}, nil
}

// Set holds one background per clef. It is loaded once and handed to the
// card renderer.
type Set struct {
	Treble Background
	Bass   Background
}

func (s Set) For(clef model.Clef) Background {
	switch clef {
	case model.Treble:
		return s.Treble
	case model.Bass:
		return s.Bass
	}
	return Absent("")
}

func LoadSet(dir string) (Set, error) {
	var s Set
	var err error
	s.Treble, err = Load(filepath.Join(dir, constants.TrebleBackground))
	if err != nil {
		return Set{}, err
	}
	s.Bass, err = Load(filepath.Join(dir, constants.BassBackground))
	if err != nil {
		return Set{}, err
	}
	return s, nil
}

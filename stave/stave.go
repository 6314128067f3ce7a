// Package stave finds the five lines of a stave in a raster image.
package stave

import (
	"image"
)

const NumLines = 5

// a pixel is dark when its 8-bit channels sum below this, i.e. the average
// is under 128
const DarkThreshold = 384

// Geometry is the five line centres, top to bottom. Detected is false when
// scanning found fewer than five lines and the evenly spaced estimate was
// used instead.
type Geometry struct {
	Lines    [NumLines]int
	Detected bool
}

func (g Geometry) Top() int {
	return g.Lines[0]
}

func (g Geometry) Bottom() int {
	return g.Lines[NumLines-1]
}

// Spacing is the distance between neighbouring lines.
func (g Geometry) Spacing() float64 {
	return float64(g.Bottom()-g.Top()) / float64(NumLines-1)
}

// NoteY returns the row of a note at the given stave position, where 0 is
// the bottom line and each step is half a line spacing.
func (g Geometry) NoteY(position int) float64 {
	return float64(g.Bottom()) - float64(position)*(g.Spacing()/2)
}

// Offset shifts every line down by dy, e.g. from resized background space
// into card space.
func (g Geometry) Offset(dy int) Geometry {
	res := g
	for i := range res.Lines {
		res.Lines[i] += dy
	}
	return res
}

func isDark(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return (r>>8)+(g>>8)+(b>>8) < DarkThreshold
}

// ScanColumn walks column x top to bottom and returns the middle row of
// every dark run. A run that reaches the bottom edge is never closed and so
// not reported. Rows are relative to the image's top edge.
func ScanColumn(img image.Image, x int) []int {
	bounds := img.Bounds()
	var lines []int
	inLine := false
	start := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		dark := isDark(img, x, y)
		switch {
		case dark && !inLine:
			inLine = true
			start = y
		case !dark && inLine:
			inLine = false
			lines = append(lines, (start-bounds.Min.Y+y-bounds.Min.Y)/2)
		}
	}
	return lines
}

// Fallback spaces five lines evenly at sixths of the height.
func Fallback(height int) Geometry {
	var g Geometry
	spacing := height / 6
	for i := range g.Lines {
		g.Lines[i] = spacing * (i + 1)
	}
	return g
}

// Detect scans the centre column. Only the count of runs is checked; five
// or more and the topmost five win, no matter how irregular their spacing.
func Detect(img image.Image) Geometry {
	bounds := img.Bounds()
	x := bounds.Min.X + bounds.Dx()/2
	lines := ScanColumn(img, x)
	if len(lines) < NumLines {
		return Fallback(bounds.Dy())
	}
	g := Geometry{Detected: true}
	copy(g.Lines[:], lines[:NumLines])
	return g
}

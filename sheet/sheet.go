// Package sheet tiles rendered cards onto fixed-size printable sheets.
package sheet

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/jsphweid/stavecards/constants"
	"github.com/jsphweid/stavecards/model"
	"github.com/jsphweid/stavecards/util"
	"github.com/pkg/errors"
)

type Layout struct {
	Sheet  model.Size
	Card   model.Size
	Margin int
}

// A4 is the printed layout: A4 landscape, 10mm margins, 69x27mm cards.
func A4() Layout {
	return Layout{
		Sheet:  model.Size{Width: constants.SheetWidth, Height: constants.SheetHeight},
		Card:   model.Size{Width: constants.CardWidth, Height: constants.CardHeight},
		Margin: constants.Margin,
	}
}

// Printable is the area inside the margins.
func (l Layout) Printable() image.Rectangle {
	return image.Rect(l.Margin, l.Margin, l.Sheet.Width-l.Margin, l.Sheet.Height-l.Margin)
}

func (l Layout) PerRow() int {
	if l.Card.Width <= 0 {
		return 0
	}
	return util.Max(l.Printable().Dx(), 0) / l.Card.Width
}

func (l Layout) PerCol() int {
	if l.Card.Height <= 0 {
		return 0
	}
	return util.Max(l.Printable().Dy(), 0) / l.Card.Height
}

func (l Layout) Capacity() int {
	return l.PerRow() * l.PerCol()
}

// SheetsFor is how many sheets n cards need.
func (l Layout) SheetsFor(n int) int {
	c := l.Capacity()
	if c == 0 || n == 0 {
		return 0
	}
	return util.CeilDiv(n, c)
}

// Slot is the bounding box of the i-th card on a sheet, filling rows left
// to right from the top. It is empty when i is not in [0, Capacity()).
func (l Layout) Slot(i int) image.Rectangle {
	if i < 0 || i >= l.Capacity() {
		return image.Rectangle{}
	}
	row := i / l.PerRow()
	col := i % l.PerRow()
	origin := image.Pt(l.Margin+col*l.Card.Width, l.Margin+row*l.Card.Height)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(l.Card.Width, l.Card.Height))}
}

type Sheet struct {
	Number int // 1-based
	Cards  int
	Image  *image.NRGBA
}

// Tile draws cards onto as many sheets as needed, keeping their order.
// The last sheet only holds what is left over. Cards are drawn into one
// canvas per sheet in place.
func (l Layout) Tile(cards []image.Image) ([]Sheet, error) {
	capacity := l.Capacity()
	if capacity == 0 {
		return nil, errors.Errorf("a %vx%v card does not fit a %vx%v sheet with a %v margin",
			l.Card.Width, l.Card.Height, l.Sheet.Width, l.Sheet.Height, l.Margin)
	}

	var res []Sheet
	for start := 0; start < len(cards); start += capacity {
		end := util.Min(start+capacity, len(cards))
		canvas := imaging.New(l.Sheet.Width, l.Sheet.Height, color.White)
		for idx, card := range cards[start:end] {
			draw.Draw(canvas, l.Slot(idx), card, card.Bounds().Min, draw.Src)
		}
		res = append(res, Sheet{Number: len(res) + 1, Cards: end - start, Image: canvas})
	}
	return res, nil
}
